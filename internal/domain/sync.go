package domain

import "time"

// SyncStats holds statistics about a sync pass over all content types.
type SyncStats struct {
	SourceID   string
	Fetched    int // articles returned by the source
	New        int
	Skipped    int
	Errors     int
	Published  int
	Magazines  int
	Videos     int
	Categories int
	Duration   time.Duration
}

type SyncState struct {
	ID            int64     `db:"id"`
	SourceID      string    `db:"source_id"`
	LastSyncedAt  time.Time `db:"last_synced_at"`
	LastArticleID int64     `db:"last_article_id"`
	TotalSynced   int64     `db:"total_synced"`
}
