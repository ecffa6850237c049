package history

// Schema defines the SQLite schema for the run journal.
// Every reset gets one row when it starts and is finished with its outcome
// when the run ends, however it ends.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    slot_suffix TEXT NOT NULL DEFAULT '',
    outcome TEXT NOT NULL DEFAULT '',
    reason TEXT NOT NULL DEFAULT '',
    warnings TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Run represents one reset attempt in the journal
type Run struct {
	ID         string
	SlotSuffix string
	Outcome    string
	Reason     string
	Warnings   string
	CreatedAt  string
	FinishedAt string
}
