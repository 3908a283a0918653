package db

const schema = `
PRAGMA foreign_keys = ON;

-- Snapshots: one row per extraction of a diary page
CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    variant TEXT NOT NULL,
    found BOOLEAN NOT NULL,
    record_count INTEGER DEFAULT 0,
    total_minutes INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_snapshots_hash ON snapshots(content_hash);

-- Snapshot records: the normalized records, in extraction order
CREATE TABLE IF NOT EXISTS snapshot_records (
    record_id INTEGER PRIMARY KEY AUTOINCREMENT,
    snapshot_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    memo TEXT NOT NULL,
    minutes INTEGER NOT NULL,
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id) ON DELETE CASCADE,
    UNIQUE(snapshot_id, position)
);

CREATE INDEX IF NOT EXISTS idx_snapshot_records_snapshot ON snapshot_records(snapshot_id);
`
