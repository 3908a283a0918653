package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/diary-logs/models"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is one stored extraction.
type Snapshot struct {
	SnapshotID   int64
	CreatedAt    time.Time
	Source       string
	ContentHash  string
	Variant      string
	Found        bool
	RecordCount  int
	TotalMinutes int
}

// InsertSnapshot stores an extraction and its records in one transaction.
// records is ignored when found is false.
func (db *DB) InsertSnapshot(source, contentHash string, variant models.Variant, found bool, records []models.LogRecord) (int64, error) {
	if !found {
		records = nil
	}

	total := 0
	for _, r := range records {
		total += r.Time
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`
		INSERT INTO snapshots (source, content_hash, variant, found, record_count, total_minutes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, source, contentHash, variant.String(), found, len(records), total)
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	snapshotID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get snapshot ID: %w", err)
	}

	for i, r := range records {
		_, err = tx.Exec(`
			INSERT INTO snapshot_records (snapshot_id, position, memo, minutes)
			VALUES (?, ?, ?, ?)
		`, snapshotID, i, r.Memo, r.Time)
		if err != nil {
			return 0, fmt.Errorf("failed to insert snapshot record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return snapshotID, nil
}

// ListSnapshots returns the most recent snapshots, newest first.
func (db *DB) ListSnapshots(limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT snapshot_id, created_at, source, content_hash, variant, found, record_count, total_minutes
		FROM snapshots
		ORDER BY snapshot_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.SnapshotID, &s.CreatedAt, &s.Source, &s.ContentHash, &s.Variant, &s.Found, &s.RecordCount, &s.TotalMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// GetSnapshot returns one snapshot by ID.
func (db *DB) GetSnapshot(snapshotID int64) (*Snapshot, error) {
	var s Snapshot
	err := db.QueryRow(`
		SELECT snapshot_id, created_at, source, content_hash, variant, found, record_count, total_minutes
		FROM snapshots WHERE snapshot_id = ?
	`, snapshotID).Scan(&s.SnapshotID, &s.CreatedAt, &s.Source, &s.ContentHash, &s.Variant, &s.Found, &s.RecordCount, &s.TotalMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot %d: %w", snapshotID, ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &s, nil
}

// GetSnapshotRecords returns the records of a snapshot in extraction order.
// found mirrors the stored extraction; records is nil when it is false.
func (db *DB) GetSnapshotRecords(snapshotID int64) (records []models.LogRecord, found bool, err error) {
	s, err := db.GetSnapshot(snapshotID)
	if err != nil {
		return nil, false, err
	}
	if !s.Found {
		return nil, false, nil
	}

	rows, err := db.Query(`
		SELECT memo, minutes FROM snapshot_records
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query snapshot records: %w", err)
	}
	defer rows.Close()

	records = []models.LogRecord{}
	for rows.Next() {
		var r models.LogRecord
		if err := rows.Scan(&r.Memo, &r.Time); err != nil {
			return nil, false, fmt.Errorf("failed to scan snapshot record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return records, true, nil
}

// FindLatestByHash returns the newest snapshot with the given content hash.
func (db *DB) FindLatestByHash(contentHash string) (*Snapshot, error) {
	var id int64
	err := db.QueryRow(`
		SELECT snapshot_id FROM snapshots
		WHERE content_hash = ?
		ORDER BY snapshot_id DESC LIMIT 1
	`, contentHash).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up snapshot by hash: %w", err)
	}
	return db.GetSnapshot(id)
}
