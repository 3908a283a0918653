package common

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dtnitsch/diary-logs/models"
	"github.com/dtnitsch/diary-logs/pkg/db"
	"github.com/dtnitsch/diary-logs/pkg/extractor"
	"github.com/dtnitsch/diary-logs/pkg/fetcher"
)

// PageSource extracts diary logs from a live page and optionally records
// the result as a snapshot.
type PageSource struct {
	Source    string
	Fetcher   *fetcher.Fetcher
	Extractor *extractor.Extractor
	DB        *db.DB // nil disables recording
	Logger    *slog.Logger
}

func (p *PageSource) DiaryLogs(ctx context.Context) (extractor.Result, error) {
	doc, body, err := p.Fetcher.GetHtml(ctx, p.Source)
	if err != nil {
		return extractor.Result{}, err
	}

	res := p.Extractor.Extract(doc)
	p.Logger.Info("Extracted diary logs", "source", p.Source, "found", res.Found, "variant", res.Variant.String(), "record_count", len(res.Records))

	if p.DB != nil {
		p.record(body, res)
	}
	return res, nil
}

// record stores res unless the same page was already recorded with the
// same extractor settings. Failures are logged, never returned.
func (p *PageSource) record(body []byte, res extractor.Result) {
	hash := SnapshotHash(body, p.Extractor.Settings())

	existing, err := p.DB.FindLatestByHash(hash)
	if err == nil {
		p.Logger.Info("Snapshot already recorded", "snapshot_id", existing.SnapshotID, "content_hash", hash)
		return
	}
	if !errors.Is(err, db.ErrSnapshotNotFound) {
		p.Logger.Warn("Failed to look up snapshot", "error", err)
		return
	}

	id, err := p.DB.InsertSnapshot(p.Source, hash, res.Variant, res.Found, res.Records)
	if err != nil {
		p.Logger.Warn("Failed to record snapshot", "source", p.Source, "error", err)
		return
	}
	p.Logger.Info("Recorded snapshot", "snapshot_id", id)
}

// SnapshotSource replays a stored snapshot.
type SnapshotSource struct {
	DB         *db.DB
	SnapshotID int64
}

func (s *SnapshotSource) DiaryLogs(context.Context) (extractor.Result, error) {
	snap, err := s.DB.GetSnapshot(s.SnapshotID)
	if err != nil {
		return extractor.Result{}, err
	}
	records, found, err := s.DB.GetSnapshotRecords(s.SnapshotID)
	if err != nil {
		return extractor.Result{}, err
	}
	return extractor.Result{
		Records: records,
		Found:   found,
		Variant: models.ParseVariant(snap.Variant),
	}, nil
}
