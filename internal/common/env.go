// Package common holds helpers and CLI wiring shared by the commands.
package common

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/diary-logs/models"
	"github.com/dtnitsch/diary-logs/pkg/caching"
	"github.com/dtnitsch/diary-logs/pkg/db"
	"github.com/dtnitsch/diary-logs/pkg/extractor"
	"github.com/dtnitsch/diary-logs/pkg/fetcher"
	"github.com/dtnitsch/diary-logs/pkg/messaging"
	"github.com/urfave/cli/v2"
)

// SourceFlags are the flags of every command that reads diary logs.
func SourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "YAML config file"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		&cli.StringFlag{Name: "cache-dir", Usage: "directory for cached page downloads"},
		&cli.StringFlag{Name: "max-age", Usage: "reuse a cached page younger than this (e.g. 30m)"},
		&cli.BoolFlag{Name: "force-fetch", Usage: "ignore the page cache"},
		&cli.BoolFlag{Name: "record", Usage: "store the extraction in the snapshot history"},
		&cli.StringFlag{Name: "db", Usage: "snapshot history database path"},
		&cli.Int64Flag{Name: "snapshot", Usage: "replay a stored snapshot instead of reading a page"},
	}
}

// NewLogger returns the JSON stderr logger, at Error level with --quiet.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads --config and applies flag overrides.
func LoadConfig(c *cli.Context) (models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("cache-dir") {
		cfg.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("max-age") {
		maxAge, err := time.ParseDuration(c.String("max-age"))
		if err != nil {
			return cfg, fmt.Errorf("invalid max-age duration: %w", err)
		}
		cfg.MaxAge = maxAge
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	return cfg, nil
}

// Env is the set-up state of one command run.
type Env struct {
	Logger *slog.Logger
	Config models.Config
	DB     *db.DB
}

// Setup builds the logger and config, and opens the snapshot database
// when --record or --snapshot asks for it.
func Setup(c *cli.Context) (*Env, error) {
	env := &Env{Logger: NewLogger(c)}

	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, err
	}
	env.Config = cfg

	if c.Bool("record") || c.IsSet("snapshot") {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		env.DB = database
	}
	return env, nil
}

func (e *Env) Close() {
	if e.DB != nil {
		_ = e.DB.Close()
	}
}

// Source resolves where fetchDiaryLogs gets its answer: a stored snapshot
// with --snapshot, otherwise the page named by the first argument.
func (e *Env) Source(c *cli.Context) (messaging.Source, error) {
	if c.IsSet("snapshot") {
		return &SnapshotSource{DB: e.DB, SnapshotID: c.Int64("snapshot")}, nil
	}

	source := SanitizeSource(c.Args().First())
	if source == "" {
		return nil, fmt.Errorf("%w: pass a file, URL or - for stdin", fetcher.ErrEmptySource)
	}

	var cache *caching.Cache
	if fetcher.IsURL(source) && !c.Bool("force-fetch") && e.Config.MaxAge > 0 {
		var err error
		cache, err = caching.NewCache(e.Config.CacheDir, e.Config.MaxAge)
		if err != nil {
			return nil, err
		}
	}

	var recordDB *db.DB
	if c.Bool("record") {
		recordDB = e.DB
	}

	return &PageSource{
		Source:    source,
		Fetcher:   fetcher.NewFetcher(cache),
		Extractor: extractor.New(e.Config, e.Logger),
		DB:        recordDB,
		Logger:    e.Logger,
	}, nil
}

// Router returns a router that answers fetchDiaryLogs from src.
func (e *Env) Router(src messaging.Source) *messaging.Router {
	router := messaging.NewRouter(e.Logger)
	router.Handle(models.MessageTypeFetchDiaryLogs, messaging.DiaryLogsHandler(src))
	return router
}
