// Package storage persists diving records. The SQLite Store keeps the best
// score per tier plus a history of finished games; KVStore keeps per-tier
// string records in the user data directory; MemoryStore is the in-process
// fallback. All three satisfy the simulation's high-score port.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-diver/internal/config"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database. It is safe for concurrent use; the SSH
// server shares one Store between all sessions.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex // serializes read-compare-write of records
	logger *log.Logger
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	Tier      config.Tier
	Score     int
	Pearls    int
	CreatedAt time.Time
}

// TierStats aggregates the history of one tier.
type TierStats struct {
	Tier       config.Tier
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Pearls     int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, logger: discardLogger()}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// SetLogger directs diagnostics to l.
func (s *Store) SetLogger(l *log.Logger) {
	s.logger = l
}

// migrate creates the schema. Records are stored as text, the way browser
// local storage keeps them, so a damaged value is read back rather than
// rejected by the driver.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tier TEXT NOT NULL,
			score INTEGER NOT NULL,
			pearls INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_tier ON scores(tier);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(tier, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			tier TEXT PRIMARY KEY,
			score TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the record for tier, or 0 when there is none or it
// cannot be read.
func (s *Store) HighScore(tier config.Tier) int {
	n, err := s.readHighScore(tier)
	if err != nil {
		var perr *PersistenceReadError
		if errors.As(err, &perr) {
			s.logger.Debug("recovered unreadable high score", "err", err)
		} else {
			s.logger.Warn("cannot read high score", "tier", tier, "err", err)
		}
	}
	return n
}

func (s *Store) readHighScore(tier config.Tier) (int, error) {
	var raw sql.NullString
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE tier = ?", string(tier)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !raw.Valid) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return parseStoredScore(tier, raw.String)
}

// SetHighScore stores score as the tier record if it beats the current one.
func (s *Store) SetHighScore(tier config.Tier, score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.HighScore(tier) {
		return false
	}
	_, err := s.db.Exec(
		`INSERT INTO high_scores (tier, score) VALUES (?, ?)
		 ON CONFLICT(tier) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		string(tier), strconv.Itoa(score),
	)
	if err != nil {
		s.logger.Warn("cannot save high score", "tier", tier, "err", err)
		return false
	}
	return true
}

// SaveScore records a finished game in the history.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(tier config.Tier, score, pearls int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (tier, score, pearls) VALUES (?, ?, ?)",
		string(tier), score, pearls,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the best limit games for tier, highest first.
func (s *Store) TopScores(tier config.Tier, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, tier, score, pearls, created_at
		 FROM scores
		 WHERE tier = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		string(tier), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var t string
		var createdAt any
		if err := rows.Scan(&e.ID, &t, &e.Score, &e.Pearls, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Tier = config.Tier(t)
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearScores deletes the history and the record of tier.
func (s *Store) ClearScores(tier config.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM scores WHERE tier = ?", string(tier)); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores WHERE tier = ?", string(tier)); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetTierStats aggregates the history of tier.
func (s *Store) GetTierStats(tier config.Tier) (*TierStats, error) {
	stats := &TierStats{Tier: tier}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(pearls), 0), MAX(created_at)
		 FROM scores WHERE tier = ?`,
		string(tier),
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.Pearls, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get tier stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// GetAllTierStats returns the statistics of every tier, in tier order.
func (s *Store) GetAllTierStats() ([]*TierStats, error) {
	out := make([]*TierStats, 0, len(config.Tiers()))
	for _, t := range config.Tiers() {
		st, err := s.GetTierStats(t)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// parseTimestamp handles both time.Time and the SQLite text form.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
