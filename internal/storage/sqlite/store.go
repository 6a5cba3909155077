package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"lotview/internal/logic"
)

//go:embed schema.sql
var schemaSQL string

// HistoryStore provides SQLite-backed persistence for search history.
type HistoryStore struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ logic.HistoryRepository = (*HistoryStore)(nil)

// Open opens the history database, creating the schema when needed.
func Open(path string) (*HistoryStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &HistoryStore{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *HistoryStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Insert stores an encoded query unless the owner already has it in normalised form.
func (s *HistoryStore) Insert(ctx context.Context, owner, encoded string) (int64, bool, error) {
	if s == nil || s.sqlDB == nil {
		return 0, false, fmt.Errorf("storage is not configured")
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO search_history (owner, encoded, normalized, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (owner, normalized) DO NOTHING`,
		owner, encoded, logic.NormalizeQuery(encoded), s.now().UnixMilli(),
	)
	if err != nil {
		return 0, false, fmt.Errorf("insert history: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("insert history: %w", err)
	}
	if affected > 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, false, fmt.Errorf("insert history: %w", err)
		}
		return id, true, nil
	}

	var id int64
	err = s.sqlDB.QueryRowContext(ctx,
		`SELECT id FROM search_history WHERE owner = ? AND normalized = ?`,
		owner, logic.NormalizeQuery(encoded),
	).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("lookup history: %w", err)
	}
	return id, false, nil
}

// Search lists the owner's entries whose normalised form starts with prefix, newest first.
// A non-positive limit returns everything.
func (s *HistoryStore) Search(ctx context.Context, owner, prefix string, limit int) ([]logic.HistoryRecord, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = -1
	}

	// substr rather than LIKE: tags contain '_' which LIKE treats as a wildcard
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, encoded FROM search_history
		 WHERE owner = ? AND substr(normalized, 1, length(?)) = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		owner, prefix, prefix, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}
	defer rows.Close()

	var records []logic.HistoryRecord
	for rows.Next() {
		var rec logic.HistoryRecord
		if err := rows.Scan(&rec.ID, &rec.Encoded); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return records, nil
}

// Delete removes one entry of the owner.
func (s *HistoryStore) Delete(ctx context.Context, owner string, id int64) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM search_history WHERE owner = ? AND id = ?`, owner, id,
	); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

// DeleteAll removes every entry of the owner.
func (s *HistoryStore) DeleteAll(ctx context.Context, owner string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM search_history WHERE owner = ?`, owner,
	); err != nil {
		return fmt.Errorf("delete all history: %w", err)
	}
	return nil
}
