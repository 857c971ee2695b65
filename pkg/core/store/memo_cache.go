package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"merger_maestro/pkg/core/memo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the cache needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const memoSchema = `
	CREATE TABLE IF NOT EXISTS deal_memos (
		fingerprint  TEXT PRIMARY KEY,
		memo_id      TEXT NOT NULL,
		provider     TEXT,
		data         JSONB NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

var fingerprintPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// MemoCache keeps generated memos.
// Hybrid vault: DB when a pool is given, JSON files under dir otherwise.
type MemoCache struct {
	db      DB
	fileDir string
}

var _ memo.Cache = (*MemoCache)(nil)

// NewMemoCache creates a cache. With a nil db and empty dir, files go to .cache/memos.
func NewMemoCache(db DB, dir string) *MemoCache {
	if db == nil && dir == "" {
		dir = filepath.Join(".cache", "memos")
	}
	if db == nil {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check MemoCache dir: %v\n", err)
		}
	}
	return &MemoCache{db: db, fileDir: dir}
}

// EnsureSchema creates the deal_memos table. No-op for the file cache.
func (c *MemoCache) EnsureSchema(ctx context.Context) error {
	if c.db == nil {
		return nil
	}
	if _, err := c.db.Exec(ctx, memoSchema); err != nil {
		return fmt.Errorf("failed to create deal_memos: %w", err)
	}
	return nil
}

// Get returns the memo stored for fingerprint, or nil, nil on a miss.
func (c *MemoCache) Get(ctx context.Context, fingerprint string) (*memo.Memo, error) {
	if !fingerprintPattern.MatchString(fingerprint) {
		return nil, fmt.Errorf("invalid fingerprint %q", fingerprint)
	}

	if c.db != nil {
		var data []byte
		err := c.db.QueryRow(ctx, `SELECT data FROM deal_memos WHERE fingerprint = $1`, fingerprint).Scan(&data)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read db cache: %w", err)
		}
		return decodeMemo(data)
	}

	data, err := os.ReadFile(c.path(fingerprint))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file cache: %w", err)
	}
	return decodeMemo(data)
}

// Save upserts m by fingerprint.
func (c *MemoCache) Save(ctx context.Context, m *memo.Memo) error {
	if !fingerprintPattern.MatchString(m.Fingerprint) {
		return fmt.Errorf("invalid fingerprint %q", m.Fingerprint)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memo: %w", err)
	}

	if c.db != nil {
		query := `
			INSERT INTO deal_memos (fingerprint, memo_id, provider, data, generated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (fingerprint)
			DO UPDATE SET
				memo_id = EXCLUDED.memo_id,
				provider = EXCLUDED.provider,
				data = EXCLUDED.data,
				generated_at = EXCLUDED.generated_at,
				updated_at = NOW()
		`
		if _, err := c.db.Exec(ctx, query, m.Fingerprint, m.ID, m.Provider, data, m.GeneratedAt); err != nil {
			return fmt.Errorf("failed to save to db cache: %w", err)
		}
		return nil
	}

	// Write-then-rename so readers never see a partial file.
	tmp := c.path(m.Fingerprint) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to save to file cache: %w", err)
	}
	if err := os.Rename(tmp, c.path(m.Fingerprint)); err != nil {
		return fmt.Errorf("failed to save to file cache: %w", err)
	}
	return nil
}

func (c *MemoCache) path(fingerprint string) string {
	return filepath.Join(c.fileDir, fingerprint+".json")
}

func decodeMemo(data []byte) (*memo.Memo, error) {
	var m memo.Memo
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached memo: %w", err)
	}
	return &m, nil
}
