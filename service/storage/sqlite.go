// Package storage persists check results in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thirukguru/version-gate/model"
	_ "modernc.org/sqlite"
)

const (
	defaultDBPath    = "~/.version-gate/history.db"
	defaultListLimit = 20
)

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) Path() string {
	return s.dbPath
}

func (s *service) SaveCheck(ctx context.Context, input SaveCheckInput) (int64, error) {
	if input.CheckedAt.IsZero() {
		input.CheckedAt = time.Now()
	}
	r := input.Result

	var major sql.NullInt64
	if r.MajorParsed {
		major = sql.NullInt64{Int64: int64(r.Major), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO checks (
			checked_at, label, raw_line, raw_version, major, min_major,
			semver, passed, failure_kind, tool_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.CheckedAt.UTC().UnixNano(), r.Label, r.Line, r.RawVersion, major, r.MinMajor,
		r.Semver, r.Passed, r.FailureKind, input.ToolVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to save check: %w", err)
	}
	return res.LastInsertId()
}

func (s *service) ListChecks(ctx context.Context, q ListQuery) ([]model.CheckRecord, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	query := `
		SELECT check_id, checked_at, label, raw_version, major, min_major,
			semver, passed, failure_kind, tool_version
		FROM checks
	`
	args := []any{}
	if q.FailedOnly {
		query += " WHERE passed = 0"
	}
	query += " ORDER BY checked_at DESC, check_id DESC LIMIT ?"
	args = append(args, q.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.CheckRecord{}
	for rows.Next() {
		var (
			rec       model.CheckRecord
			checkedAt int64
			major     sql.NullInt64
			label     sql.NullString
			raw       sql.NullString
			semver    sql.NullString
			kind      sql.NullString
			version   sql.NullString
		)
		if err := rows.Scan(&rec.ID, &checkedAt, &label, &raw, &major, &rec.MinMajor,
			&semver, &rec.Passed, &kind, &version); err != nil {
			return nil, err
		}
		rec.CheckedAt = time.Unix(0, checkedAt).UTC()
		if major.Valid {
			m := int(major.Int64)
			rec.Major = &m
		}
		rec.Label = label.String
		rec.RawVersion = raw.String
		rec.Semver = semver.String
		rec.FailureKind = kind.String
		rec.ToolVersion = version.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour).UTC().UnixNano()
	res, err := s.db.ExecContext(ctx, `DELETE FROM checks WHERE checked_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Close() error {
	return s.db.Close()
}
