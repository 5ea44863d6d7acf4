package storage

import (
	"context"
	"time"

	"github.com/thirukguru/version-gate/model"
)

// Service defines persistence and query operations for check history.
type Service interface {
	SaveCheck(ctx context.Context, input SaveCheckInput) (int64, error)
	ListChecks(ctx context.Context, query ListQuery) ([]model.CheckRecord, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Vacuum(ctx context.Context) error
	Path() string
	Close() error
}

// SaveCheckInput is the payload saved for one checked line.
type SaveCheckInput struct {
	Result      model.CheckResult
	ToolVersion string
	CheckedAt   time.Time
}

// ListQuery filters ListChecks. Results are newest first.
type ListQuery struct {
	Limit      int
	FailedOnly bool
}
