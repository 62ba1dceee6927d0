package repositories

import (
	"context"
	"time"
)

// SequenceRepositoryFacade hands out gapless per-company reference numbers.
type SequenceRepositoryFacade interface {
	// NextByCode returns the next formatted reference for the sequence identified
	// by code and company, keyed by the year of the given date (e.g. "CD/2026/00012").
	// The number is consumed even if the caller's insert later fails.
	NextByCode(ctx context.Context, code string, companyID string, date time.Time) (string, error)
}
