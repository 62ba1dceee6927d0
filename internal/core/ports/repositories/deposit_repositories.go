package repositories

import (
	"context"
	"time"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DepositTotals is the grouped aggregation over the check lines attached to one
// deposit: total debit, total amount in the line currency, and line count.
type DepositTotals struct {
	Debit          decimal.Decimal
	AmountCurrency decimal.Decimal
	Count          int
}

// DepositReader defines read operations for check deposit data
type DepositReader interface {
	// FindDepositByID retrieves a specific deposit by its unique identifier.
	FindDepositByID(ctx context.Context, depositID string) (*domain.CheckDeposit, error)

	// ListDepositsByCompany retrieves a paginated list of deposits for a company,
	// newest deposit date first, using token-based pagination.
	ListDepositsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.CheckDeposit, *string, error)

	// GetDepositTotals aggregates the attached check lines of the given deposits,
	// grouped by deposit ID. Deposits with no attached lines are absent from the map.
	GetDepositTotals(ctx context.Context, depositIDs []string) (map[string]DepositTotals, error)
}

// DepositWriter defines write operations for check deposit data
type DepositWriter interface {
	// SaveDeposit inserts a new deposit.
	SaveDeposit(ctx context.Context, deposit domain.CheckDeposit) error

	// UpdateDeposit updates the mutable fields of a draft deposit.
	UpdateDeposit(ctx context.Context, deposit domain.CheckDeposit) error

	// UpdateDepositState transitions the workflow state and the generated move link.
	UpdateDepositState(ctx context.Context, depositID string, state domain.DepositState, moveID *string, updatedByUserID string, updatedAt time.Time) error

	// UpdateDepositStateTx is UpdateDepositState running inside the caller's
	// transaction, so the state flip commits together with the move bookkeeping.
	UpdateDepositStateTx(ctx context.Context, tx pgx.Tx, depositID string, state domain.DepositState, moveID *string, updatedByUserID string, updatedAt time.Time) error

	// DeleteDeposit removes a deposit row. State guards are enforced by the service.
	DeleteDeposit(ctx context.Context, depositID string) error
}

// DepositRepositoryFacade combines all deposit-related repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}
