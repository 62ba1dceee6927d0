package services

import (
	"context"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/dto"
)

// DepositReaderSvc defines read operations for check deposits
type DepositReaderSvc interface {
	// GetDepositByID retrieves a deposit with its totals and attached check lines.
	GetDepositByID(ctx context.Context, companyID string, depositID string, requestingUserID string) (*domain.CheckDeposit, []domain.MoveLine, error)

	// ListDeposits retrieves a paginated list of deposits in a company.
	ListDeposits(ctx context.Context, companyID string, requestingUserID string, params dto.ListDepositsParams) (*dto.ListDepositsResponse, error)

	// GetDepositSlip builds the printable deposit slip document.
	GetDepositSlip(ctx context.Context, companyID string, depositID string, requestingUserID string) (*dto.DepositSlip, error)
}

// DepositWriterSvc defines the workflow operations on check deposits
type DepositWriterSvc interface {
	// CreateDeposit creates a draft deposit, assigning defaults and a sequence name.
	CreateDeposit(ctx context.Context, companyID string, req dto.CreateDepositRequest, creatorUserID string) (*domain.CheckDeposit, error)

	// UpdateDeposit updates a draft deposit's date, journals or currency.
	UpdateDeposit(ctx context.Context, companyID string, depositID string, req dto.UpdateDepositRequest, requestingUserID string) (*domain.CheckDeposit, error)

	// DeleteDeposit removes a deposit; refused while the deposit is DONE.
	DeleteDeposit(ctx context.Context, companyID string, depositID string, requestingUserID string) error

	// AttachChecks attaches check move lines to a draft deposit.
	AttachChecks(ctx context.Context, companyID string, depositID string, lineIDs []string, requestingUserID string) error

	// DetachChecks detaches check move lines from a draft deposit.
	DetachChecks(ctx context.Context, companyID string, depositID string, lineIDs []string, requestingUserID string) error

	// GetAllChecks attaches every eligible pending check to the deposit.
	GetAllChecks(ctx context.Context, companyID string, depositID string, requestingUserID string) (int, error)

	// ValidateDeposit books and posts the deposit move, reconciles the checks and
	// flips the deposit to DONE.
	ValidateDeposit(ctx context.Context, companyID string, depositID string, requestingUserID string) (*domain.CheckDeposit, error)

	// BackToDraft reverses a validated deposit: unposts and deletes the move,
	// undoes the reconciliations and returns the deposit to DRAFT.
	BackToDraft(ctx context.Context, companyID string, depositID string, requestingUserID string) (*domain.CheckDeposit, error)
}

// DepositSvcFacade combines all deposit-related service interfaces
type DepositSvcFacade interface {
	DepositReaderSvc
	DepositWriterSvc
}
