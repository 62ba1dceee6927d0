package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/models"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMoveLine(moveID string) domain.MoveLine {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.MoveLine{
		LineID:         uuid.NewString(),
		MoveID:         moveID,
		CompanyID:      uuid.NewString(),
		AccountID:      uuid.NewString(),
		Name:           "Check 42",
		Ref:            "CHK-42",
		Debit:          decimal.RequireFromString("100.00"),
		Credit:         decimal.Zero,
		AmountCurrency: decimal.RequireFromString("100.00"),
		CurrencyCode:   "USD",
		ParentState:    domain.MovePosted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}
}

func moveLineColumns() []string {
	return []string{
		"line_id", "move_id", "company_id", "account_id", "partner_id", "name", "ref",
		"debit", "credit", "amount_currency", "currency_code",
		"reconciled", "reconcile_id", "check_deposit_id", "parent_state",
		"created_at", "created_by", "last_updated_at", "last_updated_by",
	}
}

func moveLineRows(lines ...domain.MoveLine) *pgxmock.Rows {
	rows := pgxmock.NewRows(moveLineColumns())
	for _, l := range lines {
		rows.AddRow(
			l.LineID, l.MoveID, l.CompanyID, l.AccountID, l.PartnerID, l.Name, l.Ref,
			l.Debit, l.Credit, l.AmountCurrency, l.CurrencyCode,
			l.Reconciled, l.ReconcileID, l.CheckDepositID, string(l.ParentState),
			l.CreatedAt, l.CreatedBy, l.LastUpdatedAt, l.LastUpdatedBy,
		)
	}
	return rows
}

func TestMoveRepo_SaveMove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)

	now := time.Now().UTC().Truncate(time.Microsecond)
	move := domain.Move{
		MoveID:    uuid.NewString(),
		CompanyID: uuid.NewString(),
		JournalID: uuid.NewString(),
		Date:      now,
		Ref:       "Check Deposit CD/2026/00001",
		State:     domain.MoveDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}
	move.Lines = []domain.MoveLine{newTestMoveLine(move.MoveID), newTestMoveLine(move.MoveID)}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO moves").
		WithArgs(move.MoveID, move.CompanyID, move.JournalID, move.Date, move.Ref, models.MoveState(move.State),
			move.CreatedAt, move.CreatedBy, move.LastUpdatedAt, move.LastUpdatedBy).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	anyLineArgs := make([]interface{}, 19)
	for i := range anyLineArgs {
		anyLineArgs[i] = pgxmock.AnyArg()
	}
	for range move.Lines {
		mock.ExpectExec("INSERT INTO move_lines").
			WithArgs(anyLineArgs...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()
	mock.ExpectRollback()

	err = repo.SaveMove(context.Background(), move)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_FindPendingCheckLines(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)
	line := newTestMoveLine(uuid.NewString())

	mock.ExpectQuery("SELECT .+ FROM move_lines l").
		WithArgs(line.CompanyID, line.AccountID, "USD", models.MovePosted).
		WillReturnRows(moveLineRows(line))

	lines, err := repo.FindPendingCheckLines(context.Background(), line.CompanyID, line.AccountID, "USD")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, line.LineID, lines[0].LineID)
	assert.True(t, line.Debit.Equal(lines[0].Debit))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_FindLinesByIDs_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)

	lines, err := repo.FindLinesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_UpdateMoveState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)
	moveID := uuid.NewString()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE moves").
		WithArgs(models.MovePosted, now, "user-1", moveID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE move_lines").
		WithArgs(models.MovePosted, now, "user-1", moveID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectCommit()
	mock.ExpectRollback()

	err = repo.UpdateMoveState(context.Background(), moveID, domain.MovePosted, "user-1", now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_UpdateMoveState_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE moves").
		WithArgs(models.MovePosted, now, "user-1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err = repo.UpdateMoveState(context.Background(), uuid.NewString(), domain.MovePosted, "user-1", now)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_SetLinesDeposit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)
	lineIDs := []string{uuid.NewString(), uuid.NewString()}
	depositID := uuid.NewString()
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE move_lines").
		WithArgs(&depositID, now, "user-1", lineIDs).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	err = repo.SetLinesDeposit(context.Background(), lineIDs, &depositID, "user-1", now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_ReconcileLines_AlreadyReconciled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)
	lineIDs := []string{uuid.NewString(), uuid.NewString()}
	reconcileID := uuid.NewString()
	now := time.Now().UTC()

	// Only one of the two lines is still open, so the update touches a single row.
	mock.ExpectExec("UPDATE move_lines").
		WithArgs(reconcileID, now, "user-1", lineIDs).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.ReconcileLines(context.Background(), lineIDs, reconcileID, "user-1", now)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_UnreconcileGroup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)
	reconcileID := uuid.NewString()
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE move_lines").
		WithArgs(now, "user-1", reconcileID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	err = repo.UnreconcileGroup(context.Background(), reconcileID, "user-1", now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveRepo_DeleteMove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxMoveRepository(mock)
	moveID := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM move_lines").
		WithArgs(moveID).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM moves").
		WithArgs(moveID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	err = repo.DeleteMove(context.Background(), moveID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
