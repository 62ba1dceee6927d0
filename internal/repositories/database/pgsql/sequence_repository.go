package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for numbering sequences.
func newPgxSequenceRepository(pool PgxDB) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSequenceRepository implements portsrepo.SequenceRepositoryFacade
var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// sequenceDefaults carries the prefix and zero-pad width a sequence starts with
// the first time a company draws a number for a given year.
var sequenceDefaults = map[string]struct {
	Prefix  string
	Padding int
}{
	domain.SequenceCodeDeposit: {Prefix: "CD", Padding: 5},
}

// NextByCode returns the next formatted reference for the sequence identified by
// code and company, keyed by the year of the given date. The upsert makes
// concurrent callers draw distinct numbers.
func (r *PgxSequenceRepository) NextByCode(ctx context.Context, code string, companyID string, date time.Time) (string, error) {
	defaults, ok := sequenceDefaults[code]
	if !ok {
		return "", apperrors.NewValidationFailedError("unknown sequence code " + code)
	}
	year := date.Year()

	query := `
		INSERT INTO sequences (sequence_id, code, company_id, year, prefix, padding, next_number)
		VALUES ($1, $2, $3, $4, $5, $6, 2)
		ON CONFLICT (code, company_id, year)
		DO UPDATE SET next_number = sequences.next_number + 1
		RETURNING prefix, padding, sequences.next_number - 1;
	`

	var prefix string
	var padding int
	var number int64
	err := r.Pool.QueryRow(ctx, query,
		uuid.NewString(),
		code,
		companyID,
		year,
		defaults.Prefix,
		defaults.Padding,
	).Scan(&prefix, &padding, &number)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to draw next number for sequence "+code, err)
	}

	return fmt.Sprintf("%s/%d/%0*d", prefix, year, padding, number), nil
}
