package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/check_deposit_app/internal/core/ports/services"
	"github.com/finacct/check_deposit_app/internal/core/services"
	"github.com/finacct/check_deposit_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DepositRepository ---
type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) SaveDeposit(ctx context.Context, deposit domain.CheckDeposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) UpdateDeposit(ctx context.Context, deposit domain.CheckDeposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) UpdateDepositState(ctx context.Context, depositID string, state domain.DepositState, moveID *string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, depositID, state, moveID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockDepositRepository) UpdateDepositStateTx(ctx context.Context, tx pgx.Tx, depositID string, state domain.DepositState, moveID *string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, depositID, state, moveID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockDepositRepository) DeleteDeposit(ctx context.Context, depositID string) error {
	args := m.Called(ctx, depositID)
	return args.Error(0)
}

func (m *MockDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.CheckDeposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckDeposit), args.Error(1)
}

func (m *MockDepositRepository) ListDepositsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.CheckDeposit, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	var deposits []domain.CheckDeposit
	if args.Get(0) != nil {
		deposits = args.Get(0).([]domain.CheckDeposit)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return deposits, token, args.Error(2)
}

func (m *MockDepositRepository) GetDepositTotals(ctx context.Context, depositIDs []string) (map[string]portsrepo.DepositTotals, error) {
	args := m.Called(ctx, depositIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]portsrepo.DepositTotals), args.Error(1)
}

// --- Mock MoveRepository ---
type MockMoveRepository struct {
	mock.Mock
}

func (m *MockMoveRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockMoveRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMoveRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMoveRepository) FindMoveByID(ctx context.Context, moveID string) (*domain.Move, error) {
	args := m.Called(ctx, moveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Move), args.Error(1)
}

func (m *MockMoveRepository) FindLinesByIDs(ctx context.Context, lineIDs []string) ([]domain.MoveLine, error) {
	args := m.Called(ctx, lineIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoveLine), args.Error(1)
}

func (m *MockMoveRepository) FindLinesByDepositID(ctx context.Context, depositID string) ([]domain.MoveLine, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoveLine), args.Error(1)
}

func (m *MockMoveRepository) FindPendingCheckLines(ctx context.Context, companyID string, accountID string, currencyCode string) ([]domain.MoveLine, error) {
	args := m.Called(ctx, companyID, accountID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoveLine), args.Error(1)
}

func (m *MockMoveRepository) SaveMove(ctx context.Context, move domain.Move) error {
	args := m.Called(ctx, move)
	return args.Error(0)
}

func (m *MockMoveRepository) UpdateMoveState(ctx context.Context, moveID string, state domain.MoveState, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, moveID, state, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockMoveRepository) DeleteMove(ctx context.Context, moveID string) error {
	args := m.Called(ctx, moveID)
	return args.Error(0)
}

func (m *MockMoveRepository) SetLinesDeposit(ctx context.Context, lineIDs []string, depositID *string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, lineIDs, depositID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockMoveRepository) ReconcileLines(ctx context.Context, lineIDs []string, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, lineIDs, reconcileID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockMoveRepository) UnreconcileGroup(ctx context.Context, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, reconcileID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockMoveRepository) SaveMoveTx(ctx context.Context, tx pgx.Tx, move domain.Move) error {
	args := m.Called(ctx, tx, move)
	return args.Error(0)
}

func (m *MockMoveRepository) UpdateMoveStateTx(ctx context.Context, tx pgx.Tx, moveID string, state domain.MoveState, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, moveID, state, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockMoveRepository) DeleteMoveTx(ctx context.Context, tx pgx.Tx, moveID string) error {
	args := m.Called(ctx, tx, moveID)
	return args.Error(0)
}

func (m *MockMoveRepository) ReconcileLinesTx(ctx context.Context, tx pgx.Tx, lineIDs []string, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, lineIDs, reconcileID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockMoveRepository) UnreconcileGroupTx(ctx context.Context, tx pgx.Tx, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, reconcileID, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock JournalReader ---
type MockJournalReader struct {
	mock.Mock
}

func (m *MockJournalReader) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalReader) ListJournalsByCompany(ctx context.Context, companyID string) ([]domain.Journal, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalReader) FindBankJournals(ctx context.Context, companyID string, withBankAccount bool) ([]domain.Journal, error) {
	args := m.Called(ctx, companyID, withBankAccount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

// --- Mock CompanyReader ---
type MockCompanyReader struct {
	mock.Mock
}

func (m *MockCompanyReader) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyReader) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyReader) FindUserCompanyRole(ctx context.Context, userID string, companyID string) (*domain.UserCompany, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCompany), args.Error(1)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextByCode(ctx context.Context, code string, companyID string, date time.Time) (string, error) {
	args := m.Called(ctx, code, companyID, date)
	return args.String(0), args.Error(1)
}

// --- Mock MoveService ---
type MockMoveService struct {
	mock.Mock
}

func (m *MockMoveService) GetMoveByID(ctx context.Context, moveID string) (*domain.Move, error) {
	args := m.Called(ctx, moveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Move), args.Error(1)
}

func (m *MockMoveService) CreateMove(ctx context.Context, move domain.Move, creatorUserID string) (*domain.Move, error) {
	args := m.Called(ctx, move, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Move), args.Error(1)
}

func (m *MockMoveService) PostMove(ctx context.Context, moveID string, userID string) error {
	args := m.Called(ctx, moveID, userID)
	return args.Error(0)
}

func (m *MockMoveService) UnpostMove(ctx context.Context, moveID string, userID string) error {
	args := m.Called(ctx, moveID, userID)
	return args.Error(0)
}

func (m *MockMoveService) DeleteMove(ctx context.Context, moveID string, userID string) error {
	args := m.Called(ctx, moveID, userID)
	return args.Error(0)
}

func (m *MockMoveService) ReconcileLines(ctx context.Context, lineIDs []string, userID string) error {
	args := m.Called(ctx, lineIDs, userID)
	return args.Error(0)
}

func (m *MockMoveService) UnreconcileLine(ctx context.Context, lineID string, userID string) error {
	args := m.Called(ctx, lineID, userID)
	return args.Error(0)
}

func (m *MockMoveService) PostMoveWithReconciliation(ctx context.Context, move domain.Move, pairedLineIDs []string, creatorUserID string, finish func(ctx context.Context, tx pgx.Tx) error) (*domain.Move, error) {
	args := m.Called(ctx, move, pairedLineIDs, creatorUserID, finish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Move), args.Error(1)
}

func (m *MockMoveService) RevertMove(ctx context.Context, moveID string, userID string, finish func(ctx context.Context, tx pgx.Tx) error) error {
	args := m.Called(ctx, moveID, userID, finish)
	return args.Error(0)
}

// --- Mock CompanyAuthorizer ---
type MockCompanyAuthorizer struct {
	mock.Mock
}

func (m *MockCompanyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	args := m.Called(ctx, userID, companyID, requiredRole)
	return args.Error(0)
}

// --- Test Suite ---
type DepositServiceTestSuite struct {
	suite.Suite
	mockDepositRepo  *MockDepositRepository
	mockMoveRepo     *MockMoveRepository
	mockJournalRepo  *MockJournalReader
	mockCompanyRepo  *MockCompanyReader
	mockSequenceRepo *MockSequenceRepository
	mockMoveSvc      *MockMoveService
	mockAuthorizer   *MockCompanyAuthorizer
	service          portssvc.DepositSvcFacade

	companyID string
	userID    string
}

func (suite *DepositServiceTestSuite) SetupTest() {
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockMoveRepo = new(MockMoveRepository)
	suite.mockJournalRepo = new(MockJournalReader)
	suite.mockCompanyRepo = new(MockCompanyReader)
	suite.mockSequenceRepo = new(MockSequenceRepository)
	suite.mockMoveSvc = new(MockMoveService)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewDepositService(
		suite.mockDepositRepo,
		suite.mockMoveRepo,
		suite.mockJournalRepo,
		suite.mockCompanyRepo,
		suite.mockSequenceRepo,
		suite.mockMoveSvc,
		suite.mockAuthorizer,
	)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *DepositServiceTestSuite) authorizeAny() {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, mock.Anything).Return(nil)
}

func strPtr(s string) *string { return &s }

func (suite *DepositServiceTestSuite) checkJournal(accountID string) *domain.Journal {
	return &domain.Journal{
		JournalID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Checks Received",
		Type:      domain.JournalTypeBank,
		InboundMethods: []domain.PaymentMethodLine{
			{MethodCode: domain.PaymentMethodManual, PaymentAccountID: &accountID},
		},
		IsActive: true,
	}
}

func (suite *DepositServiceTestSuite) bankJournal(paymentAccountID *string) *domain.Journal {
	j := &domain.Journal{
		JournalID:         uuid.NewString(),
		CompanyID:         suite.companyID,
		Name:              "Main Bank",
		Type:              domain.JournalTypeBank,
		BankAccountNumber: strPtr("FR76 1234 5678"),
		IsActive:          true,
	}
	if paymentAccountID != nil {
		j.InboundMethods = []domain.PaymentMethodLine{
			{MethodCode: domain.PaymentMethodManual, PaymentAccountID: paymentAccountID},
		}
	}
	return j
}

func (suite *DepositServiceTestSuite) draftDeposit(journalID, bankJournalID string) *domain.CheckDeposit {
	return &domain.CheckDeposit{
		DepositID:     uuid.NewString(),
		Name:          "CD/2026/00001",
		CompanyID:     suite.companyID,
		DepositDate:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		CurrencyCode:  "EUR",
		State:         domain.DepositDraft,
		JournalID:     journalID,
		BankJournalID: bankJournalID,
	}
}

func (suite *DepositServiceTestSuite) checkLine(depositID *string, amount string) domain.MoveLine {
	return domain.MoveLine{
		LineID:         uuid.NewString(),
		MoveID:         uuid.NewString(),
		CompanyID:      suite.companyID,
		AccountID:      "acct-checks",
		Name:           "Check payment",
		Ref:            "CHK-" + uuid.NewString()[:8],
		Debit:          decimal.RequireFromString(amount),
		AmountCurrency: decimal.RequireFromString(amount),
		CurrencyCode:   "EUR",
		ParentState:    domain.MovePosted,
		CheckDepositID: depositID,
	}
}

// --- CreateDeposit ---

func (suite *DepositServiceTestSuite) TestCreateDeposit_DefaultsAndSequence() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	bankJournal := suite.bankJournal(nil)
	company := &domain.Company{CompanyID: suite.companyID, Name: "Acme", CurrencyCode: "EUR"}

	suite.authorizeAny()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockJournalRepo.On("FindBankJournals", ctx, suite.companyID, false).Return([]domain.Journal{*checkJournal}, nil).Once()
	suite.mockJournalRepo.On("FindBankJournals", ctx, suite.companyID, true).Return([]domain.Journal{*bankJournal}, nil).Once()
	suite.mockSequenceRepo.On("NextByCode", ctx, domain.SequenceCodeDeposit, suite.companyID, mock.AnythingOfType("time.Time")).Return("CD/2026/00042", nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", ctx, mock.MatchedBy(func(d domain.CheckDeposit) bool {
		return d.Name == "CD/2026/00042" &&
			d.State == domain.DepositDraft &&
			d.JournalID == checkJournal.JournalID &&
			d.BankJournalID == bankJournal.JournalID &&
			d.CurrencyCode == "EUR" &&
			d.CreatedBy == suite.userID
	})).Return(nil).Once()

	deposit, err := suite.service.CreateDeposit(ctx, suite.companyID, dto.CreateDepositRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(deposit)
	suite.Equal("CD/2026/00042", deposit.Name)
	suite.Equal(domain.DepositDraft, deposit.State)
	suite.mockDepositRepo.AssertExpectations(suite.T())
	suite.mockSequenceRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_AmbiguousDefaultJournal() {
	ctx := context.Background()
	company := &domain.Company{CompanyID: suite.companyID, CurrencyCode: "EUR"}

	suite.authorizeAny()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockJournalRepo.On("FindBankJournals", ctx, suite.companyID, false).
		Return([]domain.Journal{*suite.checkJournal("a"), *suite.checkJournal("b")}, nil).Once()

	deposit, err := suite.service.CreateDeposit(ctx, suite.companyID, dto.CreateDepositRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_JournalCurrencyWins() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	checkJournal.CurrencyCode = strPtr("USD")
	bankJournal := suite.bankJournal(nil)
	company := &domain.Company{CompanyID: suite.companyID, CurrencyCode: "EUR"}

	suite.authorizeAny()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, checkJournal.JournalID).Return(checkJournal, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, bankJournal.JournalID).Return(bankJournal, nil).Once()
	suite.mockSequenceRepo.On("NextByCode", ctx, domain.SequenceCodeDeposit, suite.companyID, mock.AnythingOfType("time.Time")).Return("CD/2026/00001", nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", ctx, mock.MatchedBy(func(d domain.CheckDeposit) bool {
		return d.CurrencyCode == "USD"
	})).Return(nil).Once()

	req := dto.CreateDepositRequest{JournalID: &checkJournal.JournalID, BankJournalID: &bankJournal.JournalID}
	deposit, err := suite.service.CreateDeposit(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("USD", deposit.CurrencyCode)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

// --- UpdateDeposit ---

func (suite *DepositServiceTestSuite) TestUpdateDeposit_JournalChangeRederivesCurrency() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	newJournal := suite.checkJournal("acct-checks")
	newJournal.CurrencyCode = strPtr("USD")
	company := &domain.Company{CompanyID: suite.companyID, CurrencyCode: "EUR"}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, newJournal.JournalID).Return(newJournal, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return([]domain.MoveLine{}, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.CheckDeposit) bool {
		return d.JournalID == newJournal.JournalID && d.CurrencyCode == "USD"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateDeposit(ctx, suite.companyID, deposit.DepositID, dto.UpdateDepositRequest{JournalID: &newJournal.JournalID}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("USD", updated.CurrencyCode)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestUpdateDeposit_ExplicitCurrencyWinsOverJournal() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	newJournal := suite.checkJournal("acct-checks")
	company := &domain.Company{CompanyID: suite.companyID, CurrencyCode: "EUR"}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, newJournal.JournalID).Return(newJournal, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return([]domain.MoveLine{}, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.CheckDeposit) bool {
		return d.CurrencyCode == "GBP"
	})).Return(nil).Once()

	req := dto.UpdateDepositRequest{JournalID: &newJournal.JournalID, CurrencyCode: strPtr("GBP")}
	updated, err := suite.service.UpdateDeposit(ctx, suite.companyID, deposit.DepositID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("GBP", updated.CurrencyCode)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

// --- AttachChecks ---

func (suite *DepositServiceTestSuite) TestAttachChecks_Success() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	deposit := suite.draftDeposit(checkJournal.JournalID, uuid.NewString())
	line := suite.checkLine(nil, "125.50")

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, checkJournal.JournalID).Return(checkJournal, nil).Once()
	suite.mockMoveRepo.On("FindLinesByIDs", ctx, []string{line.LineID}).Return([]domain.MoveLine{line}, nil).Once()
	suite.mockMoveRepo.On("SetLinesDeposit", ctx, []string{line.LineID}, &deposit.DepositID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.AttachChecks(ctx, suite.companyID, deposit.DepositID, []string{line.LineID}, suite.userID)

	suite.Require().NoError(err)
	suite.mockMoveRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestAttachChecks_CurrencyMismatch() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	deposit := suite.draftDeposit(checkJournal.JournalID, uuid.NewString())
	line := suite.checkLine(nil, "99.00")
	line.CurrencyCode = "USD"

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, checkJournal.JournalID).Return(checkJournal, nil).Once()
	suite.mockMoveRepo.On("FindLinesByIDs", ctx, []string{line.LineID}).Return([]domain.MoveLine{line}, nil).Once()

	err := suite.service.AttachChecks(ctx, suite.companyID, deposit.DepositID, []string{line.LineID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "USD")
	suite.Contains(err.Error(), "EUR")
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "SetLinesDeposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestAttachChecks_AlreadyInAnotherDeposit() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	deposit := suite.draftDeposit(checkJournal.JournalID, uuid.NewString())
	otherDepositID := uuid.NewString()
	line := suite.checkLine(&otherDepositID, "50.00")

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, checkJournal.JournalID).Return(checkJournal, nil).Once()
	suite.mockMoveRepo.On("FindLinesByIDs", ctx, []string{line.LineID}).Return([]domain.MoveLine{line}, nil).Once()

	err := suite.service.AttachChecks(ctx, suite.companyID, deposit.DepositID, []string{line.LineID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *DepositServiceTestSuite) TestAttachChecks_DoneDeposit() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	deposit.State = domain.DepositDone

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()

	err := suite.service.AttachChecks(ctx, suite.companyID, deposit.DepositID, []string{uuid.NewString()}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- GetAllChecks ---

func (suite *DepositServiceTestSuite) TestGetAllChecks_AttachesPending() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	deposit := suite.draftDeposit(checkJournal.JournalID, uuid.NewString())
	lines := []domain.MoveLine{suite.checkLine(nil, "10.00"), suite.checkLine(nil, "20.00")}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, checkJournal.JournalID).Return(checkJournal, nil).Once()
	suite.mockMoveRepo.On("FindPendingCheckLines", ctx, suite.companyID, "acct-checks", "EUR").Return(lines, nil).Once()
	suite.mockMoveRepo.On("SetLinesDeposit", ctx, []string{lines[0].LineID, lines[1].LineID}, &deposit.DepositID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	count, err := suite.service.GetAllChecks(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockMoveRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestGetAllChecks_NothingPending() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	deposit := suite.draftDeposit(checkJournal.JournalID, uuid.NewString())

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, checkJournal.JournalID).Return(checkJournal, nil).Once()
	suite.mockMoveRepo.On("FindPendingCheckLines", ctx, suite.companyID, "acct-checks", "EUR").Return([]domain.MoveLine{}, nil).Once()

	count, err := suite.service.GetAllChecks(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *DepositServiceTestSuite) TestGetAllChecks_NoManualInboundAccount() {
	ctx := context.Background()
	checkJournal := suite.checkJournal("acct-checks")
	checkJournal.InboundMethods = nil
	deposit := suite.draftDeposit(checkJournal.JournalID, uuid.NewString())

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, checkJournal.JournalID).Return(checkJournal, nil).Once()

	count, err := suite.service.GetAllChecks(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- ValidateDeposit ---

func (suite *DepositServiceTestSuite) TestValidateDeposit_Success() {
	ctx := context.Background()
	bankAccountID := "acct-outstanding"
	bankJournal := suite.bankJournal(&bankAccountID)
	deposit := suite.draftDeposit(uuid.NewString(), bankJournal.JournalID)
	company := &domain.Company{CompanyID: suite.companyID, Name: "Acme", CurrencyCode: "EUR"}
	checks := []domain.MoveLine{
		suite.checkLine(&deposit.DepositID, "100.00"),
		suite.checkLine(&deposit.DepositID, "50.25"),
	}

	postedMove := &domain.Move{
		MoveID:    uuid.NewString(),
		CompanyID: suite.companyID,
		JournalID: deposit.JournalID,
		State:     domain.MovePosted,
	}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return(checks, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, bankJournal.JournalID).Return(bankJournal, nil).Once()
	suite.mockMoveSvc.On("PostMoveWithReconciliation", ctx, mock.MatchedBy(func(m domain.Move) bool {
		if len(m.Lines) != 3 || m.JournalID != deposit.JournalID {
			return false
		}
		counterpart := m.Lines[2]
		if counterpart.AccountID != bankAccountID || !counterpart.Debit.Equal(decimal.RequireFromString("150.25")) {
			return false
		}
		for i, check := range checks {
			mirror := m.Lines[i]
			if !mirror.Credit.Equal(check.Debit) ||
				mirror.CheckDepositID != nil ||
				mirror.Name != "Check Ref. "+check.Ref {
				return false
			}
		}
		return true
	}), []string{checks[0].LineID, checks[1].LineID}, suite.userID, mock.Anything).
		Run(func(args mock.Arguments) {
			finish := args.Get(4).(func(ctx context.Context, tx pgx.Tx) error)
			suite.Require().NoError(finish(ctx, nil))
		}).Return(postedMove, nil).Once()
	suite.mockDepositRepo.On("UpdateDepositStateTx", ctx, mock.Anything, deposit.DepositID, domain.DepositDone,
		mock.MatchedBy(func(id *string) bool { return id != nil && *id != "" }),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.ValidateDeposit(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.DepositDone, result.State)
	suite.Require().NotNil(result.MoveID)
	suite.Equal(postedMove.MoveID, *result.MoveID)
	suite.True(result.TotalAmount.Equal(decimal.RequireFromString("150.25")))
	suite.Equal(2, result.CheckCount)
	suite.mockMoveSvc.AssertExpectations(suite.T())
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestValidateDeposit_FallsBackToOutstandingReceipts() {
	ctx := context.Background()
	bankJournal := suite.bankJournal(nil)
	deposit := suite.draftDeposit(uuid.NewString(), bankJournal.JournalID)
	outstandingID := "acct-company-outstanding"
	company := &domain.Company{CompanyID: suite.companyID, CurrencyCode: "EUR", OutstandingReceiptsAccountID: &outstandingID}
	checks := []domain.MoveLine{suite.checkLine(&deposit.DepositID, "75.00")}

	postedMove := &domain.Move{MoveID: uuid.NewString(), State: domain.MovePosted}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return(checks, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, bankJournal.JournalID).Return(bankJournal, nil).Once()
	suite.mockMoveSvc.On("PostMoveWithReconciliation", ctx, mock.MatchedBy(func(m domain.Move) bool {
		return m.Lines[len(m.Lines)-1].AccountID == outstandingID
	}), []string{checks[0].LineID}, suite.userID, mock.Anything).
		Run(func(args mock.Arguments) {
			finish := args.Get(4).(func(ctx context.Context, tx pgx.Tx) error)
			suite.Require().NoError(finish(ctx, nil))
		}).Return(postedMove, nil).Once()
	suite.mockDepositRepo.On("UpdateDepositStateTx", ctx, mock.Anything, deposit.DepositID, domain.DepositDone,
		mock.MatchedBy(func(id *string) bool { return id != nil }),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.ValidateDeposit(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().NoError(err)
	suite.mockMoveSvc.AssertExpectations(suite.T())
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestValidateDeposit_NoCounterpartAccount() {
	ctx := context.Background()
	bankJournal := suite.bankJournal(nil)
	deposit := suite.draftDeposit(uuid.NewString(), bankJournal.JournalID)
	company := &domain.Company{CompanyID: suite.companyID, Name: "Acme", CurrencyCode: "EUR"}
	checks := []domain.MoveLine{suite.checkLine(&deposit.DepositID, "75.00")}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return(checks, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, bankJournal.JournalID).Return(bankJournal, nil).Once()

	result, err := suite.service.ValidateDeposit(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockMoveSvc.AssertNotCalled(suite.T(), "PostMoveWithReconciliation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestValidateDeposit_NoChecks() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return([]domain.MoveLine{}, nil).Once()

	result, err := suite.service.ValidateDeposit(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DepositServiceTestSuite) TestValidateDeposit_AlreadyDone() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	deposit.State = domain.DepositDone

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()

	result, err := suite.service.ValidateDeposit(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- BackToDraft ---

func (suite *DepositServiceTestSuite) TestBackToDraft_Success() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	moveID := uuid.NewString()
	deposit.State = domain.DepositDone
	deposit.MoveID = &moveID

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockMoveSvc.On("RevertMove", ctx, moveID, suite.userID, mock.Anything).
		Run(func(args mock.Arguments) {
			finish := args.Get(3).(func(ctx context.Context, tx pgx.Tx) error)
			suite.Require().NoError(finish(ctx, nil))
		}).Return(nil).Once()
	suite.mockDepositRepo.On("UpdateDepositStateTx", ctx, mock.Anything, deposit.DepositID, domain.DepositDraft, (*string)(nil), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.BackToDraft(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.DepositDraft, result.State)
	suite.Nil(result.MoveID)
	suite.mockMoveSvc.AssertExpectations(suite.T())
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestBackToDraft_LockedJournal() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	moveID := uuid.NewString()
	deposit.State = domain.DepositDone
	deposit.MoveID = &moveID
	lockedErr := apperrors.NewConflictError("journal Main Bank does not allow cancelling posted entries")

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockMoveSvc.On("RevertMove", ctx, moveID, suite.userID, mock.Anything).Return(lockedErr).Once()

	result, err := suite.service.BackToDraft(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "UpdateDepositStateTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestBackToDraft_NotValidated() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()

	result, err := suite.service.BackToDraft(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- DeleteDeposit ---

func (suite *DepositServiceTestSuite) TestDeleteDeposit_ReleasesChecks() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	line := suite.checkLine(&deposit.DepositID, "30.00")

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return([]domain.MoveLine{line}, nil).Once()
	suite.mockMoveRepo.On("SetLinesDeposit", ctx, []string{line.LineID}, (*string)(nil), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDepositRepo.On("DeleteDeposit", ctx, deposit.DepositID).Return(nil).Once()

	err := suite.service.DeleteDeposit(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().NoError(err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
	suite.mockMoveRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestDeleteDeposit_RefusedWhenDone() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	deposit.State = domain.DepositDone

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()

	err := suite.service.DeleteDeposit(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "DeleteDeposit", mock.Anything, mock.Anything)
}

// --- Reads ---

func (suite *DepositServiceTestSuite) TestGetDepositByID_FillsTotals() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	company := &domain.Company{CompanyID: suite.companyID, CurrencyCode: "EUR"}
	lines := []domain.MoveLine{suite.checkLine(&deposit.DepositID, "40.00")}
	totals := map[string]portsrepo.DepositTotals{
		deposit.DepositID: {Debit: decimal.RequireFromString("40.00"), AmountCurrency: decimal.RequireFromString("40.00"), Count: 1},
	}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockDepositRepo.On("GetDepositTotals", ctx, []string{deposit.DepositID}).Return(totals, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return(lines, nil).Once()

	result, resultLines, err := suite.service.GetDepositByID(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.TotalAmount.Equal(decimal.RequireFromString("40.00")))
	suite.Equal(1, result.CheckCount)
	suite.Len(resultLines, 1)
}

func (suite *DepositServiceTestSuite) TestGetDepositByID_WrongCompany() {
	ctx := context.Background()
	deposit := suite.draftDeposit(uuid.NewString(), uuid.NewString())
	deposit.CompanyID = uuid.NewString()

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()

	_, _, err := suite.service.GetDepositByID(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DepositServiceTestSuite) TestListDeposits_Success() {
	ctx := context.Background()
	company := &domain.Company{CompanyID: suite.companyID, CurrencyCode: "EUR"}
	d1 := *suite.draftDeposit(uuid.NewString(), uuid.NewString())
	d2 := *suite.draftDeposit(uuid.NewString(), uuid.NewString())
	nextToken := "tok"
	totals := map[string]portsrepo.DepositTotals{
		d1.DepositID: {Debit: decimal.RequireFromString("10.00"), Count: 1},
	}

	suite.authorizeAny()
	suite.mockDepositRepo.On("ListDepositsByCompany", ctx, suite.companyID, 20, (*string)(nil)).Return([]domain.CheckDeposit{d1, d2}, &nextToken, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockDepositRepo.On("GetDepositTotals", ctx, []string{d1.DepositID, d2.DepositID}).Return(totals, nil).Once()

	resp, err := suite.service.ListDeposits(ctx, suite.companyID, suite.userID, dto.ListDepositsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Deposits, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
	suite.Equal(1, resp.Deposits[0].CheckCount)
	suite.Zero(resp.Deposits[1].CheckCount)
}

func (suite *DepositServiceTestSuite) TestListDeposits_Unauthorized() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleReadOnly).Return(apperrors.ErrForbidden).Once()

	resp, err := suite.service.ListDeposits(ctx, suite.companyID, suite.userID, dto.ListDepositsParams{})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *DepositServiceTestSuite) TestGetDepositSlip_Success() {
	ctx := context.Background()
	bankJournal := suite.bankJournal(nil)
	deposit := suite.draftDeposit(uuid.NewString(), bankJournal.JournalID)
	company := &domain.Company{CompanyID: suite.companyID, Name: "Acme", CurrencyCode: "EUR"}
	lines := []domain.MoveLine{
		suite.checkLine(&deposit.DepositID, "100.00"),
		suite.checkLine(&deposit.DepositID, "23.45"),
	}

	suite.authorizeAny()
	suite.mockDepositRepo.On("FindDepositByID", ctx, deposit.DepositID).Return(deposit, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(company, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, bankJournal.JournalID).Return(bankJournal, nil).Once()
	suite.mockMoveRepo.On("FindLinesByDepositID", ctx, deposit.DepositID).Return(lines, nil).Once()

	slip, err := suite.service.GetDepositSlip(ctx, suite.companyID, deposit.DepositID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(deposit.Name, slip.DepositName)
	suite.Equal("Acme", slip.CompanyName)
	suite.Equal(bankJournal.Name, slip.BankJournal)
	suite.Len(slip.Rows, 2)
	suite.Equal(2, slip.NumberOfRows)
	suite.True(slip.TotalAmount.Equal(decimal.RequireFromString("123.45")))
}

// --- Run Suite ---
func TestDepositService(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
