package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portssvc "github.com/finacct/check_deposit_app/internal/core/ports/services"
	"github.com/finacct/check_deposit_app/internal/core/services"
	"github.com/finacct/check_deposit_app/internal/dto"
	"github.com/finacct/check_deposit_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Jean Dupont", Username: "jdupont", Password: "s3cretpass"}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == req.Username &&
			u.Provider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Username, user.Username)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Jean Dupont", Username: "jdupont", Password: "s3cretpass"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "jdupont",
		PasswordHash: hash,
		Provider:     domain.ProviderLocal,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "jdupont").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jdupont", "s3cretpass")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	stored := &domain.User{Username: "jdupont", PasswordHash: hash, Provider: domain.ProviderLocal}

	suite.mockRepo.On("FindUserByUsername", ctx, "jdupont").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jdupont", "wrongpass")

	suite.Require().Error(err)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserSameError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Contains(err.Error(), "invalid credentials")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleUserHasNoPassword() {
	ctx := context.Background()
	stored := &domain.User{Username: "jdupont", Provider: domain.ProviderGoogle}

	suite.mockRepo.On("FindUserByUsername", ctx, "jdupont").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jdupont", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
}

// --- FindOrCreateGoogleUser ---

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_Existing() {
	ctx := context.Background()
	googleID := "google-sub-123"
	stored := &domain.User{UserID: uuid.NewString(), Provider: domain.ProviderGoogle, GoogleID: &googleID}

	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{ID: googleID})

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstLogin() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-sub-456", Email: "jean@example.com", VerifiedEmail: true, Name: "Jean Dupont"}

	suite.mockRepo.On("FindUserByGoogleID", ctx, info.ID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Provider == domain.ProviderGoogle &&
			u.GoogleID != nil && *u.GoogleID == info.ID &&
			u.Username == info.Email &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(info.Name, user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_UnverifiedEmail() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-sub-789", Email: "jean@example.com", VerifiedEmail: false}

	suite.mockRepo.On("FindUserByGoogleID", ctx, info.ID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateUser / DeleteUser ---

func (suite *UserServiceTestSuite) TestUpdateUser_SelfOnly() {
	ctx := context.Background()
	userID := uuid.NewString()
	otherID := uuid.NewString()
	name := "New Name"

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Name: &name}, otherID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
