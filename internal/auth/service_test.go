package auth_test

import (
	"testing"
	"time"

	"barshift-backend/internal/auth"
	"barshift-backend/internal/database/models"
	"barshift-backend/internal/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockStaffRepo *mocks.MockStaffRepositoryInterface
	authService   *auth.AuthService

	staff *models.StaffMember
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStaffRepo = mocks.NewMockStaffRepositoryInterface(suite.ctrl)

	service, err := auth.NewAuthService("test-secret-key", time.Hour, suite.mockStaffRepo)
	assert.NoError(suite.T(), err)
	suite.authService = service

	hash, err := auth.HashPassword("longenough1")
	assert.NoError(suite.T(), err)
	suite.staff = &models.StaffMember{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		FullName:     "Alex Rivera",
		Email:        "alex@example.com",
		PasswordHash: hash,
		Role:         models.StaffRoleBartender,
		Status:       models.StaffStatusActive,
	}
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	suite.mockStaffRepo.EXPECT().GetByEmail("alex@example.com").Return(suite.staff, nil)

	resp, err := suite.authService.Login("alex@example.com", "longenough1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), int64(3600), resp.ExpiresIn)
	assert.Equal(suite.T(), suite.staff.ID, resp.UserID)
	assert.NotEmpty(suite.T(), resp.AccessToken)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	suite.mockStaffRepo.EXPECT().GetByEmail("alex@example.com").Return(suite.staff, nil)

	resp, err := suite.authService.Login("alex@example.com", "wrongpassword")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, auth.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	suite.mockStaffRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.authService.Login("nobody@example.com", "longenough1")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, auth.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveStaffRejected() {
	suite.staff.Status = models.StaffStatusInactive
	suite.mockStaffRepo.EXPECT().GetByEmail("alex@example.com").Return(suite.staff, nil)

	resp, err := suite.authService.Login("alex@example.com", "longenough1")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, auth.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestValidateToken_RoundTrip() {
	token, err := suite.authService.GenerateToken(suite.staff)
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateToken(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.staff.ID, claims.UserID)
	assert.Equal(suite.T(), suite.staff.Email, claims.Email)
	assert.Equal(suite.T(), models.StaffRoleBartender, claims.Role)
	assert.Equal(suite.T(), suite.staff.ID.String(), claims.Subject)
}

func (suite *AuthServiceTestSuite) TestValidateToken_WrongSecretRejected() {
	other, err := auth.NewAuthService("a-different-secret", time.Hour, suite.mockStaffRepo)
	assert.NoError(suite.T(), err)

	token, err := other.GenerateToken(suite.staff)
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateToken(token)

	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestValidateToken_WrongSigningMethodRejected() {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": suite.staff.ID.String()})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateToken(unsigned)

	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Garbage() {
	claims, err := suite.authService.ValidateToken("not.a.token")

	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestNewAuthService_EmptySecretRejected() {
	service, err := auth.NewAuthService("", time.Hour, suite.mockStaffRepo)

	assert.Nil(suite.T(), service)
	assert.Error(suite.T(), err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
