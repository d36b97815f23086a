package auth

import (
	"errors"
	"fmt"
	"time"

	"barshift-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffLookup is the slice of the staff repository the auth service needs
type StaffLookup interface {
	GetByEmail(email string) (*models.StaffMember, error)
	GetByID(id uuid.UUID) (*models.StaffMember, error)
}

// AuthService issues and validates stateless JWT bearer tokens
type AuthService struct {
	secret    []byte
	tokenTTL  time.Duration
	staffRepo StaffLookup
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID        `json:"user_id"`
	Email    string           `json:"email"`
	FullName string           `json:"full_name"`
	Role     models.StaffRole `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	TokenType   string           `json:"tokenType"`
	ExpiresIn   int64            `json:"expiresIn"`
	UserID      uuid.UUID        `json:"userId"`
	FullName    string           `json:"fullName"`
	Role        models.StaffRole `json:"role"`
}

// ErrInvalidCredentials is returned when the email or password does not match
var ErrInvalidCredentials = errors.New("invalid email or password")

// NewAuthService creates a new authentication service
func NewAuthService(secret string, tokenTTL time.Duration, staffRepo StaffLookup) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		staffRepo: staffRepo,
	}, nil
}

// Login verifies credentials and issues a token for an active staff member
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	staff, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up staff member: %w", err)
	}
	if !CheckPassword(staff.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if staff.Status != models.StaffStatusActive {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		UserID:      staff.ID,
		FullName:    staff.FullName,
		Role:        staff.Role,
	}, nil
}

// GenerateToken creates a signed JWT for the staff member
func (s *AuthService) GenerateToken(staff *models.StaffMember) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   staff.ID,
		Email:    staff.Email,
		FullName: staff.FullName,
		Role:     staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "barshift-backend",
			Subject:   staff.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates and parses a JWT token
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
