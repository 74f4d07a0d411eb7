package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kwadjo-mensah/shopledger-backend/internal/config"
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const resetTokenTTL = time.Hour

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// dupEmailErr maps a unique-index violation on users.email to the
// sentinel. The pre-read check is only an optimization; the index is
// what actually holds under concurrent registration.
func dupEmailErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

// Register creates a business and its owner user in one transaction. The
// trial window starts immediately at registration.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	trialEnd := time.Now().AddDate(0, 0, trialDays)
	var user models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		biz := models.Business{
			Name:     req.BusinessName,
			ShopName: req.BusinessName,
			TrialEnd: &trialEnd,
		}
		if err := tx.Create(&biz).Error; err != nil {
			return fmt.Errorf("create business: %w", err)
		}
		user = models.User{
			ID:         uuid.New(),
			Name:       req.Name,
			Email:      req.Email,
			Password:   string(hash),
			Role:       models.RoleOwner,
			BusinessID: &biz.ID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, dupEmailErr(err)
	}

	return s.authResponse(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(&user)
}

// CreateStaff adds a manager or cashier to the caller's business.
func (s *AuthService) CreateStaff(businessID uint, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := models.Role(req.Role)
	if role != models.RoleManager && role != models.RoleCashier {
		return nil, fmt.Errorf("role must be manager or cashier")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       role,
		BusinessID: &businessID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp := userResponse(&user)
	return &resp, nil
}

func (s *AuthService) ListUsers(businessID uint) ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Scopes(tenant.ForBusiness(businessID)).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return out, nil
}

// DeleteUser removes a staff member. The owner row cannot be deleted
// this way; the business deletion flow handles it.
func (s *AuthService) DeleteUser(businessID uint, userID uuid.UUID) error {
	var user models.User
	if err := s.db.Scopes(tenant.ForBusiness(businessID)).First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}
	if user.Role == models.RoleOwner {
		return fmt.Errorf("cannot delete the business owner")
	}
	return s.db.Delete(&user).Error
}

// ForgotPassword issues a single-use reset token valid for one hour.
// Only the SHA-256 hash is stored; the raw token goes back to the
// caller boundary for out-of-band delivery.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrUserNotFound
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	rawToken := base64.URLEncoding.EncodeToString(raw)

	record := models.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return rawToken, nil
}

// ResetPassword consumes a reset token and sets the new password in the
// same transaction that marks the token used.
func (s *AuthService) ResetPassword(req *dto.ResetPasswordRequest) error {
	tokenHash := hashToken(req.Token)

	var record models.PasswordResetToken
	if err := s.db.Where("token_hash = ? AND used = false", tokenHash).First(&record).Error; err != nil {
		return ErrInvalidResetToken
	}
	if time.Now().After(record.ExpiresAt) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PasswordResetToken{}).
			Where("id = ? AND used = false", record.ID).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidResetToken
		}
		return tx.Model(&models.User{}).
			Where("id = ?", record.UserID).
			Update("password", string(hash)).Error
	})
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: userResponse(user)}, nil
}

// GenerateToken signs a bearer token carrying the caller identity the
// access gate needs: user id, role, and tenant id.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}
	if user.BusinessID != nil {
		claims["business_id"] = *user.BusinessID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func userResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		BusinessID: user.BusinessID,
	}
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
