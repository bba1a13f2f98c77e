package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/blood_connect/internal/auth"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionRepository хранит сессии по jti токена
type SessionRepository interface {
	CreateSession(ctx context.Context, tokenID string, session models.Session, ttl time.Duration) error
	// GetSession возвращает nil, nil если сессия не найдена или истекла
	GetSession(ctx context.Context, tokenID string) (*models.Session, error)
	DeleteSession(ctx context.Context, tokenID string) error
}

// SignupInput - данные для регистрации
type SignupInput struct {
	Name      string
	Email     string
	Password  string
	Role      models.Role
	BloodType models.BloodType
	Latitude  *float64
	Longitude *float64
}

// AuthResult - выданный токен и профиль пользователя
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService определяет контракт регистрации, входа и проверки токенов
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, tokenID string) error
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type authService struct {
	users    UserRepository
	sessions SessionRepository
	jwt      *auth.JWTService
	logger   *logrus.Logger
}

func NewAuthService(users UserRepository, sessions SessionRepository, jwtService *auth.JWTService, logger *logrus.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		jwt:      jwtService,
		logger:   logger,
	}
}

// Signup регистрирует пользователя и сразу открывает для него сессию
func (s *authService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Signup",
		"email":   email,
	})

	if input.Role == models.RoleAdmin {
		log.Warn("Attempt to self-assign admin role")
		return nil, fmt.Errorf("service: admin role cannot be self-assigned: %w", models.ErrForbidden)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		BloodType:    input.BloodType,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return s.openSession(ctx, log, user)
}

// Login проверяет пароль и выдает новый токен
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login with unknown email")
			return nil, models.ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load user")
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login with wrong password")
		return nil, models.ErrInvalidCredentials
	}

	return s.openSession(ctx, log, user)
}

func (s *authService) Logout(ctx context.Context, tokenID string) error {
	if err := s.sessions.DeleteSession(ctx, tokenID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "auth",
			"method":  "Logout",
		}).WithError(err).Error("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	return nil
}

// Authenticate проверяет подпись токена и наличие живой сессии
func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}
	if session == nil || session.UserID != claims.UserID {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

func (s *authService) openSession(ctx context.Context, log *logrus.Entry, user *models.User) (*AuthResult, error) {
	token, tokenID, err := s.jwt.Generate(user.ID, user.Role)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		return nil, fmt.Errorf("service: could not generate token: %w", err)
	}

	session := models.Session{UserID: user.ID, Role: user.Role}
	if err := s.sessions.CreateSession(ctx, tokenID, session, s.jwt.TTL()); err != nil {
		log.WithError(err).Error("Failed to create session")
		return nil, fmt.Errorf("service: could not create session: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
