package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"impactio/internal/authz"
	"impactio/internal/models"
	"impactio/internal/repositories"
)

var ErrInvalidCredentials = eris.New("invalid email or password")

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Authenticate(token string) (*models.Session, error)
}

type authService struct {
	users  repositories.UserRepository
	tokens *authz.TokenManager
}

func NewAuthService(users repositories.UserRepository, tokens *authz.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Login checks the credentials and issues a session token.
// Unknown e-mail and wrong password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	log := zap.L().With(zap.String("email", email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		log.Info("login: unknown email")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ph := strings.TrimSpace(user.PasswordHash)
	if ph == "" {
		// пользователь без пароля войти не может
		log.Warn("login: empty password hash", zap.Int("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ph), []byte(password)); err != nil {
		log.Info("login: password mismatch", zap.Int("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	log.Info("login: success", zap.Int("user_id", user.ID))
	return &LoginResult{User: user, Token: token, ExpiresAt: exp}, nil
}

func (s *authService) Authenticate(token string) (*models.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	return claims.Session(), nil
}
