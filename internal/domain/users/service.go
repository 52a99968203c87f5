package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dogs-registry/internal/platform/validate"
	"dogs-registry/internal/ports/auth"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokensDisabled     = errors.New("token issuing is disabled")
)

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer // nil en modo dev
	cost   int
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=150,username"`
	// bcrypt ignora lo que pase de 72 bytes
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validate.Struct(in); err != nil {
		return User{}, err
	}

	if _, err := s.repo.GetByUsername(ctx, in.Username); err == nil {
		return User{}, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login valida credenciales y emite un token.
func (s *Service) Login(ctx context.Context, username, password string) (auth.Token, User, error) {
	if s.issuer == nil {
		return auth.Token{}, User{}, ErrTokensDisabled
	}

	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.Token{}, User{}, ErrInvalidCredentials
		}
		return auth.Token{}, User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return auth.Token{}, User{}, ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(ctx, auth.Claims{UserID: u.ID, Username: u.Username})
	if err != nil {
		return auth.Token{}, User{}, fmt.Errorf("issue token: %w", err)
	}
	return tok, u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
