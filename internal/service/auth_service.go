package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inventory-api/internal/core/auth"
	"inventory-api/internal/core/errs"
	"inventory-api/internal/domain"
	"inventory-api/pkg/utils"
)

type PasswordHasher interface {
	Hash(pw string) (string, error)
	Check(pw, hashed string) bool
}

type TokenIssuer interface {
	Issue(uid, email string) (string, error)
	Parse(token string) (*auth.Claims, error)
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type AuthService struct {
	users    domain.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	validate *validator.Validate
	log      *zap.Logger
}

func NewAuthService(store domain.Store, hasher PasswordHasher, tokens TokenIssuer, l *zap.Logger) *AuthService {
	return &AuthService{
		users:    store.Users(),
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      l,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.PublicUser, error) {
	if err := s.validate.Struct(in); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			for _, fe := range ves {
				if fe.Tag() == "required" {
					return nil, errs.Validation("Name, email, and password are required")
				}
			}
			return nil, errs.Validation("Invalid email format")
		}
		return nil, errs.Internal("validate register input failed", err)
	}

	if len(in.Password) > utils.MaxPasswordBytes {
		return nil, errs.Validation(fmt.Sprintf("Password must be at most %d bytes", utils.MaxPasswordBytes))
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, errs.Internal("lookup user failed", err)
	}
	if existing != nil {
		return nil, errs.Conflict("Email already registered")
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, errs.Internal("hash password failed", err)
	}
	u := domain.User{
		ID:           utils.NewID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		// 并发注册同一邮箱：唯一索引兜底
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, errs.Conflict("Email already registered")
		}
		return nil, errs.Internal("create user failed", err)
	}
	s.log.Info("user registered", zap.String("user_id", u.ID))
	pub := u.Public()
	return &pub, nil
}

// Login answers the same error for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, errs.Validation("Email and password are required")
	}

	u, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, errs.Internal("lookup user failed", err)
	}
	if u == nil || !s.hasher.Check(in.Password, u.PasswordHash) {
		return nil, errs.Auth("Invalid credentials")
	}

	tok, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil || tok == "" {
		return nil, errs.Internal("issue token failed", err)
	}
	return &LoginResult{Token: tok, User: u.Public()}, nil
}

func (s *AuthService) VerifyToken(token string) (*domain.Identity, error) {
	if token == "" {
		return nil, errs.Auth("Unauthorized")
	}
	c, err := s.tokens.Parse(token)
	if err != nil || !domain.ValidID(c.UID) {
		return nil, errs.Auth("Invalid or expired token")
	}
	return &domain.Identity{UserID: c.UID, Email: c.Email}, nil
}
