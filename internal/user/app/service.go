package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cart "github.com/dwikikusuma/shopfront/internal/cart/domain"
	"github.com/dwikikusuma/shopfront/internal/user/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)

type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type Carts interface {
	CreateCart(ctx context.Context, userID string) (cart.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

type Service struct {
	users  UserRepo
	carts  Carts
	tokens TokenIssuer
	cost   int
}

func NewService(users UserRepo, carts Carts, tokens TokenIssuer, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{users: users, carts: carts, tokens: tokens, cost: bcryptCost}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Register creates the user and an empty cart and signs them in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	in.Email = domain.NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return Session{}, err
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return Session{}, fmt.Errorf("user %s: %w", in.Email, apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, domain.User{Email: in.Email, Name: in.Name, PasswordHash: hash})
	if err != nil {
		return Session{}, err
	}
	if _, err := s.carts.CreateCart(ctx, u.ID); err != nil {
		return Session{}, fmt.Errorf("create cart for %s: %w", u.ID, err)
	}

	return s.session(u)
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	in.Email = domain.NormalizeEmail(in.Email)
	if err := validate.Struct(in); err != nil {
		return Session{}, err
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(in.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.session(u)
}

// Logout empties the user's cart. Tokens are stateless and stay valid until
// they expire.
func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.carts.ClearCart(ctx, userID)
}

func (s *Service) session(u domain.User) (Session, error) {
	tok, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: tok, User: u}, nil
}
