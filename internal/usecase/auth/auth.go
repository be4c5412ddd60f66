package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-booking/internal/domain/account"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const TokenTTL = 24 * time.Hour

// ProfileInitializer writes the starting profile of a fresh account.
type ProfileInitializer interface {
	Init(ctx context.Context, owner, name, email string) error
}

type RegisterInput struct {
	Name     string `binding:"required"`
	Email    string `binding:"required,email"`
	Password string `binding:"required,min=6"`
}

type Session struct {
	Account *models.Account `json:"account"`
	OwnerID string          `json:"owner_id"`
	Token   string          `json:"token"`
}

type Service struct {
	accounts account.Repository
	profiles ProfileInitializer
	secret   []byte
	now      timezone.Clock
}

func NewService(
	accounts account.Repository,
	profiles ProfileInitializer,
	secret string,
	now timezone.Clock,
) *Service {
	return &Service{
		accounts: accounts,
		profiles: profiles,
		secret:   []byte(secret),
		now:      now,
	}
}

// OwnerID is the storage owner key derived from an account id.
func OwnerID(a *models.Account) string {
	return strconv.FormatUint(uint64(a.ID), 10)
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = validators.NormalizeEmail(in.Email)
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	name, email := in.Name, in.Email

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			return nil, httperr.ErrBusiness("email_already_exists")
		}
		return nil, err
	}

	owner := OwnerID(acc)
	if err := s.profiles.Init(ctx, owner, name, email); err != nil {
		return nil, err
	}

	return s.session(acc)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	acc, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return s.session(acc)
}

func (s *Service) session(acc *models.Account) (*Session, error) {
	owner := OwnerID(acc)
	token, err := s.token(owner)
	if err != nil {
		return nil, err
	}
	return &Session{Account: acc, OwnerID: owner, Token: token}, nil
}

// --------- JWT ---------

func (s *Service) token(owner string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": owner,
		"exp": now.Add(TokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
