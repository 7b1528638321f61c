package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
	"github.com/bizledger/api-server-go/internal/model"
	"github.com/bizledger/api-server-go/internal/repository"
	"github.com/bizledger/api-server-go/internal/token"
	"github.com/bizledger/api-server-go/internal/util"
)

const minPasswordLength = 6

// RegisterStep1Request carries the credential and profile fields collected
// in the first registration step. Nothing is persisted until step 2: the
// client stages these fields and resubmits them with the financial data.
type RegisterStep1Request struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BusinessName string `json:"businessName"`
	PhoneNumber  string `json:"phoneNumber"`
}

type RegisterStep2Request struct {
	RegisterStep1Request
	NonCurrentAssets    string `json:"nonCurrentAssets"`
	NonCurrentAssetsDsc string `json:"nonCurrentAssetsDesc"`
	Liabilities         string `json:"liabilities"`
	LiabilitiesDesc     string `json:"liabilitiesDesc"`
	Equity              string `json:"equity"`
	EquityDesc          string `json:"equityDesc"`
	Currency            string `json:"currency"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// AuthService orchestrates registration and login. It owns none of the
// mechanics: hashing is bcrypt, tokens come from the token service, and
// email uniqueness is decided by the users table's unique index.
type AuthService struct {
	userRepo    repository.UserRepository
	tokens      *token.Service
	bcryptCost  int
	loginTTL    time.Duration
	registerTTL time.Duration
	now         func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *token.Service,
	bcryptCost int,
	loginTTL, registerTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		loginTTL:    loginTTL,
		registerTTL: registerTTL,
		now:         time.Now,
	}
}

func validateStep1(req *RegisterStep1Request) error {
	req.Email = util.NormalizeEmail(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	switch {
	case req.Email == "":
		return apperrors.MissingRequired("email")
	case req.Password == "":
		return apperrors.MissingRequired("password")
	case req.FirstName == "":
		return apperrors.MissingRequired("firstName")
	case req.LastName == "":
		return apperrors.MissingRequired("lastName")
	case req.BusinessName == "":
		return apperrors.MissingRequired("businessName")
	case req.PhoneNumber == "":
		return apperrors.MissingRequired("phoneNumber")
	}

	if !util.IsValidEmail(req.Email) {
		return apperrors.InvalidInput("email", "must be a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		return apperrors.InvalidInput("password", "must be at least 6 characters")
	}
	if !util.IsValidPhone(req.PhoneNumber) {
		return apperrors.InvalidInput("phoneNumber", "must be 10 digits")
	}
	return nil
}

// RegisterStep1 validates the first-step fields and rejects an already-used
// email early. The check is advisory; the unique index still decides the
// outcome when the account is actually created in step 2.
func (s *AuthService) RegisterStep1(ctx context.Context, req RegisterStep1Request) error {
	if err := validateStep1(&req); err != nil {
		return err
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return apperrors.Database(err)
	}
	if existing != nil {
		return apperrors.DuplicateEmail()
	}
	return nil
}

// RegisterStep2 re-validates everything server-side, hashes the password,
// creates the account and issues a token with the registration TTL.
// A token is only ever issued after the insert succeeded.
func (s *AuthService) RegisterStep2(ctx context.Context, req RegisterStep2Request) (*AuthResult, error) {
	if err := validateStep1(&req.RegisterStep1Request); err != nil {
		return nil, err
	}

	switch {
	case req.NonCurrentAssets == "":
		return nil, apperrors.MissingRequired("nonCurrentAssets")
	case req.Liabilities == "":
		return nil, apperrors.MissingRequired("liabilities")
	case req.Equity == "":
		return nil, apperrors.MissingRequired("equity")
	}
	if !util.IsValidAmount(req.NonCurrentAssets) {
		return nil, apperrors.InvalidInput("nonCurrentAssets", "must be a decimal amount")
	}
	if !util.IsValidAmount(req.Liabilities) {
		return nil, apperrors.InvalidInput("liabilities", "must be a decimal amount")
	}
	if !util.IsValidAmount(req.Equity) {
		return nil, apperrors.InvalidInput("equity", "must be a decimal amount")
	}

	var currency *model.Currency
	if req.Currency != "" {
		c := model.Currency(req.Currency)
		if !c.IsValid() {
			return nil, apperrors.InvalidInput("currency", "must be one of USD, LKR, INR, CAD, AUD")
		}
		currency = &c
	}

	hash, err := util.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Hashing(err)
	}

	user, err := s.userRepo.Create(ctx, model.CreateUserParams{
		Email:               req.Email,
		PasswordHash:        hash,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		BusinessName:        req.BusinessName,
		PhoneNumber:         req.PhoneNumber,
		NonCurrentAssets:    &req.NonCurrentAssets,
		NonCurrentAssetsDsc: optional(req.NonCurrentAssetsDsc),
		Liabilities:         &req.Liabilities,
		LiabilitiesDesc:     optional(req.LiabilitiesDesc),
		Equity:              &req.Equity,
		EquityDesc:          optional(req.EquityDesc),
		Currency:            currency,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.DuplicateEmail()
		}
		return nil, apperrors.Database(err)
	}

	signed, err := s.tokens.Issue(user.ID, s.registerTTL)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue token").WithCause(err)
	}

	log.Info().Str("userId", user.ID).Str("email", user.Email).Msg("user registered")

	return &AuthResult{Token: signed, User: user.Public()}, nil
}

// Login verifies credentials and issues a token with the login TTL.
// An unknown email and a wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	req.Email = util.NormalizeEmail(req.Email)
	if req.Email == "" {
		return nil, apperrors.MissingRequired("email")
	}
	if req.Password == "" {
		return nil, apperrors.MissingRequired("password")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		return nil, apperrors.InvalidCredentials()
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.InvalidCredentials()
	}

	now := s.now()
	if err := s.userRepo.RecordLogin(ctx, user.ID, now); err != nil {
		return nil, apperrors.Database(err)
	}
	user.LastLogin = &now

	signed, err := s.tokens.Issue(user.ID, s.loginTTL)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue token").WithCause(err)
	}

	log.Info().Str("userId", user.ID).Msg("user logged in")

	return &AuthResult{Token: signed, User: user.Public()}, nil
}

// Me returns the caller's own account view. The id always comes from a
// verified token, never from request input.
func (s *AuthService) Me(ctx context.Context, userID string) (*model.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User")
	}
	view := user.Public()
	return &view, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
