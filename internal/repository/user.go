package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bizledger/api-server-go/internal/model"
)

// ErrDuplicateEmail is returned by Create when the unique index on email
// rejects the insert. The index, not this code, decides the race between
// concurrent registrations.
var ErrDuplicateEmail = errors.New("email already exists")

const pqUniqueViolation = "23505"

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, params model.CreateUserParams) (*model.User, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
	UpdateBalanceSheet(ctx context.Context, id string, params model.UpdateBalanceSheetParams) (*model.User, error)
}

type userRepo struct {
	db sqlxDB
}

// sqlxDB is an interface satisfied by both *sqlx.DB and *sqlx.Tx
type sqlxDB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM users WHERE id = $1
	`, id)
	return HandleNotFound(&user, err)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM users WHERE email = $1
	`, email)
	return HandleNotFound(&user, err)
}

func (r *userRepo) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		INSERT INTO users (
			id, email, password_hash, first_name, last_name, business_name, phone_number,
			non_current_assets, non_current_assets_desc,
			liabilities, liabilities_desc,
			equity, equity_desc, currency
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING *
	`, uuid.NewString(), params.Email, params.PasswordHash,
		params.FirstName, params.LastName, params.BusinessName, params.PhoneNumber,
		params.NonCurrentAssets, params.NonCurrentAssetsDsc,
		params.Liabilities, params.LiabilitiesDesc,
		params.Equity, params.EquityDesc, params.Currency)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) RecordLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET last_login = $2 WHERE id = $1
	`, id, at)
	return err
}

func (r *userRepo) UpdateBalanceSheet(ctx context.Context, id string, params model.UpdateBalanceSheetParams) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		UPDATE users SET
			non_current_assets = COALESCE($2, non_current_assets),
			non_current_assets_desc = COALESCE($3, non_current_assets_desc),
			liabilities = COALESCE($4, liabilities),
			liabilities_desc = COALESCE($5, liabilities_desc),
			equity = COALESCE($6, equity),
			equity_desc = COALESCE($7, equity_desc),
			currency = COALESCE($8, currency)
		WHERE id = $1
		RETURNING *
	`, id, params.NonCurrentAssets, params.NonCurrentAssetsDsc,
		params.Liabilities, params.LiabilitiesDesc,
		params.Equity, params.EquityDesc, params.Currency)
	return HandleNotFound(&user, err)
}
