package model

import (
	"time"
)

// User is the persisted account record. PasswordHash never leaves the server:
// it is excluded from JSON and from PublicUser.
type User struct {
	ID                  string     `db:"id" json:"id"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	FirstName           string     `db:"first_name" json:"firstName"`
	LastName            string     `db:"last_name" json:"lastName"`
	BusinessName        string     `db:"business_name" json:"businessName"`
	PhoneNumber         string     `db:"phone_number" json:"phoneNumber"`
	NonCurrentAssets    *string    `db:"non_current_assets" json:"nonCurrentAssets,omitempty"`
	NonCurrentAssetsDsc *string    `db:"non_current_assets_desc" json:"nonCurrentAssetsDesc,omitempty"`
	Liabilities         *string    `db:"liabilities" json:"liabilities,omitempty"`
	LiabilitiesDesc     *string    `db:"liabilities_desc" json:"liabilitiesDesc,omitempty"`
	Equity              *string    `db:"equity" json:"equity,omitempty"`
	EquityDesc          *string    `db:"equity_desc" json:"equityDesc,omitempty"`
	Currency            *Currency  `db:"currency" json:"currency,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	LastLogin           *time.Time `db:"last_login" json:"lastLogin,omitempty"`
}

type CreateUserParams struct {
	Email               string
	PasswordHash        string
	FirstName           string
	LastName            string
	BusinessName        string
	PhoneNumber         string
	NonCurrentAssets    *string
	NonCurrentAssetsDsc *string
	Liabilities         *string
	LiabilitiesDesc     *string
	Equity              *string
	EquityDesc          *string
	Currency            *Currency
}

type UpdateBalanceSheetParams struct {
	NonCurrentAssets    *string
	NonCurrentAssetsDsc *string
	Liabilities         *string
	LiabilitiesDesc     *string
	Equity              *string
	EquityDesc          *string
	Currency            *Currency
}

// PublicUser is the view returned to clients. It carries everything except
// the password hash.
type PublicUser struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	BusinessName        string     `json:"businessName"`
	PhoneNumber         string     `json:"phoneNumber"`
	NonCurrentAssets    *string    `json:"nonCurrentAssets,omitempty"`
	NonCurrentAssetsDsc *string    `json:"nonCurrentAssetsDesc,omitempty"`
	Liabilities         *string    `json:"liabilities,omitempty"`
	LiabilitiesDesc     *string    `json:"liabilitiesDesc,omitempty"`
	Equity              *string    `json:"equity,omitempty"`
	EquityDesc          *string    `json:"equityDesc,omitempty"`
	Currency            *Currency  `json:"currency,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
}

// Public projects the user into its client-facing view.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                  u.ID,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		BusinessName:        u.BusinessName,
		PhoneNumber:         u.PhoneNumber,
		NonCurrentAssets:    u.NonCurrentAssets,
		NonCurrentAssetsDsc: u.NonCurrentAssetsDsc,
		Liabilities:         u.Liabilities,
		LiabilitiesDesc:     u.LiabilitiesDesc,
		Equity:              u.Equity,
		EquityDesc:          u.EquityDesc,
		Currency:            u.Currency,
		CreatedAt:           u.CreatedAt,
		LastLogin:           u.LastLogin,
	}
}
