package model

import (
	"github.com/google/uuid"
)

// PrincipalKind tags the two account types that can authenticate.
type PrincipalKind string

const (
	PrincipalCustomer PrincipalKind = "customer"
	PrincipalBusiness PrincipalKind = "business"
)

// Principal is the authenticated actor attached to a request. Authorization
// checks switch on Kind explicitly instead of probing for attributes.
type Principal struct {
	Kind  PrincipalKind
	ID    uuid.UUID
	Email string
}

func (p Principal) IsCustomer() bool { return p.Kind == PrincipalCustomer }
func (p Principal) IsBusiness() bool { return p.Kind == PrincipalBusiness }

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	UserType    string    `json:"user_type"`
	UserID      uuid.UUID `json:"user_id"`
}
