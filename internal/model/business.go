package model

type Business struct {
	Base
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password_hash" json:"-"`
	BusinessName string  `db:"business_name" json:"business_name"`
	Phone        string  `db:"phone" json:"phone,omitempty"`
	Address      string  `db:"address" json:"address,omitempty"`
	Specialty    string  `db:"specialty" json:"specialty,omitempty"`
	Description  string  `db:"description" json:"description,omitempty"`
	ProfileImage *string `db:"profile_image" json:"profile_image,omitempty"`
	CoverImage   *string `db:"cover_image" json:"cover_image,omitempty"`
}

type RegisterBusinessRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	BusinessName string `json:"business_name" binding:"required"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Specialty    string `json:"specialty"`
	Description  string `json:"description"`
}

type UpdateBusinessProfileRequest struct {
	Email        *string `json:"email" binding:"omitempty,email"`
	BusinessName *string `json:"business_name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Specialty    *string `json:"specialty"`
	Description  *string `json:"description"`
}

// BusinessFilters drives the public directory search. Both terms are
// case-insensitive substring matches, AND-combined when both are set.
type BusinessFilters struct {
	Specialty string
	Location  string
}
