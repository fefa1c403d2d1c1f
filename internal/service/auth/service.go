package auth

import (
	"context"
	"fmt"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/repository"
	pkgauth "github.com/appointmentsonthego/booking-api/pkg/auth"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/security"
)

const bcryptCost = 12

// Service is the credential store for both principal kinds. The same email
// may be registered once as a customer and once as a business; uniqueness is
// enforced within each kind independently.
type Service struct {
	customers  repository.CustomerRepository
	businesses repository.BusinessRepository
	hasher     security.PasswordHasher
	jwtSvc     pkgauth.JWTService
}

func NewService(
	customers repository.CustomerRepository,
	businesses repository.BusinessRepository,
	jwtSvc pkgauth.JWTService,
) *Service {
	return &Service{
		customers:  customers,
		businesses: businesses,
		hasher:     security.NewBcryptHasher(bcryptCost),
		jwtSvc:     jwtSvc,
	}
}

func (s *Service) RegisterCustomer(ctx context.Context, req *model.RegisterCustomerRequest) (*model.Customer, error) {
	if existing, _ := s.customers.GetByEmail(ctx, req.Email); existing != nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &model.Customer{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *Service) RegisterBusiness(ctx context.Context, req *model.RegisterBusinessRequest) (*model.Business, error) {
	if existing, _ := s.businesses.GetByEmail(ctx, req.Email); existing != nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	business := &model.Business{
		Email:        req.Email,
		PasswordHash: hash,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Address:      req.Address,
		Specialty:    req.Specialty,
		Description:  req.Description,
	}
	if err := s.businesses.Create(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	return business, nil
}

// LoginCustomer authenticates a customer. A missing account and a wrong
// password produce the same error.
func (s *Service) LoginCustomer(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewUnauthorized(err)
	}
	if err := s.hasher.Compare(customer.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized(err)
	}

	token, err := s.jwtSvc.Issue(customer.Email, pkgauth.KindCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    string(model.PrincipalCustomer),
		UserID:      customer.ID,
	}, nil
}

func (s *Service) LoginBusiness(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	business, err := s.businesses.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewUnauthorized(err)
	}
	if err := s.hasher.Compare(business.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized(err)
	}

	token, err := s.jwtSvc.Issue(business.Email, pkgauth.KindBusiness)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    string(model.PrincipalBusiness),
		UserID:      business.ID,
	}, nil
}

// VerifyToken validates a bearer token and resolves it to a live principal.
func (s *Service) VerifyToken(ctx context.Context, token string) (*model.Principal, error) {
	claims, err := s.jwtSvc.Verify(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized(err)
	}

	switch claims.Kind {
	case pkgauth.KindCustomer:
		customer, err := s.customers.GetByEmail(ctx, claims.Subject)
		if err != nil {
			return nil, apperrors.NewUnauthorized(err)
		}
		return &model.Principal{Kind: model.PrincipalCustomer, ID: customer.ID, Email: customer.Email}, nil
	case pkgauth.KindBusiness:
		business, err := s.businesses.GetByEmail(ctx, claims.Subject)
		if err != nil {
			return nil, apperrors.NewUnauthorized(err)
		}
		return &model.Principal{Kind: model.PrincipalBusiness, ID: business.ID, Email: business.Email}, nil
	}
	return nil, apperrors.NewUnauthorized(fmt.Errorf("unknown principal kind %q", claims.Kind))
}

func (s *Service) GetCustomer(ctx context.Context, principal model.Principal) (*model.Customer, error) {
	return s.customers.Get(ctx, principal.ID)
}

func (s *Service) GetBusiness(ctx context.Context, principal model.Principal) (*model.Business, error) {
	return s.businesses.Get(ctx, principal.ID)
}

func (s *Service) UpdateCustomerProfile(ctx context.Context, principal model.Principal, req *model.UpdateCustomerProfileRequest) (*model.Customer, error) {
	customer, err := s.customers.Get(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != customer.Email {
		if existing, _ := s.customers.GetByEmail(ctx, *req.Email); existing != nil {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		customer.Email = *req.Email
	}
	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

func (s *Service) UpdateBusinessProfile(ctx context.Context, principal model.Principal, req *model.UpdateBusinessProfileRequest) (*model.Business, error) {
	business, err := s.businesses.Get(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != business.Email {
		if existing, _ := s.businesses.GetByEmail(ctx, *req.Email); existing != nil {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		business.Email = *req.Email
	}
	if req.BusinessName != nil {
		business.BusinessName = *req.BusinessName
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Specialty != nil {
		business.Specialty = *req.Specialty
	}
	if req.Description != nil {
		business.Description = *req.Description
	}

	if err := s.businesses.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}
	return business, nil
}

func (s *Service) DeleteCustomerAccount(ctx context.Context, principal model.Principal) error {
	return s.customers.Delete(ctx, principal.ID)
}

func (s *Service) DeleteBusinessAccount(ctx context.Context, principal model.Principal) error {
	return s.businesses.Delete(ctx, principal.ID)
}
