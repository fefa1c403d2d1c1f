package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointmentsonthego/booking-api/internal/model"
	pkgauth "github.com/appointmentsonthego/booking-api/pkg/auth"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

type fakeCustomerRepo struct {
	byID    map[uuid.UUID]*model.Customer
	byEmail map[string]*model.Customer
	deleted []uuid.UUID
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byID:    make(map[uuid.UUID]*model.Customer),
		byEmail: make(map[string]*model.Customer),
	}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	c.ID = uuid.New()
	r.byID[c.ID] = c
	r.byEmail[c.Email] = c
	return nil
}

func (r *fakeCustomerRepo) Get(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("customer", nil)
	}
	return c, nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*model.Customer, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.NewNotFound("customer", nil)
	}
	return c, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.byID[c.ID]; !ok {
		return apperrors.NewNotFound("customer", nil)
	}
	for email, existing := range r.byEmail {
		if existing.ID == c.ID && email != c.Email {
			delete(r.byEmail, email)
		}
	}
	r.byID[c.ID] = c
	r.byEmail[c.Email] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	c, ok := r.byID[id]
	if !ok {
		return apperrors.NewNotFound("customer", nil)
	}
	delete(r.byID, id)
	delete(r.byEmail, c.Email)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeBusinessRepo struct {
	byID    map[uuid.UUID]*model.Business
	byEmail map[string]*model.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{
		byID:    make(map[uuid.UUID]*model.Business),
		byEmail: make(map[string]*model.Business),
	}
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *model.Business) error {
	b.ID = uuid.New()
	r.byID[b.ID] = b
	r.byEmail[b.Email] = b
	return nil
}

func (r *fakeBusinessRepo) Get(_ context.Context, id uuid.UUID) (*model.Business, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("business", nil)
	}
	return b, nil
}

func (r *fakeBusinessRepo) GetByEmail(_ context.Context, email string) (*model.Business, error) {
	b, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.NewNotFound("business", nil)
	}
	return b, nil
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *model.Business) error {
	if _, ok := r.byID[b.ID]; !ok {
		return apperrors.NewNotFound("business", nil)
	}
	for email, existing := range r.byEmail {
		if existing.ID == b.ID && email != b.Email {
			delete(r.byEmail, email)
		}
	}
	r.byID[b.ID] = b
	r.byEmail[b.Email] = b
	return nil
}

func (r *fakeBusinessRepo) Delete(_ context.Context, id uuid.UUID) error {
	b, ok := r.byID[id]
	if !ok {
		return apperrors.NewNotFound("business", nil)
	}
	delete(r.byID, id)
	delete(r.byEmail, b.Email)
	return nil
}

func (r *fakeBusinessRepo) Search(_ context.Context, _ *model.BusinessFilters) ([]*model.Business, error) {
	out := make([]*model.Business, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

func newTestService() (*Service, *fakeCustomerRepo, *fakeBusinessRepo) {
	customers := newFakeCustomerRepo()
	businesses := newFakeBusinessRepo()
	jwtSvc := pkgauth.NewJWTService(pkgauth.Config{Secret: "test-secret"})
	return NewService(customers, businesses, jwtSvc), customers, businesses
}

func TestRegisterCustomerDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req := &model.RegisterCustomerRequest{
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice",
	}
	_, err := svc.RegisterCustomer(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterCustomer(ctx, req)
	assert.True(t, apperrors.IsConflict(err))
}

func TestSameEmailAcrossKinds(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterCustomer(ctx, &model.RegisterCustomerRequest{
		Email:    "shared@example.com",
		Password: "password123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	_, err = svc.RegisterBusiness(ctx, &model.RegisterBusinessRequest{
		Email:        "shared@example.com",
		Password:     "password123",
		BusinessName: "Alice Salon",
	})
	assert.NoError(t, err)
}

func TestLoginCustomer(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	customer, err := svc.RegisterCustomer(ctx, &model.RegisterCustomerRequest{
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	token, err := svc.LoginCustomer(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "customer", token.UserType)
	assert.Equal(t, customer.ID, token.UserID)
	assert.NotEmpty(t, token.AccessToken)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterCustomer(ctx, &model.RegisterCustomerRequest{
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.LoginCustomer(ctx, "alice@example.com", "nope")
	_, missingAccount := svc.LoginCustomer(ctx, "nobody@example.com", "password123")

	require.Error(t, wrongPassword)
	require.Error(t, missingAccount)
	assert.Equal(t, apperrors.MessageOf(wrongPassword), apperrors.MessageOf(missingAccount))
	assert.Equal(t, apperrors.CodeOf(wrongPassword), apperrors.CodeOf(missingAccount))
}

func TestVerifyTokenResolvesPrincipal(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	business, err := svc.RegisterBusiness(ctx, &model.RegisterBusinessRequest{
		Email:        "salon@example.com",
		Password:     "password123",
		BusinessName: "The Salon",
	})
	require.NoError(t, err)

	token, err := svc.LoginBusiness(ctx, "salon@example.com", "password123")
	require.NoError(t, err)

	principal, err := svc.VerifyToken(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, model.PrincipalBusiness, principal.Kind)
	assert.Equal(t, business.ID, principal.ID)
	assert.Equal(t, "salon@example.com", principal.Email)
}

func TestVerifyTokenDeletedAccount(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	customer, err := svc.RegisterCustomer(ctx, &model.RegisterCustomerRequest{
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	token, err := svc.LoginCustomer(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	principal := model.Principal{Kind: model.PrincipalCustomer, ID: customer.ID, Email: customer.Email}
	require.NoError(t, svc.DeleteCustomerAccount(ctx, principal))

	_, err = svc.VerifyToken(ctx, token.AccessToken)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUpdateCustomerProfileEmailConflict(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterCustomer(ctx, &model.RegisterCustomerRequest{
		Email:    "taken@example.com",
		Password: "password123",
		FullName: "Bob",
	})
	require.NoError(t, err)

	alice, err := svc.RegisterCustomer(ctx, &model.RegisterCustomerRequest{
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	principal := model.Principal{Kind: model.PrincipalCustomer, ID: alice.ID, Email: alice.Email}
	taken := "taken@example.com"
	_, err = svc.UpdateCustomerProfile(ctx, principal, &model.UpdateCustomerProfileRequest{Email: &taken})
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateCustomerProfilePartial(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	alice, err := svc.RegisterCustomer(ctx, &model.RegisterCustomerRequest{
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice",
		Phone:    "555-0100",
	})
	require.NoError(t, err)

	principal := model.Principal{Kind: model.PrincipalCustomer, ID: alice.ID, Email: alice.Email}
	name := "Alice Updated"
	updated, err := svc.UpdateCustomerProfile(ctx, principal, &model.UpdateCustomerProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.FullName)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "555-0100", updated.Phone)
}
