package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/storage"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

type fakeBusinessRepo struct {
	byID map[uuid.UUID]*model.Business
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *model.Business) error {
	b.ID = uuid.New()
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) Get(_ context.Context, id uuid.UUID) (*model.Business, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("business", nil)
	}
	return b, nil
}

func (r *fakeBusinessRepo) GetByEmail(_ context.Context, _ string) (*model.Business, error) {
	return nil, apperrors.NewNotFound("business", nil)
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *model.Business) error {
	if _, ok := r.byID[b.ID]; !ok {
		return apperrors.NewNotFound("business", nil)
	}
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakeBusinessRepo) Search(_ context.Context, _ *model.BusinessFilters) ([]*model.Business, error) {
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *fakeBusinessRepo, uuid.UUID, *storage.LocalStore) {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	businesses := &fakeBusinessRepo{byID: make(map[uuid.UUID]*model.Business)}
	b := &model.Business{Email: "salon@example.com", BusinessName: "The Salon"}
	require.NoError(t, businesses.Create(context.Background(), b))

	return NewService(businesses, store), businesses, b.ID, store
}

func multipartHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	partHeader.Set("Content-Type", contentType)
	part, err := w.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadProfileImage(t *testing.T) {
	svc, businesses, businessID, store := newTestService(t)
	ctx := context.Background()

	content := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	header := multipartHeader(t, "photo.png", "image/png", content)

	business, err := svc.UploadBusinessImage(ctx, businessID, ImageKindProfile, header)
	require.NoError(t, err)
	require.NotNil(t, business.ProfileImage)
	assert.Nil(t, business.CoverImage)
	assert.Contains(t, *business.ProfileImage, "business_"+businessID.String()+"_profile_")
	assert.Contains(t, *business.ProfileImage, ".png")

	path, err := store.Path(*business.ProfileImage)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	assert.Equal(t, business.ProfileImage, businesses.byID[businessID].ProfileImage)
}

func TestUploadReplacesOldFile(t *testing.T) {
	svc, _, businessID, store := newTestService(t)
	ctx := context.Background()

	first, err := svc.UploadBusinessImage(ctx, businessID, ImageKindCover,
		multipartHeader(t, "one.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)
	oldName := *first.CoverImage

	second, err := svc.UploadBusinessImage(ctx, businessID, ImageKindCover,
		multipartHeader(t, "two.jpg", "image/jpeg", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, oldName, *second.CoverImage)
	assert.False(t, store.Exists(oldName))
	assert.True(t, store.Exists(*second.CoverImage))
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	svc, _, businessID, _ := newTestService(t)

	header := multipartHeader(t, "payload.exe", "application/octet-stream", []byte("MZ"))
	_, err := svc.UploadBusinessImage(context.Background(), businessID, ImageKindProfile, header)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUploadRejectsOversize(t *testing.T) {
	svc, _, businessID, _ := newTestService(t)

	header := &multipart.FileHeader{
		Filename: "huge.png",
		Size:     MaxUploadSize + 1,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	_, err := svc.UploadBusinessImage(context.Background(), businessID, ImageKindProfile, header)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUploadUnknownBusiness(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	header := multipartHeader(t, "photo.png", "image/png", []byte("data"))
	_, err := svc.UploadBusinessImage(context.Background(), uuid.New(), ImageKindProfile, header)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteBusinessImage(t *testing.T) {
	svc, _, businessID, store := newTestService(t)
	ctx := context.Background()

	uploaded, err := svc.UploadBusinessImage(ctx, businessID, ImageKindProfile,
		multipartHeader(t, "photo.png", "image/png", []byte("data")))
	require.NoError(t, err)
	name := *uploaded.ProfileImage

	business, err := svc.DeleteBusinessImage(ctx, businessID, ImageKindProfile)
	require.NoError(t, err)
	assert.Nil(t, business.ProfileImage)
	assert.False(t, store.Exists(name))

	// Nothing left to delete.
	_, err = svc.DeleteBusinessImage(ctx, businessID, ImageKindProfile)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFilePath(t *testing.T) {
	svc, _, businessID, _ := newTestService(t)
	ctx := context.Background()

	uploaded, err := svc.UploadBusinessImage(ctx, businessID, ImageKindProfile,
		multipartHeader(t, "photo.png", "image/png", []byte("data")))
	require.NoError(t, err)

	path, err := svc.FilePath(*uploaded.ProfileImage)
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = svc.FilePath("missing.png")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.FilePath("../etc/passwd")
	assert.True(t, apperrors.IsValidation(err))
}
