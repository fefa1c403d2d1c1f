package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/repository"
	"github.com/appointmentsonthego/booking-api/internal/storage"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

// MaxUploadSize caps a single upload at 25 MB.
const MaxUploadSize = 25 << 20

// ImageKind selects which business image an upload replaces.
type ImageKind string

const (
	ImageKindProfile ImageKind = "profile"
	ImageKindCover   ImageKind = "cover"
)

var allowedContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/mpeg":      ".mpeg",
	"video/quicktime": ".mov",
	"video/x-msvideo": ".avi",
}

// Service stores business profile and cover media on the local filesystem
// and tracks the current filename on the business row.
type Service struct {
	businesses repository.BusinessRepository
	store      *storage.LocalStore
}

func NewService(businesses repository.BusinessRepository, store *storage.LocalStore) *Service {
	return &Service{businesses: businesses, store: store}
}

// UploadBusinessImage validates and stores a new image, replacing (and
// deleting) the previous one of the same kind.
func (s *Service) UploadBusinessImage(ctx context.Context, businessID uuid.UUID, kind ImageKind, header *multipart.FileHeader) (*model.Business, error) {
	if kind != ImageKindProfile && kind != ImageKindCover {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid image kind %q", kind), nil)
	}
	if header.Size > MaxUploadSize {
		return nil, apperrors.NewValidation("file exceeds the 25MB upload limit", nil)
	}

	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, apperrors.NewValidation(fmt.Sprintf("unsupported file type %q", contentType), nil)
	}

	business, err := s.businesses.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = allowedContentTypes[contentType]
	}
	filename := fmt.Sprintf("business_%s_%s_%s%s", businessID, kind, uuid.New(), ext)

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := s.store.Save(filename, src); err != nil {
		return nil, err
	}

	old := s.currentImage(business, kind)
	s.setImage(business, kind, &filename)
	if err := s.businesses.Update(ctx, business); err != nil {
		s.store.Delete(filename)
		return nil, fmt.Errorf("failed to update business image: %w", err)
	}

	if old != nil {
		s.store.Delete(*old)
	}
	return business, nil
}

// DeleteBusinessImage removes the stored image of the given kind and clears
// the reference on the business row.
func (s *Service) DeleteBusinessImage(ctx context.Context, businessID uuid.UUID, kind ImageKind) (*model.Business, error) {
	if kind != ImageKindProfile && kind != ImageKindCover {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid image kind %q", kind), nil)
	}

	business, err := s.businesses.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	current := s.currentImage(business, kind)
	if current == nil {
		return nil, apperrors.NewNotFound("image", nil)
	}

	s.setImage(business, kind, nil)
	if err := s.businesses.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to clear business image: %w", err)
	}

	s.store.Delete(*current)
	return business, nil
}

// FilePath resolves a stored filename to its on-disk path for serving.
func (s *Service) FilePath(filename string) (string, error) {
	path, err := s.store.Path(filename)
	if err != nil {
		return "", err
	}
	if !s.store.Exists(filename) {
		return "", apperrors.NewNotFound("file", nil)
	}
	return path, nil
}

func (s *Service) currentImage(b *model.Business, kind ImageKind) *string {
	if kind == ImageKindCover {
		return b.CoverImage
	}
	return b.ProfileImage
}

func (s *Service) setImage(b *model.Business, kind ImageKind, filename *string) {
	if kind == ImageKindCover {
		b.CoverImage = filename
		return
	}
	b.ProfileImage = filename
}
