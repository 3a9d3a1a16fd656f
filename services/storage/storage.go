package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores passport scans (image or PDF) and hands back the URL
// that gets written onto the client document. Upload mechanics stay here; the
// rest of the system only ever sees the returned URL string.
type StorageService interface {
	UploadPassport(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadPassport uploads the file into the passports folder and returns its
// secure URL.
func (s *StorageServiceImpl) UploadPassport(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: "passports",
	}
	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload %q: %w", header.Filename, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no URL returned for %q", header.Filename)
	}
	return result.SecureURL, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
