package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var allowedImageExtensions = []string{"jpg", "jpeg", "png", "gif"}

// FileUploadResponse points at the stored file.
type FileUploadResponse struct {
	SecureURL string `json:"secureUrl"`
}

// FileService stores product images on the local filesystem.
type FileService struct {
	dir      string
	hostAPI  string
	maxBytes int64
}

func NewFileService(dir, hostAPI string, maxBytes int64) *FileService {
	return &FileService{
		dir:      dir,
		hostAPI:  strings.TrimRight(hostAPI, "/"),
		maxBytes: maxBytes,
	}
}

var errNotAnImage = errs.BadRequest("Make sure that the file is an image")

// UploadProductImage sniffs the content type (the client's header is not
// trusted) and saves the file as <uuid>.<ext>.
func (s *FileService) UploadProductImage(_ context.Context, fh *multipart.FileHeader) (*FileUploadResponse, error) {
	if fh == nil {
		return nil, errNotAnImage
	}
	if fh.Size > s.maxBytes {
		return nil, errs.BadRequest(fmt.Sprintf("File is too large, max %d bytes", s.maxBytes))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, fmt.Errorf("detect upload type: %w", err)
	}

	ext := strings.TrimPrefix(mtype.Extension(), ".")
	if !slices.Contains(allowedImageExtensions, ext) {
		return nil, errNotAnImage
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + "." + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxBytes)); err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &FileUploadResponse{
		SecureURL: s.hostAPI + "/files/product/" + name,
	}, nil
}

// ProductImagePath returns the on-disk path of imageName. Names that try
// to leave the upload dir are treated as missing.
func (s *FileService) ProductImagePath(_ context.Context, imageName string) (string, error) {
	notFound := errs.BadRequest("No product found with image " + imageName)

	if imageName == "" || filepath.Base(imageName) != imageName || strings.HasPrefix(imageName, ".") {
		return "", notFound
	}

	path := filepath.Join(s.dir, imageName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", notFound
	}
	return path, nil
}
