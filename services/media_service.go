package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	copyBufferSize = 4 * 1024
	imageKeyPrefix = "images/"
)

var (
	ErrImageUnreadable = errors.New("image could not be opened")
	ErrTempCopyMissing = errors.New("temporary copy missing")
)

// ImageSource is a user-selected image that can be opened for reading.
type ImageSource interface {
	Open() (io.ReadCloser, error)
	Name() string
}

// FormImage is an image attached to a multipart request.
type FormImage struct {
	Header *multipart.FileHeader
}

func (f FormImage) Open() (io.ReadCloser, error) {
	return f.Header.Open()
}

func (f FormImage) Name() string {
	return f.Header.Filename
}

// FileImage is an image already on local disk.
type FileImage struct {
	Path string
}

func (f FileImage) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

func (f FileImage) Name() string {
	return f.Path
}

// UploadedImage describes an object written to blob storage.
type UploadedImage struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
}

type MediaService struct {
	Blobs   BlobStore
	TempDir string
}

func NewMediaService(blobs BlobStore, tempDir string) *MediaService {
	return &MediaService{
		Blobs:   blobs,
		TempDir: tempDir,
	}
}

// ImageKey builds the storage key for an upload. The random prefix keeps two uploads
// with the same file name from overwriting each other.
func (s *MediaService) ImageKey(name string) string {
	return imageKeyPrefix + uuid.NewString() + "-" + trailingSegment(name)
}

func trailingSegment(name string) string {
	segment := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if segment == "." || segment == "/" || segment == "" {
		return "image"
	}
	return segment
}

// UploadImage stages the image in a temp file, uploads it and returns its download URL.
// The temp file is removed before returning, whatever the outcome.
func (s *MediaService) UploadImage(ctx context.Context, src ImageSource) (*UploadedImage, error) {
	tempPath, err := s.copyToTemp(src)
	if tempPath != "" {
		defer s.removeTemp(tempPath)
	}
	if err != nil {
		log.Printf("Error staging image %q: %v", src.Name(), err)
		return nil, err
	}

	if _, err := os.Stat(tempPath); err != nil {
		log.Printf("Temporary file does not exist: %v", err)
		return nil, ErrTempCopyMissing
	}

	contentType := "application/octet-stream"
	if mtype, err := mimetype.DetectFile(tempPath); err == nil {
		contentType = mtype.String()
	}

	file, err := os.Open(tempPath)
	if err != nil {
		log.Printf("Temporary file could not be reopened: %v", err)
		return nil, ErrTempCopyMissing
	}
	defer file.Close()

	key := s.ImageKey(src.Name())
	if err := s.Blobs.Upload(ctx, key, file, contentType); err != nil {
		log.Printf("Error uploading image %s: %v", key, err)
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	url, err := s.Blobs.URL(ctx, key)
	if err != nil {
		log.Printf("Error resolving download URL for %s: %v", key, err)
		return nil, fmt.Errorf("resolve url for %s: %w", key, err)
	}

	return &UploadedImage{Key: key, URL: url, ContentType: contentType}, nil
}

// DeleteImage removes an uploaded object. Used to clean up after a failed metadata write.
func (s *MediaService) DeleteImage(ctx context.Context, key string) error {
	if err := s.Blobs.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// copyToTemp returns the temp path whenever a temp file was created, even on error,
// so the caller can always clean it up.
func (s *MediaService) copyToTemp(src ImageSource) (string, error) {
	in, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageUnreadable, err)
	}
	defer in.Close()

	out, err := os.CreateTemp(s.TempDir, "image*.jpg")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tempPath := out.Name()

	buf := make([]byte, copyBufferSize)
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				out.Close()
				return tempPath, fmt.Errorf("write temp file: %w", err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			out.Close()
			return tempPath, fmt.Errorf("%w: %v", ErrImageUnreadable, readErr)
		}
	}

	if err := out.Close(); err != nil {
		return tempPath, fmt.Errorf("close temp file: %w", err)
	}
	return tempPath, nil
}

func (s *MediaService) removeTemp(tempPath string) {
	if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete temporary file %s: %v", tempPath, err)
	}
}
