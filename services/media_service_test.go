package services_test

import (
	"bytes"
	"context"
	"errors"
	"favorites/services"
	"favorites/services/servicestest"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type memImage struct {
	name string
	data []byte
}

func (m memImage) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m memImage) Name() string { return m.name }

// brokenImage yields some bytes and then fails mid-stream.
type brokenImage struct{}

func (brokenImage) Open() (io.ReadCloser, error) {
	return io.NopCloser(io.MultiReader(
		bytes.NewReader(bytes.Repeat([]byte{1}, 6000)),
		errReader{},
	)), nil
}

func (brokenImage) Name() string { return "broken.jpg" }

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("device unplugged") }

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary files left behind")
}

func TestUploadImage_Success(t *testing.T) {
	dir := t.TempDir()
	blobs := servicestest.NewBlobStore()
	blobs.WatchDir = dir
	media := services.NewMediaService(blobs, dir)

	data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte("x"), 10_000)...)
	uploaded, err := media.UploadImage(context.Background(), memImage{name: "content://media/external/images/photo.png", data: data})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploaded.Key, "images/"))
	assert.True(t, strings.HasSuffix(uploaded.Key, "-photo.png"))
	assert.Equal(t, "https://blobs.test/"+uploaded.Key, uploaded.URL)
	assert.Equal(t, "image/png", uploaded.ContentType)
	assert.Equal(t, data, blobs.Objects[uploaded.Key])
	assert.Equal(t, "image/png", blobs.Types[uploaded.Key])

	// the staged copy existed during upload and is gone afterwards
	require.Len(t, blobs.SeenAtUpload, 1)
	assert.True(t, strings.HasPrefix(blobs.SeenAtUpload[0], "image"))
	assertDirEmpty(t, dir)
}

func TestUploadImage_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	blobs := servicestest.NewBlobStore()
	media := services.NewMediaService(blobs, dir)

	uploaded, err := media.UploadImage(context.Background(), services.FileImage{Path: filepath.Join(dir, "missing.jpg")})
	assert.Nil(t, uploaded)
	assert.ErrorIs(t, err, services.ErrImageUnreadable)
	assert.Empty(t, blobs.Objects)
	assertDirEmpty(t, dir)
}

func TestUploadImage_ReadFailureMidStream(t *testing.T) {
	dir := t.TempDir()
	blobs := servicestest.NewBlobStore()
	media := services.NewMediaService(blobs, dir)

	_, err := media.UploadImage(context.Background(), brokenImage{})
	assert.ErrorIs(t, err, services.ErrImageUnreadable)
	assert.Empty(t, blobs.Objects)
	assertDirEmpty(t, dir)
}

func TestUploadImage_UploadFailure(t *testing.T) {
	dir := t.TempDir()
	blobs := servicestest.NewBlobStore()
	blobs.UploadErr = errors.New("bucket unavailable")
	media := services.NewMediaService(blobs, dir)

	_, err := media.UploadImage(context.Background(), memImage{name: "a.jpg", data: []byte("jpeg")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unavailable")
	assertDirEmpty(t, dir)
}

func TestUploadImage_URLFailure(t *testing.T) {
	dir := t.TempDir()
	blobs := servicestest.NewBlobStore()
	blobs.URLErr = errors.New("no token")
	media := services.NewMediaService(blobs, dir)

	_, err := media.UploadImage(context.Background(), memImage{name: "a.jpg", data: []byte("jpeg")})
	require.Error(t, err)
	assertDirEmpty(t, dir)
}

func TestUploadImage_FromDisk(t *testing.T) {
	srcDir := t.TempDir()
	tempDir := t.TempDir()
	src := filepath.Join(srcDir, "beach.jpg")
	require.NoError(t, os.WriteFile(src, []byte("not really a jpeg"), 0o600))

	blobs := servicestest.NewBlobStore()
	media := services.NewMediaService(blobs, tempDir)

	uploaded, err := media.UploadImage(context.Background(), services.FileImage{Path: src})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(uploaded.Key, "-beach.jpg"))
	assert.Equal(t, []byte("not really a jpeg"), blobs.Objects[uploaded.Key])

	// the source itself is left untouched
	_, err = os.Stat(src)
	assert.NoError(t, err)
	assertDirEmpty(t, tempDir)
}

func TestImageKey(t *testing.T) {
	media := services.NewMediaService(servicestest.NewBlobStore(), t.TempDir())

	first := media.ImageKey("photo.jpg")
	second := media.ImageKey("photo.jpg")
	assert.NotEqual(t, first, second, "same file name must not collide")

	cases := map[string]string{
		"content://media/external/images/media/42": "-42",
		`C:\Users\me\Pictures\trip.jpg`:             "-trip.jpg",
		"":                                          "-image",
		"/":                                         "-image",
	}
	for name, suffix := range cases {
		key := media.ImageKey(name)
		assert.True(t, strings.HasPrefix(key, "images/"), key)
		assert.True(t, strings.HasSuffix(key, suffix), "%q -> %q", name, key)
		assert.NotContains(t, strings.TrimPrefix(key, "images/"), "/")
	}
}

func TestDeleteImage(t *testing.T) {
	blobs := servicestest.NewBlobStore()
	media := services.NewMediaService(blobs, t.TempDir())

	uploaded, err := media.UploadImage(context.Background(), memImage{name: "a.jpg", data: []byte("jpeg")})
	require.NoError(t, err)

	require.NoError(t, media.DeleteImage(context.Background(), uploaded.Key))
	assert.Empty(t, blobs.Objects)

	blobs.DeleteErr = errors.New("permission denied")
	assert.Error(t, media.DeleteImage(context.Background(), "images/other.jpg"))
}
