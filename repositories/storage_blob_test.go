package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadURL(t *testing.T) {
	got, err := DownloadURL("favorites.appspot.com", "images/abc-beach photo.jpg", "tok-123")
	require.NoError(t, err)

	assert.Equal(t,
		"https://firebasestorage.googleapis.com/v0/b/favorites.appspot.com/o/images%2Fabc-beach%20photo.jpg?alt=media&token=tok-123",
		got)
}

func TestDownloadURL_MissingToken(t *testing.T) {
	_, err := DownloadURL("favorites.appspot.com", "images/x.jpg", "")
	assert.Error(t, err)
}
