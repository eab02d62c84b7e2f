package blobstore

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes encodes a solid-color test image
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestStore(t *testing.T) *BlobStore {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSavePostImage(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.SavePostImage(pngBytes(t, 100, 80), "photo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "media/posts/"))
	assert.Equal(t, ".png", filepath.Ext(ref))

	img, err := imaging.Open(store.PostImagePath(filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestSavePostImageDownscales(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.SavePostImage(pngBytes(t, 2000, 1000), "big.png")
	require.NoError(t, err)

	img, err := imaging.Open(store.PostImagePath(filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, 732, img.Bounds().Dx())
	assert.Equal(t, 366, img.Bounds().Dy())
}

func TestSaveAvatarDownscales(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.SaveAvatar(pngBytes(t, 800, 800), "me.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "media/users/"))

	img, err := imaging.Open(store.AvatarPath(filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRejectsUnsupportedExtension(t *testing.T) {
	store := newTestStore(t)

	for _, filename := range []string{"clip.gif", "doc.pdf", "noext"} {
		_, err := store.SavePostImage(pngBytes(t, 10, 10), filename)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedMediaType, filename)
	}
}

func TestRejectsNonImagePayload(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SavePostImage([]byte("not an image"), "fake.png")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedMediaType)
}

func TestUniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.SavePostImage(pngBytes(t, 10, 10), "same.png")
	require.NoError(t, err)
	second, err := store.SavePostImage(pngBytes(t, 10, 10), "same.png")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
