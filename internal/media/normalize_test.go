package media_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"app/internal/media"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestNormalize_ShrinksWideImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writePNG(t, path, 2000, 500)

	assert.NoError(t, media.Normalize(path))

	img, err := imaging.Open(path)
	assert.NoError(t, err)
	// 縦横比を保ったままMaxWidthへ
	assert.Equal(t, media.MaxWidth, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestNormalize_KeepsSmallImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	writePNG(t, path, 640, 480)

	assert.NoError(t, media.Normalize(path))

	img, err := imaging.Open(path)
	assert.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestNormalize_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	assert.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	assert.Error(t, media.Normalize(path))
}
