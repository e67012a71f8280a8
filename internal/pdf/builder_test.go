package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBuilder_FromPNG_SinglePage(t *testing.T) {
	b := NewBuilder()

	res, err := b.FromPNG(encodeTestPNG(t, 100, 100)) // 210mm tall -> one page
	require.NoError(t, err)
	assert.Equal(t, 1, res.PageCount)
	assert.True(t, bytes.HasPrefix(res.Bytes, []byte("%PDF")))
}

func TestBuilder_FromPNG_MultiPage(t *testing.T) {
	b := NewBuilder()

	// 100x150px scales to 210x315mm -> two pages
	res, err := b.FromPNG(encodeTestPNG(t, 100, 150))
	require.NoError(t, err)
	assert.Equal(t, 2, res.PageCount)
	assert.True(t, bytes.HasPrefix(res.Bytes, []byte("%PDF")))
	assert.Equal(t, -297.0, res.Pagination.Pages[1].OffsetMM)
}

func TestBuilder_FromPNG_Invalid(t *testing.T) {
	b := NewBuilder()

	_, err := b.FromPNG(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = b.FromPNG([]byte("not a png"))
	assert.ErrorIs(t, err, ErrDecodeImage)
}
