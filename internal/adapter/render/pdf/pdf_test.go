package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"oscell/internal/domain/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sheet(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(y % 256), 0x40, 0x80, 0xff})
		}
	}
	return img
}

func newTestEncoder() *Encoder {
	e := NewEncoder("oscell")
	e.now = func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }
	return e
}

func TestEncode_PageCount(t *testing.T) {
	pageH := document.PageHeightPixels(100)

	cases := []struct {
		name   string
		height int
		pages  int
	}{
		{"shorter than a page", pageH / 2, 1},
		{"exactly one page", pageH, 1},
		{"one row over", pageH + 1, 2},
		{"three pages and a bit", 3*pageH + 10, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := newTestEncoder().Encode(context.Background(), sheet(100, tc.height), "Ordem de Serviço 226")
			require.NoError(t, err)
			assert.Equal(t, tc.pages, out.Pages)
			assert.True(t, bytes.HasPrefix(out.Content, []byte("%PDF-")))
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := newTestEncoder().Encode(context.Background(), image.NewRGBA(image.Rect(0, 0, 0, 0)), "x")
	assert.ErrorIs(t, err, ErrEmptyImage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newTestEncoder().Encode(ctx, sheet(10, 10), "x")
	assert.ErrorIs(t, err, context.Canceled)
}
