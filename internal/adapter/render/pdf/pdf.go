// Package pdf turns a rendered sheet into an A4 PDF, one page per
// page-height band of the image.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	"oscell/internal/domain/document"
	"oscell/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/draw"
)

var ErrEmptyImage = errors.New("cannot encode an empty image")

type Encoder struct {
	creator string
	now     func() time.Time
}

var _ interfaces.IPageEncoder = (*Encoder)(nil)

func NewEncoder(creator string) *Encoder {
	return &Encoder{creator: creator, now: time.Now}
}

// Encode places the image at full page width. Images taller than one A4 page
// are cut into consecutive bands (see document.SliceBands); the last page
// holds whatever remains.
func (e *Encoder) Encode(ctx context.Context, img image.Image, title string) (interfaces.EncodedDocument, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return interfaces.EncodedDocument{}, ErrEmptyImage
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator(e.creator, true)
	pdf.SetCreationDate(e.now())

	mmPerPixel := document.PageWidthMM / float64(b.Dx())
	pageH := document.PageHeightPixels(b.Dx())
	opts := fpdf.ImageOptions{ImageType: "PNG"}

	for _, band := range document.SliceBands(b.Dy(), pageH) {
		if err := ctx.Err(); err != nil {
			return interfaces.EncodedDocument{}, err
		}

		encoded, err := encodeBand(img, band)
		if err != nil {
			return interfaces.EncodedDocument{}, err
		}

		name := fmt.Sprintf("band-%d", band.Index)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(encoded))
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, document.PageWidthMM, float64(band.Height())*mmPerPixel, false, opts, 0, "")
		if pdf.Err() {
			return interfaces.EncodedDocument{}, pdf.Error()
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return interfaces.EncodedDocument{}, err
	}
	return interfaces.EncodedDocument{Content: out.Bytes(), Pages: pdf.PageCount()}, nil
}

func encodeBand(img image.Image, band document.Band) ([]byte, error) {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), band.Height()))
	draw.Draw(dst, dst.Bounds(), img, image.Pt(b.Min.X, b.Min.Y+band.Top), draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
