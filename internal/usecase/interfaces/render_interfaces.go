package interfaces

import (
	"context"
	"image"
	"io"

	"oscell/internal/domain/document"
)

// IPrintSurface is where a print page is shown to the user, e.g. a new
// browser window. Open fails when the host refuses to create the surface.
type IPrintSurface interface {
	Open(ctx context.Context, title string) (io.WriteCloser, error)
}

// IPageRenderer writes the printable markup of a page.
type IPageRenderer interface {
	Render(w io.Writer, page document.PrintPage) error
}

// IRasterizer draws a print page into an image, upscaled by scale.
type IRasterizer interface {
	Rasterize(ctx context.Context, page document.PrintPage, scale int) (image.Image, error)
}

// EncodedDocument is a finished paginated file.
type EncodedDocument struct {
	Content []byte
	Pages   int
}

// IPageEncoder turns a raster into a paginated fixed-layout file, adding
// pages when the raster is taller than one page.
type IPageEncoder interface {
	Encode(ctx context.Context, img image.Image, title string) (EncodedDocument, error)
}

// IDocumentArchive keeps a copy of every downloaded document.
type IDocumentArchive interface {
	Store(ctx context.Context, key string, content []byte, contentType string) error
}
