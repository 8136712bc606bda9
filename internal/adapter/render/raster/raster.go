// Package raster draws a print page into an RGBA image with the Go fonts.
//
// The layout mirrors the HTML print page: an A4-wide sheet with 5mm margins
// and two identical copies in 49% columns. The sheet is never shorter than
// one A4 page and grows when a copy needs more room, so the encoder can split
// it into several pages.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"oscell/internal/domain/document"
	"oscell/internal/usecase/interfaces"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// CSSDPI is the resolution of one CSS pixel; scale multiplies it.
const CSSDPI = 96.0

var ErrInvalidScale = errors.New("raster scale must be >= 1")

var (
	colorWhite  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorText   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorLabel  = color.RGBA{0x44, 0x44, 0x44, 0xff}
	colorMuted  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	colorFooter = color.RGBA{0x77, 0x77, 0x77, 0xff}
	colorAccent = color.RGBA{0x6a, 0x0d, 0xad, 0xff}
	colorBorder = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	colorRule   = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colorBox    = color.RGBA{0xf9, 0xf9, 0xf9, 0xff}
	colorDash   = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}
)

// Font sizes in CSS pixels, relative to a 16px root like the print page.
const (
	sizeCopy    = 16 * 0.85
	sizeTitle   = sizeCopy * 1.6
	sizeInfo    = sizeCopy * 0.85
	sizeNote    = sizeCopy * 0.8
	sizeFooter  = sizeCopy * 0.75
	lineSpacing = 1.3
)

type Rasterizer struct {
	regular *opentype.Font
	bold    *opentype.Font
}

var _ interfaces.IRasterizer = (*Rasterizer)(nil)

func New() (*Rasterizer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Rasterizer{regular: regular, bold: bold}, nil
}

// SheetWidth is the pixel width of an A4 sheet at the given scale.
func SheetWidth(scale int) int {
	return int(math.Round(document.PageWidthMM / 25.4 * CSSDPI * float64(scale)))
}

func (r *Rasterizer) Rasterize(ctx context.Context, page document.PrintPage, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, ErrInvalidScale
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	faces := newFaceSet(r, scale)
	defer faces.close()

	width := SheetWidth(scale)
	geo := newGeometry(width, scale)

	// Measure pass: no destination, only heights.
	measure := &canvas{faces: faces, scale: float64(scale)}
	natural := 0
	for i, doc := range page.Copies {
		h, err := measure.drawCopy(doc, geo.columnX(i), geo.margin, geo.column, 0)
		if err != nil {
			return nil, err
		}
		natural = max(natural, h)
	}
	height := max(document.PageHeightPixels(width), natural+geo.margin)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colorWhite), image.Point{}, draw.Src)

	paint := &canvas{dst: dst, faces: faces, scale: float64(scale)}
	for i, doc := range page.Copies {
		if _, err := paint.drawCopy(doc, geo.columnX(i), geo.margin, geo.column, height-geo.margin); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

type geometry struct {
	margin int
	column int
	gap    int
}

func newGeometry(width, scale int) geometry {
	pxPerMM := CSSDPI * float64(scale) / 25.4
	margin := int(math.Round(document.PageMarginMM * pxPerMM))
	inner := width - 2*margin
	gap := int(math.Round(float64(inner) * 0.02))
	return geometry{margin: margin, column: (inner - gap) / 2, gap: gap}
}

func (g geometry) columnX(i int) int {
	return g.margin + i*(g.column+g.gap)
}

type faceKey struct {
	size float64
	bold bool
}

// faceSet caches faces for one Rasterize call; opentype faces are not safe
// for concurrent use.
type faceSet struct {
	r     *Rasterizer
	scale int
	cache map[faceKey]font.Face
}

func newFaceSet(r *Rasterizer, scale int) *faceSet {
	return &faceSet{r: r, scale: scale, cache: map[faceKey]font.Face{}}
}

func (f *faceSet) get(size float64, bold bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold}
	if face, ok := f.cache[key]; ok {
		return face, nil
	}
	src := f.r.regular
	if bold {
		src = f.r.bold
	}
	// Points at 96*scale DPI: one CSS pixel is 0.75pt.
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size * 0.75,
		DPI:     CSSDPI * float64(f.scale),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.cache[key] = face
	return face, nil
}

func (f *faceSet) close() {
	for _, face := range f.cache {
		_ = face.Close()
	}
}

type style struct {
	size  float64
	bold  bool
	color color.Color
}

type run struct {
	text  string
	style style
}

type fragment struct {
	text  string
	style style
	face  font.Face
	x     int
	width int
}

type line struct {
	frags []fragment
	width int
}

// canvas draws into dst, or only measures when dst is nil.
type canvas struct {
	dst   *image.RGBA
	faces *faceSet
	scale float64
}

func (c *canvas) px(css float64) int {
	return int(math.Round(css * c.scale))
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	if c.dst == nil || r.Empty() {
		return
	}
	draw.Draw(c.dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *canvas) strokeRect(r image.Rectangle, thickness int, col color.Color) {
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), col)
	c.fill(image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), col)
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), col)
	c.fill(image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func (c *canvas) dashedLine(x0, x1, y, thickness, dash, gap int, col color.Color) {
	for x := x0; x < x1; x += dash + gap {
		c.fill(image.Rect(x, y, min(x+dash, x1), y+thickness), col)
	}
}

// drawCopy lays out one copy in the column starting at x. bottom pins the
// copy border and signature footer to the sheet bottom; 0 means "as tall as
// the content". It returns the natural bottom of the copy.
func (c *canvas) drawCopy(doc document.Document, x, top, width, bottom int) (int, error) {
	pad := c.px(8)
	innerX := x + pad
	innerW := width - 2*pad
	y := top + pad

	var signatures []string
	for _, b := range doc.Blocks {
		var err error
		switch b.Kind {
		case document.BlockHeading:
			y, err = c.drawHeading(b, innerX, y, innerW)
		case document.BlockKeyValues:
			y, err = c.drawKeyValues(b, innerX, y, innerW)
		case document.BlockParagraph:
			y, err = c.drawParagraph(b, innerX, y, innerW)
		case document.BlockSignatures:
			signatures = b.Lines
		}
		if err != nil {
			return 0, err
		}
	}

	footerH, err := c.footerHeight(signatures, innerW)
	if err != nil {
		return 0, err
	}
	footerTop := y + c.px(15)
	if bottom > 0 {
		footerTop = max(footerTop, bottom-pad-footerH)
	}
	if err := c.drawFooter(signatures, innerX, footerTop, innerW); err != nil {
		return 0, err
	}

	natural := footerTop + footerH + pad
	c.strokeRect(image.Rect(x, top, x+width, max(bottom, natural)), max(1, c.px(1)), colorBorder)
	return natural, nil
}

func (c *canvas) drawHeading(b document.Block, x, y, width int) (int, error) {
	y, err := c.drawRuns([]run{{text: b.Title, style: style{size: sizeTitle, bold: true, color: colorAccent}}}, x, y, width, true)
	if err != nil {
		return 0, err
	}
	y += c.px(2)
	for _, l := range b.Lines {
		if y, err = c.drawRuns([]run{{text: l, style: style{size: sizeInfo, color: colorMuted}}}, x, y, width, true); err != nil {
			return 0, err
		}
	}
	return y + c.px(8), nil
}

func (c *canvas) drawSectionTitle(title string, x, y, width int) (int, error) {
	y += c.px(10)
	y, err := c.drawRuns([]run{{text: title, style: style{size: sizeCopy, bold: true, color: colorAccent}}}, x, y, width, false)
	if err != nil {
		return 0, err
	}
	y += c.px(4)
	c.fill(image.Rect(x, y, x+width, y+max(1, c.px(1))), colorRule)
	return y + c.px(1) + c.px(8), nil
}

func (c *canvas) drawKeyValues(b document.Block, x, y, width int) (int, error) {
	y, err := c.drawSectionTitle(b.Title, x, y, width)
	if err != nil {
		return 0, err
	}
	for i, f := range b.Fields {
		if i > 0 {
			y += c.px(4)
		}
		y, err = c.drawRuns([]run{
			{text: f.Label + ":", style: style{size: sizeInfo, bold: true, color: colorLabel}},
			{text: f.Value, style: style{size: sizeInfo, color: colorText}},
		}, x, y, width, false)
		if err != nil {
			return 0, err
		}
	}
	return y + c.px(8), nil
}

func (c *canvas) drawParagraph(b document.Block, x, y, width int) (int, error) {
	y, err := c.drawSectionTitle(b.Title, x, y, width)
	if err != nil {
		return 0, err
	}
	if !b.Boxed {
		return c.drawRuns([]run{{text: b.Text, style: style{size: sizeNote, color: colorMuted}}}, x, y, width, false)
	}

	pad := c.px(6)
	textStyle := style{size: sizeInfo, color: colorText}
	lines, err := c.wrap([]run{{text: b.Text, style: textStyle}}, width-2*pad)
	if err != nil {
		return 0, err
	}
	textH, err := c.linesHeight(lines, textStyle)
	if err != nil {
		return 0, err
	}
	boxH := max(c.px(50), textH+2*pad)
	box := image.Rect(x, y, x+width, y+boxH)
	c.fill(box, colorBox)
	c.strokeRect(box, max(1, c.px(1)), colorRule)
	if _, err := c.drawLines(lines, textStyle, x+pad, y+pad, width-2*pad, false); err != nil {
		return 0, err
	}
	return y + boxH, nil
}

func (c *canvas) footerHeight(captions []string, width int) (int, error) {
	h := 0
	st := style{size: sizeFooter, color: colorFooter}
	for _, caption := range captions {
		lines, err := c.wrap([]run{{text: caption, style: st}}, width)
		if err != nil {
			return 0, err
		}
		lh, err := c.linesHeight(lines, st)
		if err != nil {
			return 0, err
		}
		h += c.px(30) + max(1, c.px(1)) + c.px(2) + c.px(3) + lh
	}
	return h, nil
}

func (c *canvas) drawFooter(captions []string, x, y, width int) error {
	st := style{size: sizeFooter, color: colorFooter}
	lineW := width * 9 / 10
	lineX := x + (width-lineW)/2
	var err error
	for _, caption := range captions {
		y += c.px(30)
		c.dashedLine(lineX, lineX+lineW, y, max(1, c.px(1)), c.px(4), c.px(3), colorDash)
		y += max(1, c.px(1)) + c.px(2) + c.px(3)
		if y, err = c.drawRuns([]run{{text: caption, style: st}}, x, y, width, true); err != nil {
			return err
		}
	}
	return nil
}

// drawRuns wraps and draws runs at (x, y) and returns the y below them.
func (c *canvas) drawRuns(runs []run, x, y, width int, center bool) (int, error) {
	if len(runs) == 0 {
		return y, nil
	}
	lines, err := c.wrap(runs, width)
	if err != nil {
		return 0, err
	}
	return c.drawLines(lines, runs[0].style, x, y, width, center)
}

func (c *canvas) drawLines(lines []line, base style, x, y, width int, center bool) (int, error) {
	for _, l := range lines {
		lh, ascent, err := c.lineMetrics(l, base)
		if err != nil {
			return 0, err
		}
		offset := 0
		if center {
			offset = (width - l.width) / 2
		}
		if c.dst != nil {
			for _, f := range l.frags {
				d := font.Drawer{
					Dst:  c.dst,
					Src:  image.NewUniform(f.style.color),
					Face: f.face,
					Dot:  fixed.P(x+offset+f.x, y+ascent),
				}
				d.DrawString(f.text)
			}
		}
		y += lh
	}
	return y, nil
}

func (c *canvas) linesHeight(lines []line, base style) (int, error) {
	h := 0
	for _, l := range lines {
		lh, _, err := c.lineMetrics(l, base)
		if err != nil {
			return 0, err
		}
		h += lh
	}
	return h, nil
}

// lineMetrics returns the line box height and the baseline offset within it,
// using the largest style on the line.
func (c *canvas) lineMetrics(l line, base style) (int, int, error) {
	st := base
	for _, f := range l.frags {
		if f.style.size > st.size {
			st = f.style
		}
	}
	face, err := c.faces.get(st.size, st.bold)
	if err != nil {
		return 0, 0, err
	}
	m := face.Metrics()
	lh := c.px(st.size * lineSpacing)
	glyphH := (m.Ascent + m.Descent).Ceil()
	return lh, (lh-glyphH)/2 + m.Ascent.Ceil(), nil
}

// wrap breaks runs into lines no wider than width, on spaces where possible
// and inside words that are too long on their own. Newlines force a break.
func (c *canvas) wrap(runs []run, width int) ([]line, error) {
	var lines []line
	cur := line{}
	flush := func() {
		lines = append(lines, cur)
		cur = line{}
	}

	for _, r := range runs {
		face, err := c.faces.get(r.style.size, r.style.bold)
		if err != nil {
			return nil, err
		}
		space := font.MeasureString(face, " ").Ceil()

		for i, para := range strings.Split(strings.ReplaceAll(r.text, "\r\n", "\n"), "\n") {
			if i > 0 {
				flush()
			}
			for _, word := range strings.Fields(para) {
				for _, piece := range c.breakWord(face, word, width) {
					w := font.MeasureString(face, piece).Ceil()
					x := cur.width
					if len(cur.frags) > 0 {
						x += space
					}
					if len(cur.frags) > 0 && x+w > width {
						flush()
						x = 0
					}
					cur.frags = append(cur.frags, fragment{text: piece, style: r.style, face: face, x: x, width: w})
					cur.width = x + w
				}
			}
		}
	}
	if len(cur.frags) > 0 || len(lines) == 0 {
		flush()
	}
	return lines, nil
}

// breakWord splits a word wider than width into pieces that fit.
func (c *canvas) breakWord(face font.Face, word string, width int) []string {
	if font.MeasureString(face, word).Ceil() <= width {
		return []string{word}
	}
	var pieces []string
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && font.MeasureString(face, string(runes[start:end+1])).Ceil() <= width {
			end++
		}
		pieces = append(pieces, string(runes[start:end]))
		start = end
	}
	return pieces
}
