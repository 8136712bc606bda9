package document

// Band is one page-height slice [Top, Bottom) of a taller raster.
type Band struct {
	Index  int
	Top    int
	Bottom int
}

func (b Band) Height() int {
	return b.Bottom - b.Top
}

// SliceBands cuts contentHeight pixels into ceil(contentHeight/pageHeight)
// bands, top to bottom. Each band starts where the previous one ended and the
// last one ends at contentHeight, so no row is skipped or repeated.
func SliceBands(contentHeight, pageHeight int) []Band {
	if contentHeight <= 0 || pageHeight <= 0 {
		return nil
	}
	count := (contentHeight + pageHeight - 1) / pageHeight

	bands := make([]Band, 0, count)
	for i := 0; i < count; i++ {
		bottom := (i + 1) * pageHeight
		if bottom > contentHeight {
			bottom = contentHeight
		}
		bands = append(bands, Band{Index: i, Top: i * pageHeight, Bottom: bottom})
	}
	return bands
}

// PageHeightPixels is the height of one A4 page for a raster of the given
// pixel width, keeping the page aspect ratio.
func PageHeightPixels(rasterWidth int) int {
	return int(float64(rasterWidth)*PageHeightMM/PageWidthMM + 0.5)
}
