package pdf

import "math"

// A4 page dimensions in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// Page describes one output page of a paginated surface. The full source
// image is drawn on every page at OffsetMM (negative for pages after the
// first), so each page exposes a different vertical slice.
type Page struct {
	// OffsetMM is the vertical position of the image on this page.
	OffsetMM float64
	// SliceTopMM / SliceBottomMM delimit the portion of the source surface
	// visible on this page.
	SliceTopMM    float64
	SliceBottomMM float64
}

// Pagination is the plan for tiling one tall surface across fixed-height
// pages.
type Pagination struct {
	ImageHeightMM float64
	Pages         []Page
}

// PageCount returns the number of pages required for a surface of the given
// height: ceil(H / P), with a minimum of one page for degenerate inputs.
func PageCount(imageHeightMM float64) int {
	if imageHeightMM <= PageHeightMM {
		return 1
	}
	return int(math.Ceil(imageHeightMM / PageHeightMM))
}

// Paginate computes the page plan for a surface of the given height.
//
// Page i places the image at offset -i × pageHeight, so consecutive pages
// expose adjacent, non-overlapping slices and their concatenation
// reconstructs the full surface.
func Paginate(imageHeightMM float64) Pagination {
	n := PageCount(imageHeightMM)
	pages := make([]Page, 0, n)
	for i := 0; i < n; i++ {
		top := float64(i) * PageHeightMM
		bottom := top + PageHeightMM
		if bottom > imageHeightMM {
			bottom = imageHeightMM
		}
		pages = append(pages, Page{
			OffsetMM:      -top,
			SliceTopMM:    top,
			SliceBottomMM: bottom,
		})
	}
	return Pagination{ImageHeightMM: imageHeightMM, Pages: pages}
}

// ImageExtentMM scales a raster of wPx × hPx pixels to the full A4 page
// width and returns its printed size in millimeters. The height is floored
// to a whole millimeter, matching the preview rasterization convention.
func ImageExtentMM(widthPx, heightPx int) (widthMM, heightMM float64) {
	if widthPx <= 0 || heightPx <= 0 {
		return 0, 0
	}
	widthMM = PageWidthMM
	heightMM = math.Floor(float64(heightPx) * PageWidthMM / float64(widthPx))
	return widthMM, heightMM
}
