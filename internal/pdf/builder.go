package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
)

var (
	ErrEmptyImage   = errors.New("empty preview image")
	ErrDecodeImage  = errors.New("preview image is not a valid PNG")
	ErrBuildFailure = errors.New("pdf assembly failed")
)

// Builder assembles a rasterized budget preview into a multi-page A4 PDF.
// One PNG in, one PDF out; the same image is embedded on every page at a
// shifted vertical offset so each page shows its own slice.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Result carries the assembled document and its page plan.
type Result struct {
	Bytes      []byte
	PageCount  int
	Pagination Pagination
}

// FromPNG tiles the given PNG across as many A4 pages as its height
// requires and returns the finished PDF bytes.
func (b *Builder) FromPNG(png []byte) (Result, error) {
	if len(png) == 0 {
		return Result{}, ErrEmptyImage
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil || format != "png" {
		return Result{}, ErrDecodeImage
	}

	imgW, imgH := ImageExtentMM(cfg.Width, cfg.Height)
	plan := Paginate(imgH)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	doc.RegisterImageOptionsReader("preview", opts, bytes.NewReader(png))
	if doc.Err() {
		return Result{}, fmt.Errorf("%w: %v", ErrBuildFailure, doc.Error())
	}

	for _, page := range plan.Pages {
		doc.AddPage()
		doc.ImageOptions("preview", 0, page.OffsetMM, imgW, imgH, false, opts, 0, "")
	}
	if doc.Err() {
		return Result{}, fmt.Errorf("%w: %v", ErrBuildFailure, doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBuildFailure, err)
	}
	return Result{Bytes: buf.Bytes(), PageCount: len(plan.Pages), Pagination: plan}, nil
}
