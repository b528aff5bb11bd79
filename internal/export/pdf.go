package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"sync/atomic"
	"time"

	"github.com/johnfercher/maroto/v2"
	imgcomp "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"fleet-app-go/internal/render"
)

var (
	ErrRenderTargetMissing = errors.New("render target missing or empty")
	ErrExportInProgress    = errors.New("an export is already in progress")
)

// The exporter waits a bounded budget for the render target to be mounted and
// non-empty before rasterization begins. Rendering is synchronous in this
// pipeline, so the budget only matters when the renderer runs concurrently.
const (
	targetWaitBudget   = 500 * time.Millisecond
	targetPollInterval = 25 * time.Millisecond

	a4HeightMM = 297.0
)

// Document is a fully assembled export. Bytes exist only after the whole
// pipeline succeeded; a failed export never yields a partial document.
type Document struct {
	FileName string
	Bytes    []byte
}

type Exporter struct {
	registry *Registry
	busy     atomic.Bool
	now      func() time.Time
}

func New(registry *Registry) *Exporter {
	return &Exporter{registry: registry, now: time.Now}
}

// Export slices the mounted render target into page-height bands and emits one
// A4 page per band. At most one export runs at a time; a concurrent call fails
// with ErrExportInProgress. The target is unmounted and the busy flag released
// on every exit path.
func (e *Exporter) Export(ctx context.Context, targetID, baseName string) (*Document, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer e.busy.Store(false)
	defer e.registry.Unmount(targetID)

	target, err := e.waitForTarget(ctx, targetID)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := assemblePDF(target)
	if err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}

	return &Document{
		FileName: fmt.Sprintf("%s_%s.pdf", baseName, e.now().Format("2006-01-02")),
		Bytes:    pdfBytes,
	}, nil
}

func (e *Exporter) waitForTarget(ctx context.Context, targetID string) (image.Image, error) {
	deadline := time.Now().Add(targetWaitBudget)
	for {
		if img, ok := e.registry.lookup(targetID); ok {
			return img, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrRenderTargetMissing
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(targetPollInterval):
		}
	}
}

func assemblePDF(target image.Image) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(0).
		WithTopMargin(0).
		WithRightMargin(0).
		WithBottomMargin(0).
		Build()

	m := maroto.New(cfg)

	for _, band := range sliceBands(target) {
		var buf bytes.Buffer
		if err := png.Encode(&buf, band); err != nil {
			return nil, fmt.Errorf("encode band: %w", err)
		}
		m.AddRow(a4HeightMM,
			imgcomp.NewFromBytesCol(12, buf.Bytes(), extension.Png, props.Rect{
				Percent: 100,
				Center:  true,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// sliceBands cuts the tall raster into successive page-height bands at the A4
// aspect for the raster's width. The last band is padded with the page
// background so every emitted page keeps the same geometry.
func sliceBands(target image.Image) []image.Image {
	bounds := target.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	bandHeight := width * render.PageHeightPx / render.PageWidthPx
	if bandHeight <= 0 {
		bandHeight = height
	}

	bands := make([]image.Image, 0, (height+bandHeight-1)/bandHeight)
	for offset := 0; offset < height; offset += bandHeight {
		band := image.NewRGBA(image.Rect(0, 0, width, bandHeight))
		draw.Draw(band, band.Bounds(), image.White, image.Point{}, draw.Src)
		draw.Draw(band, band.Bounds(), target, image.Point{X: bounds.Min.X, Y: bounds.Min.Y + offset}, draw.Src)
		bands = append(bands, band)
	}

	return bands
}
