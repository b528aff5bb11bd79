package export

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"testing"
	"time"

	"fleet-app-go/internal/render"
)

func testRaster(height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, render.PageWidthPx*render.Scale, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func TestExportMissingTarget(t *testing.T) {
	exporter := New(NewRegistry())

	_, err := exporter.Export(context.Background(), "report", "Relatorio_Frota")
	if err != ErrRenderTargetMissing {
		t.Fatalf("expected ErrRenderTargetMissing, got %v", err)
	}
	if exporter.busy.Load() {
		t.Fatal("busy flag stuck after failed export")
	}
}

func TestExportEmptyTarget(t *testing.T) {
	registry := NewRegistry()
	registry.Mount("report", image.NewRGBA(image.Rect(0, 0, 0, 0)))

	exporter := New(registry)
	doc, err := exporter.Export(context.Background(), "report", "Relatorio_Frota")
	if err != ErrRenderTargetMissing {
		t.Fatalf("expected ErrRenderTargetMissing, got %v", err)
	}
	if doc != nil {
		t.Fatal("failed export must not produce a document")
	}
}

func TestExportProducesNamedDocument(t *testing.T) {
	registry := NewRegistry()
	registry.Mount("report", testRaster(400))

	exporter := New(registry)
	exporter.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }

	doc, err := exporter.Export(context.Background(), "report", "Relatorio_Frota")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.FileName != "Relatorio_Frota_2024-06-15.pdf" {
		t.Fatalf("unexpected file name %q", doc.FileName)
	}
	if !bytes.HasPrefix(doc.Bytes, []byte("%PDF")) {
		t.Fatal("document bytes are not a PDF")
	}
}

func TestExportUnmountsTargetOnAllPaths(t *testing.T) {
	registry := NewRegistry()
	registry.Mount("report", testRaster(400))

	exporter := New(registry)
	if _, err := exporter.Export(context.Background(), "report", "r"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, ok := registry.lookup("report"); ok {
		t.Fatal("target still mounted after successful export")
	}

	// Failure path tears down too: the id is unmounted even when never found.
	if _, err := exporter.Export(context.Background(), "report", "r"); err != ErrRenderTargetMissing {
		t.Fatalf("expected ErrRenderTargetMissing, got %v", err)
	}
	if exporter.busy.Load() {
		t.Fatal("busy flag stuck")
	}
}

func TestConcurrentExportRejected(t *testing.T) {
	registry := NewRegistry()
	registry.Mount("report", testRaster(400))

	exporter := New(registry)
	exporter.busy.Store(true)

	doc, err := exporter.Export(context.Background(), "report", "r")
	if err != ErrExportInProgress {
		t.Fatalf("expected ErrExportInProgress, got %v", err)
	}
	if doc != nil {
		t.Fatal("rejected export must not produce a document")
	}
	// The rejected call must not release the in-flight export's lock.
	if !exporter.busy.Load() {
		t.Fatal("rejected export cleared the busy flag of the in-flight one")
	}
	// Nor tear down the in-flight export's target.
	if _, ok := registry.lookup("report"); !ok {
		t.Fatal("rejected export unmounted the in-flight target")
	}
}

func TestSliceBandsPagination(t *testing.T) {
	width := render.PageWidthPx * render.Scale
	pageHeight := width * render.PageHeightPx / render.PageWidthPx

	tall := testRaster(pageHeight*2 + pageHeight/2)
	bands := sliceBands(tall)

	if len(bands) != 3 {
		t.Fatalf("expected 3 bands for 2.5 pages, got %d", len(bands))
	}
	for i, band := range bands {
		b := band.Bounds()
		if b.Dx() != width || b.Dy() != pageHeight {
			t.Fatalf("band %d has size %dx%d, want %dx%d", i, b.Dx(), b.Dy(), width, pageHeight)
		}
	}

	short := testRaster(pageHeight / 3)
	if got := len(sliceBands(short)); got != 1 {
		t.Fatalf("expected single band for short raster, got %d", got)
	}
}
