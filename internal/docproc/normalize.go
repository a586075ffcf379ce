// Package docproc turns uploaded documents into a single flattened image
// plus a best-effort text layer, ready for transport to the model API.
package docproc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/gen2brain/go-fitz"

	"myteai/internal/domain"
)

const (
	maxRenderedPages = 3
	renderDPI        = 150
	extractDeadline  = 10 * time.Second
)

// Normalize converts an upload into one RGB raster image and, for PDFs, the
// extracted text layer. Image kinds are decoded directly. PDFs have their
// first pages rendered and vertically stacked. Unknown kinds degrade to a
// small blank canvas so the request still reaches the model.
func Normalize(ctx context.Context, content []byte, filename string) (image.Image, string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "png", "jpg", "jpeg":
		img, _, err := image.Decode(bytes.NewReader(content))
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}
		return img, "", nil
	case "pdf":
		pages, err := renderPages(content)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}
		return stackPages(pages), ExtractText(ctx, content), nil
	default:
		return blankCanvas(100, 100), "", nil
	}
}

// EncodePNG serializes an image losslessly for base64 transport.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// renderPages rasterizes up to maxRenderedPages pages of a PDF at renderDPI.
func renderPages(content []byte) ([]image.Image, error) {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer func() { _ = doc.Close() }()

	n := doc.NumPage()
	if n > maxRenderedPages {
		n = maxRenderedPages
	}

	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := doc.ImageDPI(i, renderDPI)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", i+1, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// stackPages concatenates page images top-to-bottom, padded to the widest
// page on a white background.
func stackPages(pages []image.Image) image.Image {
	if len(pages) == 0 {
		return blankCanvas(1, 1)
	}

	width, height := 0, 0
	for _, p := range pages {
		if w := p.Bounds().Dx(); w > width {
			width = w
		}
		height += p.Bounds().Dy()
	}

	canvas := blankCanvas(width, height)
	y := 0
	for _, p := range pages {
		target := image.Rect(0, y, p.Bounds().Dx(), y+p.Bounds().Dy())
		draw.Draw(canvas, target, p, p.Bounds().Min, draw.Src)
		y += p.Bounds().Dy()
	}
	return canvas
}

func blankCanvas(width, height int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return canvas
}

// ExtractText pulls the text layer across all PDF pages. Extraction is
// best-effort: any failure degrades to an empty string. The reader can
// panic or loop without terminating on unusual PDFs, so the work runs in a
// goroutine bounded by the caller context and a hard deadline; on timeout
// the result is abandoned.
func ExtractText(ctx context.Context, content []byte) string {
	ctx, cancel := context.WithTimeout(ctx, extractDeadline)
	defer cancel()

	result := make(chan string, 1)
	go func() {
		result <- extractText(content)
	}()

	select {
	case text := <-result:
		return text
	case <-ctx.Done():
		return ""
	}
}

func extractText(content []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			// The plain-text interpreter does not terminate on a page
			// without a content stream.
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	return b.String()
}
