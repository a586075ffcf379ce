package docproc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myteai/internal/domain"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// minimalPDF builds a valid PDF with the given number of pages, none of
// which carry a content stream.
func minimalPDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] >>\nendobj\n", i+3))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)
	return buf.Bytes()
}

func TestNormalize_PNGDirectDecode(t *testing.T) {
	src := solidImage(12, 7, color.RGBA{R: 255, A: 255})

	img, rawText, err := Normalize(context.Background(), encodePNG(t, src), "photo.PNG")
	require.NoError(t, err)
	assert.Empty(t, rawText)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 7, img.Bounds().Dy())
}

func TestNormalize_UndecodableImage(t *testing.T) {
	_, _, err := Normalize(context.Background(), []byte("definitely not an image"), "broken.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestNormalize_MalformedPDF(t *testing.T) {
	_, _, err := Normalize(context.Background(), []byte("%PDF-garbage"), "broken.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestNormalize_UnknownKindPlaceholder(t *testing.T) {
	img, rawText, err := Normalize(context.Background(), []byte("some bytes"), "notes.txt")
	require.NoError(t, err)
	assert.Empty(t, rawText)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	r, g, b, _ := img.At(50, 50).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestRenderPages_CappedAtThree(t *testing.T) {
	pages, err := renderPages(minimalPDF(10))
	require.NoError(t, err)
	require.Len(t, pages, 3)
	for _, p := range pages[1:] {
		assert.Equal(t, pages[0].Bounds().Dy(), p.Bounds().Dy())
	}
}

func TestNormalize_TenPagePDFStacksThreePages(t *testing.T) {
	pages, err := renderPages(minimalPDF(10))
	require.NoError(t, err)
	require.Len(t, pages, 3)
	pageHeight := pages[0].Bounds().Dy()

	img, _, err := Normalize(context.Background(), minimalPDF(10), "tenpages.pdf")
	require.NoError(t, err)
	assert.Equal(t, 3*pageHeight, img.Bounds().Dy())
	assert.Equal(t, pages[0].Bounds().Dx(), img.Bounds().Dx())
}

func TestStackPages_GeometryAndOrder(t *testing.T) {
	red := solidImage(30, 10, color.RGBA{R: 255, A: 255})
	blue := solidImage(50, 20, color.RGBA{B: 255, A: 255})

	stacked := stackPages([]image.Image{red, blue})

	assert.Equal(t, 50, stacked.Bounds().Dx())
	assert.Equal(t, 30, stacked.Bounds().Dy())

	// First page on top.
	r, _, _, _ := stacked.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	// Second page below it.
	_, _, b, _ := stacked.At(5, 15).RGBA()
	assert.Equal(t, uint32(0xffff), b)
	// Unused horizontal space right of the narrow page is white-filled.
	r, g, b, _ := stacked.At(45, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestStackPages_Empty(t *testing.T) {
	stacked := stackPages(nil)
	assert.Equal(t, 1, stacked.Bounds().Dx())
	assert.Equal(t, 1, stacked.Bounds().Dy())
}

func TestExtractText_GarbageDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ExtractText(ctx, []byte("not a pdf at all")))
	assert.Empty(t, ExtractText(ctx, nil))
}

// A page without a content stream used to pin the request forever inside
// the plain-text interpreter. Extraction must come back empty within the
// deadline instead.
func TestExtractText_ContentlessPagesReturnInTime(t *testing.T) {
	doc := minimalPDF(2)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	result := make(chan string, 1)
	go func() { result <- ExtractText(ctx, doc) }()

	select {
	case text := <-result:
		assert.Empty(t, text)
	case <-time.After(5 * time.Second):
		t.Fatal("text extraction did not return in time")
	}
}
