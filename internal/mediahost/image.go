package mediahost

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	MaxWidth    = 800
	MaxHeight   = 600
	jpegQuality = 85
)

// Prepared is an upload ready to be stored.
type Prepared struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// IsImage sniffs the leading bytes of data.
func IsImage(data []byte) bool {
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}

// Prepare decodes an uploaded image, shrinks it to fit within
// MaxWidth x MaxHeight keeping the aspect ratio, and re-encodes it. Formats
// that may carry transparency come out as PNG, everything else as JPEG.
func Prepare(data []byte) (*Prepared, error) {
	if !IsImage(data) {
		return nil, ErrNotImage
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	b := img.Bounds()
	if b.Dx() > MaxWidth || b.Dy() > MaxHeight {
		img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	out := &Prepared{ContentType: "image/jpeg", Ext: ".jpg"}

	var buf bytes.Buffer
	switch format {
	case "png", "gif", "webp":
		out.ContentType, out.Ext = "image/png", ".png"
		err = imaging.Encode(&buf, img, imaging.PNG)
	default:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	}
	if err != nil {
		return nil, fmt.Errorf("could not encode image: %w", err)
	}

	out.Data = buf.Bytes()
	out.Width = img.Bounds().Dx()
	out.Height = img.Bounds().Dy()

	return out, nil
}
