package cli

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Fepozopo/spherize/pkg/stdimg"
)

// sniffFormat guesses the container from magic bytes. It returns "" when unsure.
func sniffFormat(b []byte) string {
	switch {
	case bytes.HasPrefix(b, []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case bytes.HasPrefix(b, []byte("GIF87a")), bytes.HasPrefix(b, []byte("GIF89a")):
		return "gif"
	case bytes.HasPrefix(b, []byte("BM")):
		return "bmp"
	case bytes.HasPrefix(b, []byte("II*\x00")), bytes.HasPrefix(b, []byte("MM\x00*")):
		return "tiff"
	case len(b) >= 12 && string(b[:4]) == "RIFF" && string(b[8:12]) == "WEBP":
		return "webp"
	}
	return ""
}

// LoadImage reads and decodes the image at path, applying EXIF orientation
// for JPEG. It returns the image and its format name.
func LoadImage(path string) (image.Image, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	format := sniffFormat(b)
	orientation := 1
	if format == "jpeg" {
		if o, err := extractJPEGOrientation(b); err == nil {
			orientation = o
		}
	}
	img, decoded, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		if format == "" {
			return nil, "", fmt.Errorf("%s: unsupported image format: %w", path, err)
		}
		return nil, format, fmt.Errorf("%s: corrupt %s data: %w", path, format, err)
	}
	if format == "" {
		format = decoded
	}
	if orientation != 1 {
		img = stdimg.AutoOrient(img, orientation)
	}
	return img, format, nil
}

// FileLoader reads pipeline input with LoadImage.
type FileLoader struct{}

func (FileLoader) Load(path string) (image.Image, error) {
	img, _, err := LoadImage(path)
	return img, err
}
