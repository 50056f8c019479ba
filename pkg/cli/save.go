package cli

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var saveExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true,
}

// OutputPath returns path unchanged when its extension is one SaveImage can
// write, otherwise path with ".png" appended.
func OutputPath(path string) string {
	if saveExts[strings.ToLower(filepath.Ext(path))] {
		return path
	}
	return path + ".png"
}

// DefaultOutputPath names the result next to the input: dir/base_planet.png.
func DefaultOutputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_planet.png"
}

// SaveImage writes img using the format inferred from the filename extension
// and returns the path actually written.
func SaveImage(path string, img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("nil image")
	}
	path = OutputPath(path)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := encode(f, path, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func encode(f *os.File, path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		// jpeg has no alpha channel, transparent pixels come out black
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	case ".gif":
		return gif.Encode(f, img, nil)
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(f, img)
	}
}
