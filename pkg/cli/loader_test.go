package cli

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// buildJPEGWithOrientation encodes img and splices in an APP1 Exif segment
// holding only the Orientation tag.
func buildJPEGWithOrientation(img image.Image, order binary.ByteOrder, orientation uint16) ([]byte, error) {
	var enc bytes.Buffer
	if err := jpeg.Encode(&enc, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, err
	}
	var tiff bytes.Buffer
	if order == binary.BigEndian {
		tiff.WriteString("MM")
	} else {
		tiff.WriteString("II")
	}
	binary.Write(&tiff, order, uint16(0x2A))
	binary.Write(&tiff, order, uint32(8))
	binary.Write(&tiff, order, uint16(1))
	binary.Write(&tiff, order, uint16(0x0112))
	binary.Write(&tiff, order, uint16(3))
	binary.Write(&tiff, order, uint32(1))
	binary.Write(&tiff, order, orientation)
	binary.Write(&tiff, order, uint16(0))
	binary.Write(&tiff, order, uint32(0))

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	var out bytes.Buffer
	out.Write(enc.Bytes()[:2])
	out.Write([]byte{0xFF, 0xE1})
	binary.Write(&out, binary.BigEndian, uint16(len(payload)+2))
	out.Write(payload)
	out.Write(enc.Bytes()[2:])
	return out.Bytes(), nil
}

func TestLoadImageEXIFOrientation(t *testing.T) {
	src := makeSolidNRGBA(8, 4, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		b, err := buildJPEGWithOrientation(src, order, 6)
		if err != nil {
			t.Fatalf("buildJPEGWithOrientation failed: %v", err)
		}
		if o, err := extractJPEGOrientation(b); err != nil || o != 6 {
			t.Fatalf("%v: expected orientation 6, got %d (%v)", order, o, err)
		}
		path := filepath.Join(t.TempDir(), "rotated.jpg")
		if err := os.WriteFile(path, b, 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		img, format, err := LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage failed: %v", err)
		}
		if format != "jpeg" {
			t.Fatalf("expected jpeg, got %q", format)
		}
		if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 8 {
			t.Fatalf("expected rotated 4x8, got %v", img.Bounds())
		}
	}
}

func TestExtractJPEGOrientationMissing(t *testing.T) {
	var enc bytes.Buffer
	if err := jpeg.Encode(&enc, makeSolidNRGBA(2, 2, color.NRGBA{A: 255}), nil); err != nil {
		t.Fatalf("jpeg.Encode failed: %v", err)
	}
	if _, err := extractJPEGOrientation(enc.Bytes()); err == nil {
		t.Fatalf("expected error for jpeg without exif")
	}
	if _, err := extractJPEGOrientation([]byte("nope")); err == nil {
		t.Fatalf("expected error for non-jpeg data")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := makeNoiseNRGBA(9, 7, 3)
	dir := t.TempDir()
	for _, name := range []string{"a.png", "a.bmp", "a.tiff", "a.tif"} {
		written, err := SaveImage(filepath.Join(dir, name), src)
		if err != nil {
			t.Fatalf("SaveImage %s failed: %v", name, err)
		}
		img, _, err := LoadImage(written)
		if err != nil {
			t.Fatalf("LoadImage %s failed: %v", name, err)
		}
		if img.Bounds().Dx() != 9 || img.Bounds().Dy() != 7 {
			t.Fatalf("%s: unexpected bounds %v", name, img.Bounds())
		}
		for y := 0; y < 7; y++ {
			for x := 0; x < 9; x++ {
				b := img.Bounds()
				got := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				want := src.NRGBAAt(x, y)
				if got.R != want.R || got.G != want.G || got.B != want.B {
					t.Fatalf("%s: pixel (%d,%d) = %v, want %v", name, x, y, got, want)
				}
			}
		}
	}
}

func TestSniffFormat(t *testing.T) {
	cases := map[string]string{
		"\x89PNG\r\n\x1a\nrest":        "png",
		"\xFF\xD8\xFF\xE0":             "jpeg",
		"GIF89a...":                    "gif",
		"BM....":                       "bmp",
		"II*\x00....":                  "tiff",
		"MM\x00*....":                  "tiff",
		"RIFF\x00\x00\x00\x00WEBPVP8 ": "webp",
		"hello":                        "",
	}
	for in, want := range cases {
		if got := sniffFormat([]byte(in)); got != want {
			t.Fatalf("sniffFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("\x89PNG\r\n\x1a\ntruncated"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, format, err := LoadImage(bad); err == nil || format != "png" {
		t.Fatalf("expected corrupt png error, got format %q err %v", format, err)
	}
	if _, err := (FileLoader{}).Load(filepath.Join(dir, "missing.bmp")); err == nil {
		t.Fatalf("expected FileLoader error for missing file")
	}
}
