package texture

import "bytes"
import "errors"
import "strings"
import "testing"
import "testing/fstest"

import "image"
import "image/png"
import "image/color"

import "golang.org/x/image/bmp"

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 255, 128})
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buffer bytes.Buffer
	err := png.Encode(&buffer, img)
	if err != nil { t.Fatal(err) }
	return buffer.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	var bmpBuffer bytes.Buffer
	err := bmp.Encode(&bmpBuffer, testImage())
	if err != nil { t.Fatal(err) }

	tests := []struct {
		format string
		data []byte
	}{
		{"png", encodePNG(t, testImage())},
		{"bmp", bmpBuffer.Bytes()},
	}
	for _, test := range tests {
		img, format, err := Decode(bytes.NewReader(test.data))
		if err != nil { t.Fatalf("%s: %s", test.format, err) }
		if format != test.format {
			t.Fatalf("expected format '%s', got '%s'", test.format, format)
		}
		if img.Bounds() != image.Rect(0, 0, 3, 2) {
			t.Fatalf("%s: unexpected bounds %v", test.format, img.Bounds())
		}
		r, g, b, a := img.At(0, 0).RGBA()
		if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
			t.Fatalf("%s: expected opaque red at (0, 0)", test.format)
		}
	}
}

func TestDecodeFS(t *testing.T) {
	fsys := fstest.MapFS{
		"beams.png": &fstest.MapFile{ Data: encodePNG(t, testImage()) },
		"broken.png": &fstest.MapFile{ Data: []byte("not an image") },
	}

	img, err := DecodeFS(fsys, "beams.png")
	if err != nil { t.Fatal(err) }
	if img.Bounds().Dx() != 3 {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}

	_, err = DecodeFS(fsys, "broken.png")
	if err == nil || !errors.Is(err, image.ErrFormat) {
		t.Fatalf("expected image.ErrFormat, got %v", err)
	}
	_, err = DecodeFS(fsys, "missing.png")
	if err == nil || !strings.HasPrefix(err.Error(), "failed to load image missing.png from file") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(t.TempDir() + "/space_background_asteroid.png")
	if err == nil { t.Fatal("expected error for missing file") }
	if !strings.Contains(err.Error(), "failed to load image") {
		t.Fatalf("unexpected error message '%s'", err)
	}
}
