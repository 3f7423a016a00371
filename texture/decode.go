// Package texture decodes image files and turns them into textures
// that can be drawn with a [blendemo.Compositor].
//
// Supported formats are PNG, JPEG and GIF through the standard library
// decoders, plus BMP, TIFF and WebP through golang.org/x/image.
package texture

import "io"
import "os"
import "fmt"
import "io/fs"
import "image"

import _ "image/gif"
import _ "image/jpeg"
import _ "image/png"

import _ "golang.org/x/image/bmp"
import _ "golang.org/x/image/tiff"
import _ "golang.org/x/image/webp"

type errMsg string
func (self errMsg) Error() string { return string(self) }

const errIsDir errMsg = "path is a directory"

// Decodes an image in any of the supported formats. The format name
// is returned too, as in [image.Decode]().
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Opens and decodes the given image file.
func DecodeFile(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil { return nil, loadErr(filename, err) }
	img, _, err := Decode(file)
	closeErr := file.Close()
	if err != nil { return nil, loadErr(filename, err) }
	if closeErr != nil { return nil, loadErr(filename, closeErr) }
	return img, nil
}

// Same as [DecodeFile](), but reading from the given filesystem.
func DecodeFS(fsys fs.FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil { return nil, loadErr(name, err) }
	img, _, err := Decode(file)
	closeErr := file.Close()
	if err != nil { return nil, loadErr(name, err) }
	if closeErr != nil { return nil, loadErr(name, closeErr) }
	return img, nil
}

func loadErr(name string, err error) error {
	return fmt.Errorf("failed to load image %s from file: %w", name, err)
}
