package service

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const thumbnailWidth = 256

// UploadImage stores an uploaded image and writes a thumbnail next to it.
// Returns the stored image path.
func UploadImage(file *multipart.FileHeader, folder string) (string, error) {
	if file == nil {
		return "", nil
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", fmt.Errorf("invalid image type, expected jpeg or png, got: %s", contentType)
	}

	path, err := Upload(file, folder)
	if err != nil {
		return "", err
	}

	if _, err := Thumbnail(path, thumbnailWidth); err != nil {
		return "", err
	}

	return path, nil
}

// Thumbnail scales the image at srcPath down to the given width, keeping the
// aspect ratio, and writes it as <name>_thumb<ext>. Images already narrower
// than width are copied as-is.
func Thumbnail(srcPath string, width int) (string, error) {
	in, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	src, format, err := image.Decode(in)
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() < width {
		width = bounds.Dx()
	}
	height := bounds.Dy() * width / bounds.Dx()

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	ext := filepath.Ext(srcPath)
	thumbPath := strings.TrimSuffix(srcPath, ext) + "_thumb" + ext

	out, err := os.Create(thumbPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch format {
	case "jpeg":
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 85})
	default:
		err = png.Encode(out, dst)
	}
	if err != nil {
		return "", fmt.Errorf("encoding thumbnail: %w", err)
	}

	return thumbPath, nil
}
