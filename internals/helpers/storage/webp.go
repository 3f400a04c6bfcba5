// file: internals/helpers/storage/webp.go
package storage

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"realestate_backend/internals/configs"
	"realestate_backend/internals/constants"
)

const (
	webpQuality  = float32(82)
	webpMaxWidth = 1600
	thumbWidth   = 320
)

// SaveImageAsWebP re-encode gambar upload jadi WebP (downscale kalau lebar > max),
// plus thumbnail kecil. Mengembalikan path relatif gambar utama dan thumbnail.
func SaveImageAsWebP(dir, prefix string, fh *multipart.FileHeader) (string, string, error) {
	if err := ValidateUpload(fh, constants.AllowedImageExt); err != nil {
		return "", "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("decode gambar: %w", err)
	}

	img = downscale(img, webpMaxWidth)

	name := BuildObjectName(prefix, ".webp")
	absDir := filepath.Join(configs.UploadRoot, filepath.Clean("/"+dir))
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", "", err
	}

	if err := encodeWebPFile(filepath.Join(absDir, name), img); err != nil {
		return "", "", err
	}

	// thumbnail (best effort, gagal thumbnail tidak membatalkan upload)
	thumbName := strings.TrimSuffix(name, ".webp") + "-thumb.webp"
	thumbRel := ""
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := encodeWebPFile(filepath.Join(absDir, thumbName), thumb); err == nil {
		thumbRel = filepath.ToSlash(filepath.Join(dir, thumbName))
	}

	return filepath.ToSlash(filepath.Join(dir, name)), thumbRel, nil
}

func downscale(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	ratio := float64(maxWidth) / float64(b.Dx())
	h := int(math.Round(float64(b.Dy()) * ratio))
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func encodeWebPFile(absPath string, img image.Image) error {
	f, err := os.Create(absPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return webp.Encode(f, img, &webp.Options{Quality: webpQuality})
}
