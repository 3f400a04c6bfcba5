// file: internals/helpers/storage/local_storage.go
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"realestate_backend/internals/configs"
	"realestate_backend/internals/constants"
)

// BuildObjectName menghasilkan nama file anti-tabrakan: <prefix>-<epochMillis>-<shortID><ext>
func BuildObjectName(prefix, ext string) string {
	p := strings.TrimSpace(prefix)
	if p == "" {
		p = "file"
	}
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s%s", p, time.Now().UnixMilli(), short, strings.ToLower(ext))
}

// ValidateUpload cek ekstensi + MIME + ukuran terhadap allow-list.
// allowedExt nil berarti gabungan image + dokumen.
func ValidateUpload(fh *multipart.FileHeader, allowedExt map[string]bool) error {
	if fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > constants.MaxUploadSizeBytes {
		return fiber.NewError(fiber.StatusBadRequest, "Ukuran file melebihi batas 5MB")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if allowedExt == nil {
		if !constants.AllowedImageExt[ext] && !constants.AllowedDocumentExt[ext] {
			return fiber.NewError(fiber.StatusBadRequest, "Tipe file tidak diizinkan")
		}
	} else if !allowedExt[ext] {
		return fiber.NewError(fiber.StatusBadRequest, "Tipe file tidak diizinkan")
	}

	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if ct != "" {
		if i := strings.Index(ct, ";"); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
		if !constants.AllowedMime[ct] {
			return fiber.NewError(fiber.StatusBadRequest, "Content-Type tidak diizinkan")
		}
	}
	return nil
}

// SaveToDir menulis file multipart ke <UPLOAD_ROOT>/<dir>/ dengan nama generated.
// Mengembalikan path relatif (untuk disimpan di DB) + content type.
func SaveToDir(dir, prefix string, fh *multipart.FileHeader) (string, string, error) {
	if err := ValidateUpload(fh, nil); err != nil {
		return "", "", err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := BuildObjectName(prefix, ext)

	absDir := filepath.Join(configs.UploadRoot, filepath.Clean("/"+dir))
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", "", fmt.Errorf("buat direktori upload: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	absPath := filepath.Join(absDir, name)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", "", err
	}

	ct := fh.Header.Get("Content-Type")
	return filepath.ToSlash(filepath.Join(dir, name)), ct, nil
}

// DeleteByPath menghapus file berdasarkan path relatif yang tersimpan di DB.
func DeleteByPath(relPath string) error {
	if strings.TrimSpace(relPath) == "" {
		return nil
	}
	abs := filepath.Join(configs.UploadRoot, filepath.Clean("/"+relPath))
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
