package storage

import (
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate_backend/internals/constants"
)

func fakeFile(name string, size int64, contentType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   h,
	}
}

func TestBuildObjectName(t *testing.T) {
	name := BuildObjectName("img", ".JPG")

	// <prefix>-<epochMillis>-<8 hex><ext kecil>
	re := regexp.MustCompile(`^img-\d+-[0-9a-f]{8}\.jpg$`)
	assert.Regexp(t, re, name)

	// prefix kosong fallback "file"
	assert.Regexp(t, regexp.MustCompile(`^file-`), BuildObjectName("  ", ".png"))

	// dua panggilan tidak boleh tabrakan
	assert.NotEqual(t, name, BuildObjectName("img", ".jpg"))
}

func TestValidateUpload(t *testing.T) {
	t.Run("nil file", func(t *testing.T) {
		err := ValidateUpload(nil, nil)
		require.Error(t, err)
	})

	t.Run("terlalu besar", func(t *testing.T) {
		err := ValidateUpload(fakeFile("a.jpg", constants.MaxUploadSizeBytes+1, "image/jpeg"), nil)
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("ekstensi terlarang", func(t *testing.T) {
		err := ValidateUpload(fakeFile("run.exe", 100, ""), nil)
		require.Error(t, err)
	})

	t.Run("ekstensi valid di luar allow-list spesifik", func(t *testing.T) {
		// pdf sah secara umum, tapi ditolak saat allow-list = gambar saja
		err := ValidateUpload(fakeFile("doc.pdf", 100, "application/pdf"), constants.AllowedImageExt)
		require.Error(t, err)
	})

	t.Run("mime terlarang", func(t *testing.T) {
		err := ValidateUpload(fakeFile("a.jpg", 100, "text/html"), nil)
		require.Error(t, err)
	})

	t.Run("gambar valid", func(t *testing.T) {
		assert.NoError(t, ValidateUpload(fakeFile("a.jpg", 100, "image/jpeg"), nil))
		assert.NoError(t, ValidateUpload(fakeFile("b.PNG", 100, "image/png"), constants.AllowedImageExt))
	})

	t.Run("dokumen valid", func(t *testing.T) {
		assert.NoError(t, ValidateUpload(fakeFile("laporan.pdf", 100, "application/pdf"), nil))
	})

	t.Run("mime dengan parameter tetap lolos", func(t *testing.T) {
		assert.NoError(t, ValidateUpload(fakeFile("a.jpg", 100, "image/jpeg; charset=binary"), nil))
	})
}
