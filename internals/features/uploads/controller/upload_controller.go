package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uploadDTO "realestate_backend/internals/features/uploads/dto"
	uploadModel "realestate_backend/internals/features/uploads/model"
	helper "realestate_backend/internals/helpers"
	helperAuth "realestate_backend/internals/helpers/auth"
	"realestate_backend/internals/helpers/storage"
)

type UploadController struct {
	DB *gorm.DB
}

func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{DB: db}
}

// POST /image — multipart field "file"; re-encode ke WebP + thumbnail
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di field 'file'")
	}

	mainRel, thumbRel, err := storage.SaveImageAsWebP("images", "img", fh)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	}

	m := &uploadModel.UploadModel{
		OriginalName: fh.Filename,
		StoredPath:   mainRel,
		ThumbPath:    &thumbRel,
		MimeType:     "image/webp",
		SizeByte:     fh.Size,
		Kind:         uploadModel.UploadKindImage,
	}
	if uid, err := helperAuth.GetUserIDFromToken(c); err == nil {
		m.UploaderID = &uid
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		// metadata gagal, jangan tinggalkan file yatim
		_ = storage.DeleteByPath(mainRel)
		_ = storage.DeleteByPath(thumbRel)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan metadata upload")
	}

	return helper.JsonCreated(c, "Gambar berhasil diunggah", uploadDTO.NewUploadResponse(m))
}

// POST /document — multipart field "file"; pdf/doc/xls
func (ctrl *UploadController) UploadDocument(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di field 'file'")
	}

	relPath, contentType, err := storage.SaveToDir("documents", "doc", fh)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
	}

	m := &uploadModel.UploadModel{
		OriginalName: fh.Filename,
		StoredPath:   relPath,
		MimeType:     contentType,
		SizeByte:     fh.Size,
		Kind:         uploadModel.UploadKindDocument,
	}
	if uid, err := helperAuth.GetUserIDFromToken(c); err == nil {
		m.UploaderID = &uid
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		_ = storage.DeleteByPath(relPath)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan metadata upload")
	}

	return helper.JsonCreated(c, "Dokumen berhasil diunggah", uploadDTO.NewUploadResponse(m))
}

// GET /list — filter ?kind=, ?uploader_id=
func (ctrl *UploadController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&uploadModel.UploadModel{})
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		tx = tx.Where("kind = ?", kind)
	}
	if uid := strings.TrimSpace(c.Query("uploader_id")); uid != "" {
		if n, err := strconv.Atoi(uid); err == nil && n > 0 {
			tx = tx.Where("uploader_id = ?", n)
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung upload")
	}

	var rows []uploadModel.UploadModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil upload")
	}

	resp := make([]*uploadDTO.UploadResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, uploadDTO.NewUploadResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /:id
func (ctrl *UploadController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m uploadModel.UploadModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Upload tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil upload")
	}
	return helper.JsonOK(c, "OK", uploadDTO.NewUploadResponse(&m))
}

// DELETE /:id — hapus file dari disk lalu metadata
func (ctrl *UploadController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m uploadModel.UploadModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Upload tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil upload")
	}

	if err := storage.DeleteByPath(m.StoredPath); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus file")
	}
	if m.ThumbPath != nil {
		_ = storage.DeleteByPath(*m.ThumbPath)
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus metadata upload")
	}

	return helper.JsonDeleted(c, "Upload dihapus", fiber.Map{"id": id})
}
