package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskDTO "realestate_backend/internals/features/content/tasks/dto"
	taskModel "realestate_backend/internals/features/content/tasks/model"
	helper "realestate_backend/internals/helpers"
	helperAuth "realestate_backend/internals/helpers/auth"
)

type TaskController struct {
	DB *gorm.DB
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

var validateTask = validator.New()

// POST /
func (ctrl *TaskController) Create(c *fiber.Ctx) error {
	var req taskDTO.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTask.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tugas")
	}

	return helper.JsonCreated(c, "Tugas berhasil dibuat", taskDTO.NewTaskResponse(m))
}

// GET /list — filter ?status=, ?assignee_id=, ?from=/&to= (due_date).
func (ctrl *TaskController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&taskModel.TaskModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if aid := strings.TrimSpace(c.Query("assignee_id")); aid != "" {
		if n, err := strconv.Atoi(aid); err == nil && n > 0 {
			tx = tx.Where("assignee_id = ?", n)
		}
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			tx = tx.Where("due_date >= ?", t)
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'from' tidak valid (YYYY-MM-DD)")
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			tx = tx.Where("due_date <= ?", t)
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'to' tidak valid (YYYY-MM-DD)")
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tugas")
	}

	var rows []taskModel.TaskModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	resp := make([]*taskDTO.TaskResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, taskDTO.NewTaskResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /mine — tugas milik user login
func (ctrl *TaskController) Mine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []taskModel.TaskModel
	if err := ctrl.DB.
		Where("assignee_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	resp := make([]*taskDTO.TaskResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, taskDTO.NewTaskResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /assignee/:userId
func (ctrl *TaskController) GetByAssignee(c *fiber.Ctx) error {
	uid, err := strconv.Atoi(strings.TrimSpace(c.Params("userId")))
	if err != nil || uid <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var rows []taskModel.TaskModel
	if err := ctrl.DB.
		Where("assignee_id = ?", uid).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	resp := make([]*taskDTO.TaskResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, taskDTO.NewTaskResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /:id (scope user) — hanya assignee-nya sendiri; admin punya akses
// penuh lewat route admin.
func (ctrl *TaskController) GetOwnByID(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, errID := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if errID != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m taskModel.TaskModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	if m.AssigneeID == nil || *m.AssigneeID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan tugas milik Anda")
	}

	return helper.JsonOK(c, "OK", taskDTO.NewTaskResponse(&m))
}

// GET /:id
func (ctrl *TaskController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m taskModel.TaskModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}
	return helper.JsonOK(c, "OK", taskDTO.NewTaskResponse(&m))
}

// PUT /:id
func (ctrl *TaskController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing taskModel.TaskModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	var req taskDTO.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTask.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tugas")
	}

	return helper.JsonUpdated(c, "Tugas diperbarui", taskDTO.NewTaskResponse(&existing))
}

// DELETE /:id
func (ctrl *TaskController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&taskModel.TaskModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tugas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Tugas dihapus", fiber.Map{"id": id})
}
