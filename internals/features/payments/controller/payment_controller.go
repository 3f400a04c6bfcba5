package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	agencyModel "realestate_backend/internals/features/directory/agencies/model"
	payDTO "realestate_backend/internals/features/payments/dto"
	payModel "realestate_backend/internals/features/payments/model"
	payService "realestate_backend/internals/features/payments/service"
	helper "realestate_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validatePayment = validator.New()

// POST /
// Buat invoice promosi listing untuk satu agency, langsung minta Snap token.
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	var req payDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validatePayment.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var agency agencyModel.AgencyModel
	if err := ctrl.DB.First(&agency, req.AgencyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa agency")
	}

	orderID := fmt.Sprintf("promo-%d-%s", agency.ID, strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	m := req.ToModel(orderID)

	phone := ""
	if agency.Phone != nil {
		phone = *agency.Phone
	}
	token, redirectURL, err := payService.GenerateSnapToken(m, payService.CustomerInput{
		Name:  agency.OwnerName,
		Email: agency.Email,
		Phone: phone,
	})
	if err != nil {
		log.Printf("[ERROR] midtrans snap gagal untuk %s: %v", orderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}
	m.SnapToken = &token
	m.RedirectURL = &redirectURL

	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Order ID sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan invoice")
	}

	return helper.JsonCreated(c, "Invoice berhasil dibuat", payDTO.NewPaymentResponse(m))
}

// GET /list — filter ?status=, ?agency_id=
func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&payModel.PaymentModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if aid := strings.TrimSpace(c.Query("agency_id")); aid != "" {
		if n, err := strconv.Atoi(aid); err == nil && n > 0 {
			tx = tx.Where("agency_id = ?", n)
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung invoice")
	}

	var rows []payModel.PaymentModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}

	resp := make([]*payDTO.PaymentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, payDTO.NewPaymentResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /:id
func (ctrl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m payModel.PaymentModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}
	return helper.JsonOK(c, "OK", payDTO.NewPaymentResponse(&m))
}

// POST /notification — webhook Midtrans (tanpa auth, path di skip-list).
// Selalu balas 200 supaya Midtrans tidak retry terus untuk order tak dikenal.
func (ctrl *PaymentController) Notification(c *fiber.Ctx) error {
	var notif payDTO.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}
	if strings.TrimSpace(notif.OrderID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id kosong")
	}

	var m payModel.PaymentModel
	if err := ctrl.DB.Where("order_id = ?", notif.OrderID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] notifikasi untuk order tak dikenal: %s", notif.OrderID)
			return helper.JsonOK(c, "OK", fiber.Map{"order_id": notif.OrderID})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}

	newStatus := mapTransactionStatus(notif.TransactionStatus, notif.FraudStatus)
	if newStatus == "" || newStatus == m.Status {
		return helper.JsonOK(c, "OK", payDTO.NewPaymentResponse(&m))
	}

	m.Status = newStatus
	if newStatus == payModel.PaymentStatusPaid {
		now := time.Now()
		m.PaidAt = &now
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui invoice")
	}

	log.Printf("[INFO] 💳 payment %s → %s", m.OrderID, m.Status)
	return helper.JsonOK(c, "OK", payDTO.NewPaymentResponse(&m))
}

// mapTransactionStatus menerjemahkan status Midtrans ke status internal.
// String kosong berarti tidak ada transisi.
func mapTransactionStatus(txStatus, fraudStatus string) string {
	switch txStatus {
	case "capture":
		if fraudStatus == "accept" || fraudStatus == "" {
			return payModel.PaymentStatusPaid
		}
		return payModel.PaymentStatusPending
	case "settlement":
		return payModel.PaymentStatusPaid
	case "pending":
		return payModel.PaymentStatusPending
	case "deny", "failure":
		return payModel.PaymentStatusFailed
	case "expire":
		return payModel.PaymentStatusExpired
	case "cancel":
		return payModel.PaymentStatusCancel
	}
	return ""
}
