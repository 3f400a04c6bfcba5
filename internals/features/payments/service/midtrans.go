package service

import (
	"errors"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"realestate_backend/internals/configs"
	"realestate_backend/internals/features/payments/model"
)

var SnapClient snap.Client

// InitMidtrans dipanggil saat bootstrap. MIDTRANS_ENV=production untuk live,
// selain itu Sandbox.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if strings.EqualFold(configs.GetEnv("MIDTRANS_ENV", "sandbox"), "production") {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// GenerateSnapToken membuat transaksi Snap untuk satu invoice.
// Mengembalikan token + redirect URL.
func GenerateSnapToken(p *model.PaymentModel, cust CustomerInput) (string, string, error) {
	if p.AmountIDR <= 0 {
		return "", "", errors.New("jumlah invoice tidak valid")
	}
	if strings.TrimSpace(p.OrderID) == "" {
		return "", "", errors.New("order_id wajib diisi")
	}

	itemName := p.Description
	if itemName == "" {
		itemName = "Listing promotion"
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.OrderID,
			GrossAmt: p.AmountIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       p.OrderID,
				Price:    p.AmountIDR,
				Qty:      1,
				Name:     truncate(itemName, 50),
				Category: "listing-promotion",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
