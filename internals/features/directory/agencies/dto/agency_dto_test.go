package dto

import (
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	model "realestate_backend/internals/features/directory/agencies/model"
)

func strPtr(s string) *string { return &s }

func TestCreateAgencyRequestToModel(t *testing.T) {
	req := CreateAgencyRequest{
		OwnerName:   "  Budi Santoso  ",
		OfficeName:  "Properti Jaya",
		Email:       "Budi@Example.COM",
		Phone:       strPtr("  "),
		Specialties: []string{"residential", "commercial"},
	}

	m := req.ToModel()

	assert.Equal(t, "Budi Santoso", m.OwnerName)
	assert.Equal(t, "budi@example.com", m.Email)
	assert.Nil(t, m.Phone) // whitespace-only dianggap kosong
	assert.Equal(t, "Active", m.Status)
	assert.Equal(t, 0, m.DripMarketing)
	assert.Equal(t, pq.StringArray{"residential", "commercial"}, m.Specialties)

	// cuid digenerate kalau tidak dikirim
	assert.True(t, strings.HasPrefix(m.CUID, "c"))
	assert.Len(t, m.CUID, 25)
}

func TestCreateAgencyRequestKeepsCallerCUID(t *testing.T) {
	req := CreateAgencyRequest{
		CUID:       strPtr("cabc123def456abc123def456"),
		OwnerName:  "Budi",
		OfficeName: "Properti Jaya",
		Email:      "budi@example.com",
	}
	assert.Equal(t, "cabc123def456abc123def456", req.ToModel().CUID)
}

// Kontrak merge update: field absen tidak disentuh, field dikirim kosong
// mengosongkan kolom.
func TestUpdateAgencyRequestApplyToModel(t *testing.T) {
	phone := "0811111111"
	site := "https://old.example.com"
	existing := model.AgencyModel{
		OwnerName:  "Budi",
		OfficeName: "Properti Jaya",
		Email:      "budi@example.com",
		Phone:      &phone,
		Website:    &site,
		Status:     "Active",
	}

	t.Run("field absen tidak berubah", func(t *testing.T) {
		m := existing
		req := UpdateAgencyRequest{OwnerName: strPtr("Budi Baru")}
		req.ApplyToModel(&m)

		assert.Equal(t, "Budi Baru", m.OwnerName)
		assert.Equal(t, "Properti Jaya", m.OfficeName)
		assert.NotNil(t, m.Phone)
		assert.Equal(t, phone, *m.Phone)
	})

	t.Run("string kosong mengosongkan kolom nullable", func(t *testing.T) {
		m := existing
		req := UpdateAgencyRequest{Phone: strPtr(""), Website: strPtr("  ")}
		req.ApplyToModel(&m)

		assert.Nil(t, m.Phone)
		assert.Nil(t, m.Website)
	})

	t.Run("specialties diganti utuh", func(t *testing.T) {
		m := existing
		m.Specialties = pq.StringArray{"residential"}
		newSpecs := []string{"land", "luxury"}
		req := UpdateAgencyRequest{Specialties: &newSpecs}
		req.ApplyToModel(&m)

		assert.Equal(t, pq.StringArray{"land", "luxury"}, m.Specialties)
	})

	t.Run("specialties kosong eksplisit menghapus semua", func(t *testing.T) {
		m := existing
		m.Specialties = pq.StringArray{"residential"}
		empty := []string{}
		req := UpdateAgencyRequest{Specialties: &empty}
		req.ApplyToModel(&m)

		assert.Len(t, m.Specialties, 0)
	})
}
