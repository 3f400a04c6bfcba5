package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateNoticeRequestToModel(t *testing.T) {
	req := CreateNoticeRequest{
		Title:      "  Rapat bulanan  ",
		Body:       "Semua agent hadir jam 9.",
		NoticeDate: "2026-02-10",
	}

	m := req.ToModel()

	assert.Equal(t, "Rapat bulanan", m.Title)
	assert.Equal(t, "2026-02-10", m.NoticeDate.Format("2006-01-02"))
	assert.Equal(t, "all", m.Audience)
	assert.Equal(t, "Active", m.Status)
}

func TestUpdateNoticeRequestMerge(t *testing.T) {
	base := CreateNoticeRequest{Title: "Awal", Body: "isi", NoticeDate: "2026-01-01"}
	m := base.ToModel()

	req := UpdateNoticeRequest{
		NoticeDate: strPtr("2026-03-01"),
		Audience:   strPtr("agents"),
	}
	req.ApplyToModel(m)

	// field absen tidak berubah
	assert.Equal(t, "Awal", m.Title)
	assert.Equal(t, "isi", m.Body)
	// field dikirim ikut berubah
	assert.Equal(t, "2026-03-01", m.NoticeDate.Format("2006-01-02"))
	assert.Equal(t, "agents", m.Audience)
}
