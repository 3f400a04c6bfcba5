package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	model "realestate_backend/internals/features/settings/site_settings/model"
)

// SettingService membungkus tabel site_settings dengan cache TTL in-process.
// Dibaca di hot path (maintenance gate), jadi jangan query DB tiap request.
type SettingService struct {
	DB    *gorm.DB
	cache *gocache.Cache
}

const cacheTTL = 30 * time.Second

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{
		DB:    db,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Get mengambil value by key; absent bukan error (return "", false).
func (s *SettingService) Get(key string) (string, bool, error) {
	if v, found := s.cache.Get(key); found {
		if v == nil {
			return "", false, nil
		}
		return v.(string), true, nil
	}

	var m model.SiteSettingModel
	err := s.DB.Where("setting_key = ?", key).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.cache.Set(key, nil, cacheTTL) // negative cache
			return "", false, nil
		}
		return "", false, err
	}

	s.cache.Set(key, m.Value, cacheTTL)
	return m.Value, true, nil
}

func (s *SettingService) GetBool(key string) (bool, error) {
	v, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, nil
	}
	return b, nil
}

// Set upsert by key + bump version, lalu invalidasi cache.
func (s *SettingService) Set(key, value, typ string, isPublic bool) (*model.SiteSettingModel, error) {
	var m model.SiteSettingModel
	err := s.DB.Where("setting_key = ?", key).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = model.SiteSettingModel{
			Key:      key,
			Value:    value,
			Type:     typ,
			IsPublic: isPublic,
			Version:  1,
		}
		if err := s.DB.Create(&m).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		m.Value = value
		if typ != "" {
			m.Type = typ
		}
		m.IsPublic = isPublic
		m.Version++
		if err := s.DB.Save(&m).Error; err != nil {
			return nil, err
		}
	}

	s.cache.Delete(key)
	return &m, nil
}

// PublicSettings: hanya baris is_public, untuk probe tanpa auth.
func (s *SettingService) PublicSettings() (map[string]string, error) {
	var rows []model.SiteSettingModel
	if err := s.DB.Where("is_public = TRUE").Order("setting_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

// MaintenanceOn: pembacaan flag yang tidak pernah memblokir request
// (error DB dianggap maintenance off).
func (s *SettingService) MaintenanceOn() bool {
	on, err := s.GetBool(model.KeyMaintenanceMode)
	if err != nil {
		return false
	}
	return on
}

// Invalidate membuang satu key dari cache (dipanggil controller setelah update).
func (s *SettingService) Invalidate(key string) {
	s.cache.Delete(key)
}
