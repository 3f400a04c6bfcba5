package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"realestate_backend/internals/configs"
	"realestate_backend/internals/constants"
	settingModel "realestate_backend/internals/features/settings/site_settings/model"
	userModel "realestate_backend/internals/features/users/user/model"
)

// RunAllSeeds mengisi data awal yang wajib ada: satu akun owner dan
// site settings default. Idempotent — baris yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	seedOwner(db)
	seedDefaultSettings(db)
}

func seedOwner(db *gorm.DB) {
	email := configs.GetEnv("SEED_OWNER_EMAIL", "owner@example.com")

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] seed owner: %v", err)
		return
	}
	if count > 0 {
		return
	}

	pass := configs.GetEnv("SEED_OWNER_PASSWORD", "changeme123")
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] seed owner hash: %v", err)
		return
	}

	u := userModel.UserModel{
		UserName: "Owner",
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleOwner,
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("[ERROR] seed owner insert: %v", err)
		return
	}
	log.Printf("[INFO] 🌱 akun owner dibuat: %s", email)
}

func seedDefaultSettings(db *gorm.DB) {
	defaults := []settingModel.SiteSettingModel{
		{Key: settingModel.KeyMaintenanceMode, Value: "false", Type: "bool", IsPublic: true},
		{Key: settingModel.KeySiteName, Value: "RealEstate Back Office", Type: "string", IsPublic: true},
		{Key: settingModel.KeyContactEmail, Value: "support@example.com", Type: "string", IsPublic: true},
	}

	for _, s := range defaults {
		var count int64
		if err := db.Model(&settingModel.SiteSettingModel{}).
			Where("setting_key = ?", s.Key).
			Count(&count).Error; err != nil {
			log.Printf("[ERROR] seed setting %s: %v", s.Key, err)
			continue
		}
		if count > 0 {
			continue
		}
		s.Version = 1
		if err := db.Create(&s).Error; err != nil {
			log.Printf("[ERROR] seed setting %s insert: %v", s.Key, err)
		}
	}
}
