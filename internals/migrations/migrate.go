package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	logModel "realestate_backend/internals/features/activity/activity_logs/model"
	commentModel "realestate_backend/internals/features/content/comments/model"
	noticeModel "realestate_backend/internals/features/content/notices/model"
	taskModel "realestate_backend/internals/features/content/tasks/model"
	agencyModel "realestate_backend/internals/features/directory/agencies/model"
	companyModel "realestate_backend/internals/features/directory/companies/model"
	cityModel "realestate_backend/internals/features/locations/cities/model"
	cityDataModel "realestate_backend/internals/features/locations/cities_data/model"
	payModel "realestate_backend/internals/features/payments/model"
	lookupModel "realestate_backend/internals/features/properties/lookups/model"
	settingModel "realestate_backend/internals/features/settings/site_settings/model"
	uploadModel "realestate_backend/internals/features/uploads/model"
	authModel "realestate_backend/internals/features/users/auth/model"
	userModel "realestate_backend/internals/features/users/user/model"
	caModel "realestate_backend/internals/features/properties/column_actions/model"
)

// Migration: satu langkah schema dengan id unik terurut.
// ID yang sudah tercatat di schema_migrations tidak dijalankan lagi.
type Migration struct {
	ID  string
	Run func(db *gorm.DB) error
}

type schemaMigration struct {
	ID        string    `gorm:"primaryKey;size:64"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Daftar migrasi. Selalu APPEND di akhir, jangan sisipkan di tengah.
var all = []Migration{
	{
		ID: "202601010001_core_tables",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&userModel.UserModel{},
				&authModel.TokenBlacklist{},
				&settingModel.SiteSettingModel{},
			)
		},
	},
	{
		ID: "202601010002_directory",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&agencyModel.AgencyModel{},
				&companyModel.CompanyModel{},
			)
		},
	},
	{
		ID: "202601010003_locations",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&cityModel.CityModel{},
				&cityDataModel.CityDataModel{},
			)
		},
	},
	{
		ID: "202601010004_property_lookups",
		Run: func(db *gorm.DB) error {
			if err := db.Table(lookupModel.TableBuildingStyles).AutoMigrate(&lookupModel.LookupModel{}); err != nil {
				return err
			}
			return db.Table(lookupModel.TableCommercialAmenities).AutoMigrate(&lookupModel.LookupModel{})
		},
	},
	{
		ID: "202601010005_column_actions",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(&caModel.ColumnActionModel{})
		},
	},
	{
		ID: "202601010006_content",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&noticeModel.NoticeModel{},
				&taskModel.TaskModel{},
				&commentModel.CommentModel{},
			)
		},
	},
	{
		ID: "202601010007_activity_logs",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(&logModel.ActivityLogModel{})
		},
	},
	{
		ID: "202601010008_uploads",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(&uploadModel.UploadModel{})
		},
	},
	{
		ID: "202601010009_payments",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(&payModel.PaymentModel{})
		},
	},
}

// Run menjalankan migrasi yang belum diterapkan, berurutan.
// Dipanggil sebelum serve; gagal = fatal di caller.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("siapkan schema_migrations: %w", err)
	}

	applied := map[string]bool{}
	var rows []schemaMigration
	if err := db.Find(&rows).Error; err != nil {
		return fmt.Errorf("baca schema_migrations: %w", err)
	}
	for _, r := range rows {
		applied[r.ID] = true
	}

	for _, m := range all {
		if applied[m.ID] {
			continue
		}
		log.Printf("[INFO] 🛠 migrasi %s ...", m.ID)
		if err := m.Run(db); err != nil {
			return fmt.Errorf("migrasi %s: %w", m.ID, err)
		}
		if err := db.Create(&schemaMigration{ID: m.ID}).Error; err != nil {
			return fmt.Errorf("catat migrasi %s: %w", m.ID, err)
		}
	}
	return nil
}
