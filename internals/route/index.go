package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logRoute "realestate_backend/internals/features/activity/activity_logs/route"
	commentRoute "realestate_backend/internals/features/content/comments/route"
	noticeRoute "realestate_backend/internals/features/content/notices/route"
	taskRoute "realestate_backend/internals/features/content/tasks/route"
	agencyRoute "realestate_backend/internals/features/directory/agencies/route"
	companyRoute "realestate_backend/internals/features/directory/companies/route"
	cityRoute "realestate_backend/internals/features/locations/cities/route"
	cityDataRoute "realestate_backend/internals/features/locations/cities_data/route"
	payRoute "realestate_backend/internals/features/payments/route"
	caRoute "realestate_backend/internals/features/properties/column_actions/route"
	lookupRoute "realestate_backend/internals/features/properties/lookups/route"
	setRoute "realestate_backend/internals/features/settings/site_settings/route"
	setService "realestate_backend/internals/features/settings/site_settings/service"
	uploadRoute "realestate_backend/internals/features/uploads/route"
	authRoute "realestate_backend/internals/features/users/auth/route"
	userRoute "realestate_backend/internals/features/users/user/route"

	"realestate_backend/internals/constants"
	authMw "realestate_backend/internals/middlewares/auth"
	middlewares "realestate_backend/internals/middlewares"
)

// SetupRoutes merakit seluruh surface HTTP:
//   /api/public — tanpa auth
//   /api/u      — butuh login
//   /api/a      — login + role admin/owner
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	settingSvc := setService.NewSettingService(db)

	BaseRoutes(app, db)

	// Gate maintenance duluan supaya 503 keluar sebelum auth;
	// tracker setelahnya supaya hanya request yang lolos yang dicatat.
	app.Use(middlewares.MaintenanceGate(settingSvc))
	app.Use(middlewares.ActivityTracker(db))

	// /api/auth + webhook gateway (dua-duanya di luar guard)
	authRoute.AuthRoutes(app, db)
	payRoute.PaymentNotificationRoutes(app, db)

	api := app.Group("/api")

	// ===== Publik =====
	public := api.Group("/public")
	agencyRoute.AgencyPublicRoutes(public, db)
	companyRoute.CompanyPublicRoutes(public, db)
	lookupRoute.LookupPublicRoutes(public, db)
	cityRoute.CityPublicRoutes(public, db)
	cityDataRoute.CityDataPublicRoutes(public, db)
	noticeRoute.NoticePublicRoutes(public, db)
	setRoute.SiteSettingPublicRoutes(public, db, settingSvc)

	// ===== User login =====
	user := api.Group("/u", authMw.AuthMiddleware(db))
	commentRoute.CommentUserRoutes(user, db)
	taskRoute.TaskUserRoutes(user, db)
	uploadRoute.UploadUserRoutes(user, db)
	caRoute.ColumnActionUserRoutes(user, db)

	// ===== Admin =====
	admin := api.Group("/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("back-office"), constants.AdminOnly...),
	)
	agencyRoute.AgencyAdminRoutes(admin, db)
	companyRoute.CompanyAdminRoutes(admin, db)
	lookupRoute.LookupAdminRoutes(admin, db)
	caRoute.ColumnActionAdminRoutes(admin, db)
	cityRoute.CityAdminRoutes(admin, db)
	cityDataRoute.CityDataAdminRoutes(admin, db)
	noticeRoute.NoticeAdminRoutes(admin, db)
	taskRoute.TaskAdminRoutes(admin, db)
	commentRoute.CommentAdminRoutes(admin, db)
	logRoute.ActivityLogAdminRoutes(admin, db)
	uploadRoute.UploadAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	payRoute.PaymentAdminRoutes(admin, db)
	setRoute.SiteSettingAdminRoutes(admin, db, settingSvc)
}
