package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupCtl "realestate_backend/internals/features/properties/lookups/controller"
	lookupModel "realestate_backend/internals/features/properties/lookups/model"
)

func mountLookupPublic(r fiber.Router, ctl *lookupCtl.LookupController, prefix string) {
	g := r.Group(prefix)
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func mountLookupAdmin(r fiber.Router, ctl *lookupCtl.LookupController, prefix string) {
	g := r.Group(prefix)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// LookupPublicRoutes: list/get untuk semua lookup properti.
func LookupPublicRoutes(r fiber.Router, db *gorm.DB) {
	mountLookupPublic(r, lookupCtl.NewLookupController(db, lookupModel.TableBuildingStyles, "building style"), "/building-styles")
	mountLookupPublic(r, lookupCtl.NewLookupController(db, lookupModel.TableCommercialAmenities, "commercial amenity"), "/commercial-amenities")
}

// LookupAdminRoutes: mutasi lookup, khusus admin.
func LookupAdminRoutes(r fiber.Router, db *gorm.DB) {
	mountLookupAdmin(r, lookupCtl.NewLookupController(db, lookupModel.TableBuildingStyles, "building style"), "/building-styles")
	mountLookupAdmin(r, lookupCtl.NewLookupController(db, lookupModel.TableCommercialAmenities, "commercial amenity"), "/commercial-amenities")
}
