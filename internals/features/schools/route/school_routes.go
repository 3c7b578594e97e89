package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolsController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/controller"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &schoolsController.SchoolsController{DB: db}
	g := r.Group("/schools")
	g.Post("/", ctl.CreateSchool)      // POST   /api/v1/schools
	g.Get("/", ctl.ListSchools)        // GET    /api/v1/schools
	g.Get("/:id", ctl.GetSchool)       // GET    /api/v1/schools/:id
	g.Put("/:id", ctl.UpdateSchool)    // PUT    /api/v1/schools/:id
	g.Delete("/:id", ctl.DeleteSchool) // DELETE /api/v1/schools/:id
}
