package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teachersController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/controller"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &teachersController.TeachersController{DB: db}
	g := r.Group("/teachers")
	g.Post("/", ctl.CreateTeacher)
	g.Get("/", ctl.ListTeachers)
	g.Get("/:id", ctl.GetTeacher)
	g.Put("/:id", ctl.UpdateTeacher)
	g.Delete("/:id", ctl.DeleteTeacher)
}
