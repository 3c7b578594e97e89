package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherFieldsController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/controller"
)

func TeacherFieldRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &teacherFieldsController.TeacherFieldsController{DB: db}
	g := r.Group("/teacher_fields")
	g.Post("/", ctl.CreateTeacherField)
	g.Get("/", ctl.ListTeacherFields)
	g.Get("/:id", ctl.GetTeacherField)
	g.Put("/:id", ctl.UpdateTeacherField)
	g.Delete("/:id", ctl.DeleteTeacherField)
}
