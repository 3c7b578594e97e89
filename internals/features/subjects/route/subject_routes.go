package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectsController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/controller"
)

func SubjectRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &subjectsController.SubjectsController{DB: db}
	g := r.Group("/subjects")
	g.Post("/", ctl.CreateSubject)
	g.Get("/", ctl.ListSubjects)
	g.Get("/:id", ctl.GetSubject)
	g.Put("/:id", ctl.UpdateSubject)
	g.Delete("/:id", ctl.DeleteSubject)
}
