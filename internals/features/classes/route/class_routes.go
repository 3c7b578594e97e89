package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classesController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &classesController.ClassesController{DB: db}
	g := r.Group("/classes")
	g.Post("/", ctl.CreateClass)
	g.Get("/", ctl.ListClasses)
	g.Get("/:id", ctl.GetClass)
	g.Put("/:id", ctl.UpdateClass)
	g.Delete("/:id", ctl.DeleteClass)
}
