package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldsController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/controller"
)

func FieldRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &fieldsController.FieldsController{DB: db}
	g := r.Group("/fields")
	g.Post("/", ctl.CreateField)
	g.Get("/", ctl.ListFields)
	g.Get("/:id", ctl.GetField)
	g.Put("/:id", ctl.UpdateField)
	g.Delete("/:id", ctl.DeleteField)
}
