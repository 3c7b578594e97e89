package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	breaksController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/breaks/controller"
)

func BreakRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &breaksController.BreaksController{DB: db}
	g := r.Group("/breaks")
	g.Post("/", ctl.CreateBreak)
	g.Get("/", ctl.ListBreaks)
	g.Get("/:id", ctl.GetBreak)
	g.Put("/:id", ctl.UpdateBreak)
	g.Delete("/:id", ctl.DeleteBreak)
}
