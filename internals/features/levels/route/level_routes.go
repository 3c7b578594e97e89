package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelsController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/controller"
)

func LevelRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &levelsController.LevelsController{DB: db}
	g := r.Group("/levels")
	g.Post("/", ctl.CreateLevel)
	g.Get("/", ctl.ListLevels)
	g.Get("/:id", ctl.GetLevel)
	g.Put("/:id", ctl.UpdateLevel)
	g.Delete("/:id", ctl.DeleteLevel)
}
