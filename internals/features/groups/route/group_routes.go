package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupsController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/controller"
)

func GroupRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &groupsController.GroupsController{DB: db}
	g := r.Group("/groups")
	g.Post("/", ctl.CreateGroup)
	g.Get("/", ctl.ListGroups)
	g.Get("/:id", ctl.GetGroup)
	g.Put("/:id", ctl.UpdateGroup)
	g.Delete("/:id", ctl.DeleteGroup)
}
