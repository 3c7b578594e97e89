package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupCoordinatorsController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/group_coordinators/controller"
)

func GroupCoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &groupCoordinatorsController.GroupCoordinatorsController{DB: db}
	g := r.Group("/group_coordinators")
	g.Post("/", ctl.CreateGroupCoordinator)
	g.Get("/", ctl.ListGroupCoordinators)
	g.Get("/:id", ctl.GetGroupCoordinator)
	g.Put("/:id", ctl.UpdateGroupCoordinator)
	g.Delete("/:id", ctl.DeleteGroupCoordinator)
}
