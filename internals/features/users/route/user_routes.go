package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usersController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &usersController.UsersController{DB: db}
	g := r.Group("/users")
	g.Post("/", ctl.CreateUser)
	g.Get("/", ctl.ListUsers)
	g.Get("/:id", ctl.GetUser)
	g.Put("/:id", ctl.UpdateUser)
	g.Delete("/:id", ctl.DeleteUser)
}
