package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedulesController "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/controller"
)

func ScheduleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &schedulesController.SchedulesController{DB: db}
	g := r.Group("/schedules")
	g.Post("/", ctl.CreateSchedule)
	g.Get("/", ctl.ListSchedules)
	g.Get("/:id", ctl.GetSchedule)
	g.Put("/:id", ctl.UpdateSchedule)
	g.Delete("/:id", ctl.DeleteSchedule)
}
