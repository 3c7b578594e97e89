package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	breakRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/breaks/route"
	classRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/classes/route"
	fieldRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/route"
	groupCoordinatorRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/group_coordinators/route"
	groupRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/route"
	levelRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/route"
	scheduleRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/route"
	schoolRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/route"
	subjectRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/route"
	teacherFieldRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/route"
	teacherRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/route"
	userRoute "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/route"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

// SetupRoutes mounts every feature under /api/v1 plus the Prometheus
// scrape endpoint.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	schoolRoute.SchoolRoutes(api, db)
	userRoute.UserRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	fieldRoute.FieldRoutes(api, db)
	teacherFieldRoute.TeacherFieldRoutes(api, db)
	scheduleRoute.ScheduleRoutes(api, db)
	breakRoute.BreakRoutes(api, db)
	levelRoute.LevelRoutes(api, db)
	groupRoute.GroupRoutes(api, db)
	groupCoordinatorRoute.GroupCoordinatorRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
	classRoute.ClassRoutes(api, db)

	app.Get("/metrics", metrics.Handler())
}
