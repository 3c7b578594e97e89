// Package testutil wires an in-memory database and a fully routed app for
// handler tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	breakModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/breaks/model"
	classModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/classes/model"
	fieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/model"
	groupCoordinatorModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/group_coordinators/model"
	groupModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/model"
	levelModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/model"
	scheduleModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/model"
	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	subjectModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/model"
	teacherFieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/model"
	teacherModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/model"
	userModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	routes "github.com/JeromeVargas/schedule-maker-sub004/internals/route"
)

// NewDB opens a private in-memory database and migrates the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&fieldModel.FieldModel{},
		&teacherFieldModel.TeacherFieldModel{},
		&scheduleModel.ScheduleModel{},
		&breakModel.BreakModel{},
		&levelModel.LevelModel{},
		&groupModel.GroupModel{},
		&groupCoordinatorModel.GroupCoordinatorModel{},
		&subjectModel.SubjectModel{},
		&classModel.ClassModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewApp mounts the full route tree on a throwaway app.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	routes.SetupRoutes(app, db)
	return app
}
