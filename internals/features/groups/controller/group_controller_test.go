package controller_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	levelModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/model"
	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	userModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

type groupFixture struct {
	school      schoolModel.SchoolModel
	level       levelModel.LevelModel
	coordinator userModel.UserModel
}

func seedGroupFixture(t *testing.T, db *gorm.DB) groupFixture {
	t.Helper()

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	level := levelModel.LevelModel{
		LevelSchoolID: school.SchoolID, LevelScheduleID: uuid.New(), LevelName: "sixth grade",
	}
	require.NoError(t, db.Create(&level).Error)

	coordinator := userModel.UserModel{
		UserSchoolID: school.SchoolID, UserFirstName: "Dave", UserLastName: "Gray",
		UserEmail: "dave@school.com", UserPassword: "x",
		UserRole: constants.RoleCoordinator, UserStatus: constants.StatusActive,
	}
	require.NoError(t, db.Create(&coordinator).Error)

	return groupFixture{school: school, level: level, coordinator: coordinator}
}

func groupBody(f groupFixture, numberStudents int) map[string]any {
	return map[string]any{
		"school_id":      f.school.SchoolID.String(),
		"level_id":       f.level.LevelID.String(),
		"coordinator_id": f.coordinator.UserID.String(),
		"name":           "group 001",
		"numberStudents": numberStudents,
	}
}

func TestCreateGroup(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedGroupFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/groups", groupBody(f, 40))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Group created successfully", body["msg"])
}

func TestCreateGroupOverSchoolCap(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedGroupFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/groups", groupBody(f, 41))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t,
		"Please take into account that the maximum number of students per group is 40",
		body["msg"])
}

func TestCreateGroupInactiveCoordinator(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedGroupFixture(t, db)

	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("user_id = ?", f.coordinator.UserID).
		Update("user_status", constants.StatusInactive).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/groups", groupBody(f, 40))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please pass an active coordinator", body["msg"])
}

func TestCreateGroupUnknownLevel(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedGroupFixture(t, db)

	payload := groupBody(f, 40)
	payload["level_id"] = uuid.NewString()

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/groups", payload)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Please make sure the level exists", body["msg"])
}
