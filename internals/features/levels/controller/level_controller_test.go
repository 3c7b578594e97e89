package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	scheduleModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/model"
	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

type levelFixture struct {
	school   schoolModel.SchoolModel
	schedule scheduleModel.ScheduleModel
}

func seedLevelFixture(t *testing.T, db *gorm.DB) levelFixture {
	t.Helper()

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	schedule := scheduleModel.ScheduleModel{
		ScheduleSchoolID:           school.SchoolID,
		ScheduleName:               "morning shift",
		ScheduleDayStart:           420,
		ScheduleShiftNumberMinutes: 360,
		ScheduleClassUnitMinutes:   45,
		ScheduleMonday:             true,
		ScheduleTuesday:            true,
		ScheduleWednesday:          true,
		ScheduleThursday:           true,
		ScheduleFriday:             true,
	}
	require.NoError(t, db.Create(&schedule).Error)

	return levelFixture{school: school, schedule: schedule}
}

func levelBody(f levelFixture) map[string]any {
	return map[string]any{
		"school_id":   f.school.SchoolID.String(),
		"schedule_id": f.schedule.ScheduleID.String(),
		"name":        "sixth grade",
	}
}

func TestCreateLevel(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedLevelFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/levels", levelBody(f))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Level created successfully", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, "sixth grade", payload["name"])
	assert.Equal(t, f.schedule.ScheduleID.String(), payload["schedule_id"])
}

func TestCreateLevelDuplicateName(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedLevelFixture(t, db)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/levels", levelBody(f))
	require.Equal(t, http.StatusCreated, status)

	payload := levelBody(f)
	payload["name"] = "Sixth Grade"

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/levels", payload)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "This level name already exists", body["msg"])
}

func TestCreateLevelScheduleFromOtherSchool(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedLevelFixture(t, db)

	other := schoolModel.SchoolModel{SchoolName: "school 002", SchoolGroupMaxNumStudents: 35}
	require.NoError(t, db.Create(&other).Error)

	payload := levelBody(f)
	payload["school_id"] = other.SchoolID.String()

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/levels", payload)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please make sure the schedule belongs to the school", body["msg"])
}

func TestDeleteLevel(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedLevelFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/levels", levelBody(f))
	require.Equal(t, http.StatusCreated, status)
	id := body["payload"].(map[string]any)["id"].(string)

	status, body = testutil.DoJSON(t, app, http.MethodDelete, "/api/v1/levels/"+id,
		map[string]any{"school_id": f.school.SchoolID.String()})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Level deleted", body["msg"])

	status, body = testutil.DoJSON(t, app, http.MethodDelete, "/api/v1/levels/"+id,
		map[string]any{"school_id": f.school.SchoolID.String()})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Level not deleted", body["msg"])
}
