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

func seedSchedule(t *testing.T, db *gorm.DB, dayStart int) (schoolModel.SchoolModel, scheduleModel.ScheduleModel) {
	t.Helper()

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	schedule := scheduleModel.ScheduleModel{
		ScheduleSchoolID:           school.SchoolID,
		ScheduleName:               "morning shift",
		ScheduleDayStart:           dayStart,
		ScheduleShiftNumberMinutes: 360,
		ScheduleClassUnitMinutes:   45,
		ScheduleMonday:             true,
		ScheduleTuesday:            true,
		ScheduleWednesday:          true,
		ScheduleThursday:           true,
		ScheduleFriday:             true,
	}
	require.NoError(t, db.Create(&schedule).Error)
	return school, schedule
}

func TestCreateBreak(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school, schedule := seedSchedule(t, db, 420)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/breaks", map[string]any{
		"school_id":     school.SchoolID.String(),
		"schedule_id":   schedule.ScheduleID.String(),
		"breakStart":    600,
		"numberMinutes": 30,
	})

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Break created successfully", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, float64(600), payload["breakStart"])
}

func TestCreateBreakStartPastMidnight(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school, schedule := seedSchedule(t, db, 420)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/breaks", map[string]any{
		"school_id":     school.SchoolID.String(),
		"schedule_id":   schedule.ScheduleID.String(),
		"breakStart":    1440,
		"numberMinutes": 30,
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "The school shift start must exceed 11:59 p.m.", body["msg"])
}

func TestCreateBreakBeforeScheduleStart(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school, schedule := seedSchedule(t, db, 420)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/breaks", map[string]any{
		"school_id":     school.SchoolID.String(),
		"schedule_id":   schedule.ScheduleID.String(),
		"breakStart":    419,
		"numberMinutes": 30,
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t,
		"Please take into account that the break start time cannot be earlier than the schedule start time",
		body["msg"])
}

func TestCreateBreakScheduleFromOtherSchool(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	_, schedule := seedSchedule(t, db, 420)

	other := schoolModel.SchoolModel{SchoolName: "school 002", SchoolGroupMaxNumStudents: 35}
	require.NoError(t, db.Create(&other).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/breaks", map[string]any{
		"school_id":     other.SchoolID.String(),
		"schedule_id":   schedule.ScheduleID.String(),
		"breakStart":    600,
		"numberMinutes": 30,
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please make sure the schedule belongs to the school", body["msg"])
}
