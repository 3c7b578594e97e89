package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

func scheduleBody(schoolID string, dayStart int) map[string]any {
	return map[string]any{
		"school_id":          schoolID,
		"name":               "morning shift",
		"dayStart":           dayStart,
		"shiftNumberMinutes": 360,
		"classUnitMinutes":   45,
		"monday":             true,
		"tuesday":            true,
		"wednesday":          true,
		"thursday":           true,
		"friday":             true,
	}
}

func TestCreateSchedule(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/schedules",
		scheduleBody(school.SchoolID.String(), 420))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Schedule created successfully", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, float64(420), payload["dayStart"])
}

func TestCreateScheduleDayStartPastMidnight(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/schedules",
		scheduleBody(school.SchoolID.String(), 1440))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "The school shift start must exceed 11:59 p.m.", body["msg"])
}

func TestCreateScheduleDuplicateName(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/schedules",
		scheduleBody(school.SchoolID.String(), 420))
	require.Equal(t, http.StatusCreated, status)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/schedules",
		scheduleBody(school.SchoolID.String(), 420))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "This schedule name already exists", body["msg"])
}
