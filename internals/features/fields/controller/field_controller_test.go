package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

func seedFieldSchool(t *testing.T, db *gorm.DB) schoolModel.SchoolModel {
	t.Helper()
	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)
	return school
}

func fieldBody(schoolID, name string) map[string]any {
	return map[string]any{
		"school_id": schoolID,
		"name":      name,
	}
}

func TestCreateField(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedFieldSchool(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/fields",
		fieldBody(school.SchoolID.String(), "mathematics"))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Field created successfully", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, "mathematics", payload["name"])
}

func TestCreateFieldDuplicateName(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedFieldSchool(t, db)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/fields",
		fieldBody(school.SchoolID.String(), "mathematics"))
	require.Equal(t, http.StatusCreated, status)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/fields",
		fieldBody(school.SchoolID.String(), "MATHEMATICS"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "This field name already exists", body["msg"])
}

func TestCreateFieldSameNameOtherSchool(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedFieldSchool(t, db)
	other := schoolModel.SchoolModel{SchoolName: "school 002", SchoolGroupMaxNumStudents: 35}
	require.NoError(t, db.Create(&other).Error)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/fields",
		fieldBody(school.SchoolID.String(), "mathematics"))
	require.Equal(t, http.StatusCreated, status)

	// uniqueness is per school, not global
	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/fields",
		fieldBody(other.SchoolID.String(), "mathematics"))
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Field created successfully", body["msg"])
}

func TestCreateFieldUnknownSchool(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/fields",
		fieldBody("51e1a2d6-7f3a-4f93-9462-662dbe8a2c9c", "mathematics"))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Please make sure the school exists", body["msg"])
}

func TestUpdateFieldKeepOwnName(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedFieldSchool(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/fields",
		fieldBody(school.SchoolID.String(), "mathematics"))
	require.Equal(t, http.StatusCreated, status)
	id := body["payload"].(map[string]any)["id"].(string)

	// a full replace keeping the same name must not trip the duplicate check
	status, body = testutil.DoJSON(t, app, http.MethodPut, "/api/v1/fields/"+id,
		fieldBody(school.SchoolID.String(), "mathematics"))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Field updated", body["msg"])
}
