package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	userModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

func seedSchool(t *testing.T, db *gorm.DB) schoolModel.SchoolModel {
	t.Helper()
	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)
	return school
}

func userBody(schoolID string) map[string]any {
	return map[string]any{
		"school_id":       schoolID,
		"firstName":       "Jerome",
		"lastName":        "Vargas",
		"email":           "jerome@school.com",
		"password":        "12341234",
		"role":            constants.RoleCoordinator,
		"status":          constants.StatusActive,
		"hasTeachingFunc": true,
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedSchool(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/users",
		userBody(school.SchoolID.String()))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User created successfully", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, "jerome@school.com", payload["email"])
	_, leaked := payload["password"]
	assert.False(t, leaked, "password must never be serialized")

	var stored userModel.UserModel
	require.NoError(t, db.First(&stored, "user_school_id = ?", school.SchoolID).Error)
	assert.NotEqual(t, "12341234", stored.UserPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.UserPassword), []byte("12341234")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedSchool(t, db)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/users",
		userBody(school.SchoolID.String()))
	require.Equal(t, http.StatusCreated, status)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/users",
		userBody(school.SchoolID.String()))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Please try a different email address", body["msg"])
}

func TestCreateUserUnknownSchool(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/users",
		userBody("51e1a2d6-7f3a-4f93-9462-662dbe8a2c9c"))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Please make sure the school exists", body["msg"])
}

func TestCreateUserInvalidRole(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedSchool(t, db)

	payload := userBody(school.SchoolID.String())
	payload["role"] = "janitor"

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/users", payload)

	assert.Equal(t, http.StatusBadRequest, status)
	msgs := testutil.FieldErrorMsgs(t, body)
	require.Len(t, msgs, 1)
	assert.Equal(t, "the role provided is not a valid option", msgs[0])
}

func TestListUsersScopedToSchool(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	school := seedSchool(t, db)
	other := schoolModel.SchoolModel{SchoolName: "school 002", SchoolGroupMaxNumStudents: 35}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&userModel.UserModel{
		UserSchoolID: school.SchoolID, UserFirstName: "Jerome", UserLastName: "Vargas",
		UserEmail: "jerome@school.com", UserPassword: "x",
		UserRole: constants.RoleTeacher, UserStatus: constants.StatusActive,
	}).Error)

	status, body := testutil.DoJSON(t, app, http.MethodGet, "/api/v1/users",
		map[string]any{"school_id": other.SchoolID.String()})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No users were found", body["msg"])
}
