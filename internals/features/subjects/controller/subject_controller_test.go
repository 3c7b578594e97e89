package controller_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	fieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/model"
	groupModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/model"
	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	userModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

type subjectFixture struct {
	school      schoolModel.SchoolModel
	coordinator userModel.UserModel
	group       groupModel.GroupModel
	field       fieldModel.FieldModel
}

func seedSubjectFixture(t *testing.T, db *gorm.DB) subjectFixture {
	t.Helper()

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	coordinator := userModel.UserModel{
		UserSchoolID: school.SchoolID, UserFirstName: "Dave", UserLastName: "Gray",
		UserEmail: "dave@school.com", UserPassword: "x",
		UserRole: constants.RoleCoordinator, UserStatus: constants.StatusActive,
	}
	require.NoError(t, db.Create(&coordinator).Error)

	group := groupModel.GroupModel{
		GroupSchoolID: school.SchoolID, GroupLevelID: uuid.New(),
		GroupCoordinatorID: coordinator.UserID,
		GroupName:          "group 001", GroupNumberStudents: 40,
	}
	require.NoError(t, db.Create(&group).Error)

	field := fieldModel.FieldModel{FieldSchoolID: school.SchoolID, FieldName: "mathematics"}
	require.NoError(t, db.Create(&field).Error)

	return subjectFixture{school: school, coordinator: coordinator, group: group, field: field}
}

func subjectBody(f subjectFixture) map[string]any {
	return map[string]any{
		"school_id":      f.school.SchoolID.String(),
		"coordinator_id": f.coordinator.UserID.String(),
		"group_id":       f.group.GroupID.String(),
		"field_id":       f.field.FieldID.String(),
		"name":           "mathematics 101",
		"sessionUnits":   30,
		"frequency":      2,
	}
}

func TestCreateSubject(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedSubjectFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/subjects", subjectBody(f))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Subject created successfully", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, "mathematics 101", payload["name"])
}

func TestCreateSubjectDuplicateName(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedSubjectFixture(t, db)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/subjects", subjectBody(f))
	require.Equal(t, http.StatusCreated, status)

	payload := subjectBody(f)
	payload["name"] = "MATHEMATICS 101"

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/subjects", payload)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "This subject name already exists", body["msg"])
}

func TestCreateSubjectUnknownGroup(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedSubjectFixture(t, db)

	payload := subjectBody(f)
	payload["group_id"] = uuid.NewString()

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/subjects", payload)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Please make sure the group exists", body["msg"])
}

func TestUpdateSubjectKeepOwnName(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedSubjectFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/subjects", subjectBody(f))
	require.Equal(t, http.StatusCreated, status)
	id := body["payload"].(map[string]any)["id"].(string)

	// a full replace keeping the same name must not trip the duplicate check
	status, body = testutil.DoJSON(t, app, http.MethodPut, "/api/v1/subjects/"+id, subjectBody(f))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Subject updated", body["msg"])
}
