package controller_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	groupModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/model"
	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	userModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

type assignmentFixture struct {
	school      schoolModel.SchoolModel
	group       groupModel.GroupModel
	coordinator userModel.UserModel
}

func seedAssignmentFixture(t *testing.T, db *gorm.DB) assignmentFixture {
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

	return assignmentFixture{school: school, group: group, coordinator: coordinator}
}

func assignmentBody(f assignmentFixture) map[string]any {
	return map[string]any{
		"school_id":      f.school.SchoolID.String(),
		"group_id":       f.group.GroupID.String(),
		"coordinator_id": f.coordinator.UserID.String(),
	}
}

func TestAssignCoordinatorToGroup(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedAssignmentFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/group_coordinators",
		assignmentBody(f))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Coordinator has been successfully assigned the to group", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, f.group.GroupID.String(), payload["group_id"])
	assert.Equal(t, f.coordinator.UserID.String(), payload["coordinator_id"])
}

func TestAssignCoordinatorTwice(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedAssignmentFixture(t, db)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/group_coordinators",
		assignmentBody(f))
	require.Equal(t, http.StatusCreated, status)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/group_coordinators",
		assignmentBody(f))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "This coordinator has already been assigned to this group", body["msg"])
}

func TestAssignCoordinatorUnknownGroup(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedAssignmentFixture(t, db)

	payload := assignmentBody(f)
	payload["group_id"] = uuid.NewString()

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/group_coordinators", payload)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Please make sure the group exists", body["msg"])
}

func TestDeleteAssignment(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedAssignmentFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/group_coordinators",
		assignmentBody(f))
	require.Equal(t, http.StatusCreated, status)
	id := body["payload"].(map[string]any)["id"].(string)

	status, body = testutil.DoJSON(t, app, http.MethodDelete, "/api/v1/group_coordinators/"+id,
		map[string]any{"school_id": f.school.SchoolID.String()})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Group coordinator deleted", body["msg"])

	status, body = testutil.DoJSON(t, app, http.MethodDelete, "/api/v1/group_coordinators/"+id,
		map[string]any{"school_id": f.school.SchoolID.String()})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Group coordinator not deleted", body["msg"])
}
