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
	subjectModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/model"
	teacherFieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/model"
	teacherModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/model"
	userModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/testutil"
)

// classFixture seeds the full chain a class depends on: a subject taught in a
// group, a teacher assigned the subject's field, both under one coordinator.
type classFixture struct {
	school       schoolModel.SchoolModel
	coordinator  userModel.UserModel
	teacher      teacherModel.TeacherModel
	field        fieldModel.FieldModel
	teacherField teacherFieldModel.TeacherFieldModel
	subject      subjectModel.SubjectModel
}

func seedClassFixture(t *testing.T, db *gorm.DB) classFixture {
	t.Helper()

	school := schoolModel.SchoolModel{SchoolName: "school 001", SchoolGroupMaxNumStudents: 40}
	require.NoError(t, db.Create(&school).Error)

	coordinator := userModel.UserModel{
		UserSchoolID: school.SchoolID, UserFirstName: "Dave", UserLastName: "Gray",
		UserEmail: "dave@school.com", UserPassword: "x",
		UserRole: constants.RoleCoordinator, UserStatus: constants.StatusActive,
	}
	require.NoError(t, db.Create(&coordinator).Error)

	teachingUser := userModel.UserModel{
		UserSchoolID: school.SchoolID, UserFirstName: "Jerome", UserLastName: "Vargas",
		UserEmail: "jerome@school.com", UserPassword: "x",
		UserRole: constants.RoleTeacher, UserStatus: constants.StatusActive,
		UserHasTeachingFunc: true,
	}
	require.NoError(t, db.Create(&teachingUser).Error)

	teacher := teacherModel.TeacherModel{
		TeacherSchoolID: school.SchoolID, TeacherCoordinatorID: coordinator.UserID,
		TeacherUserID: teachingUser.UserID, TeacherContractType: constants.ContractFullTime,
		TeacherTeachingHoursAssignable: 35, TeacherTeachingHoursAssigned: 10,
		TeacherAdminHoursAssignable: 35, TeacherAdminHoursAssigned: 10,
		TeacherMonday: true, TeacherTuesday: true, TeacherWednesday: true,
		TeacherThursday: true, TeacherFriday: true,
	}
	require.NoError(t, db.Create(&teacher).Error)

	field := fieldModel.FieldModel{FieldSchoolID: school.SchoolID, FieldName: "mathematics"}
	require.NoError(t, db.Create(&field).Error)

	teacherField := teacherFieldModel.TeacherFieldModel{
		TeacherFieldSchoolID: school.SchoolID,
		TeacherFieldTeacherID: teacher.TeacherID, TeacherFieldFieldID: field.FieldID,
	}
	require.NoError(t, db.Create(&teacherField).Error)

	group := groupModel.GroupModel{
		GroupSchoolID: school.SchoolID, GroupLevelID: uuid.New(),
		GroupCoordinatorID: coordinator.UserID,
		GroupName:          "group 001", GroupNumberStudents: 40,
	}
	require.NoError(t, db.Create(&group).Error)

	subject := subjectModel.SubjectModel{
		SubjectSchoolID: school.SchoolID, SubjectCoordinatorID: coordinator.UserID,
		SubjectGroupID: group.GroupID, SubjectFieldID: field.FieldID,
		SubjectName: "mathematics 101", SubjectSessionUnits: 30, SubjectFrequency: 2,
	}
	require.NoError(t, db.Create(&subject).Error)

	return classFixture{
		school: school, coordinator: coordinator, teacher: teacher,
		field: field, teacherField: teacherField, subject: subject,
	}
}

func classBody(f classFixture) map[string]any {
	return map[string]any{
		"school_id":           f.school.SchoolID.String(),
		"coordinator_id":      f.coordinator.UserID.String(),
		"subject_id":          f.subject.SubjectID.String(),
		"teacherField_id":     f.teacherField.TeacherFieldID.String(),
		"startTime":           420,
		"groupScheduleSlot":   2,
		"teacherScheduleSlot": 2,
	}
}

func TestCreateClass(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedClassFixture(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/classes", classBody(f))

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Class created successfully", body["msg"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, f.subject.SubjectID.String(), payload["subject_id"])
	assert.Equal(t, f.teacherField.TeacherFieldID.String(), payload["teacherField_id"])
}

func TestCreateClassCoordinatorMismatch(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedClassFixture(t, db)

	other := userModel.UserModel{
		UserSchoolID: f.school.SchoolID, UserFirstName: "Anna", UserLastName: "Smith",
		UserEmail: "anna@school.com", UserPassword: "x",
		UserRole: constants.RoleCoordinator, UserStatus: constants.StatusActive,
	}
	require.NoError(t, db.Create(&other).Error)

	payload := classBody(f)
	payload["coordinator_id"] = other.UserID.String()

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/classes", payload)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t,
		"Please make sure the coordinator is the same in the subject and in the class",
		body["msg"])
}

func TestCreateClassFieldMismatch(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedClassFixture(t, db)

	otherField := fieldModel.FieldModel{FieldSchoolID: f.school.SchoolID, FieldName: "chemistry"}
	require.NoError(t, db.Create(&otherField).Error)
	require.NoError(t, db.Model(&teacherFieldModel.TeacherFieldModel{}).
		Where("teacher_field_id = ?", f.teacherField.TeacherFieldID).
		Update("teacher_field_field_id", otherField.FieldID).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/classes", classBody(f))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t,
		"Please make sure the field assigned to the teacher is the same in the subject",
		body["msg"])
}

func TestCreateClassTeacherNotUnderCoordinator(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedClassFixture(t, db)

	require.NoError(t, db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", f.teacher.TeacherID).
		Update("teacher_coordinator_id", uuid.New()).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/classes", classBody(f))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t,
		"Please make sure the teacher has been assigned to the coordinator being passed",
		body["msg"])
}

func TestCreateClassUnknownSubject(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(db)
	f := seedClassFixture(t, db)

	payload := classBody(f)
	payload["subject_id"] = uuid.NewString()

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/api/v1/classes", payload)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Please make sure the subject exists", body["msg"])
}
