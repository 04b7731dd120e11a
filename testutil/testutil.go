// Package testutil wires the services over the in-memory store and creates fixtures for tests.
package testutil

import (
	"context"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/core/enrollment"
	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/core/organization"
	"github.com/trezcool/lmsadmin/core/role"
	"github.com/trezcool/lmsadmin/core/user"
	"github.com/trezcool/lmsadmin/storage/database/inmem"
)

const Password = "s3cure-enough"

type Services struct {
	DB          *inmemdb.DB
	Orgs        *organization.Service
	LMS         *lms.Service
	Users       *user.Service
	Courses     *course.Service
	Roles       *role.Service
	Enrollments *enrollment.Service
}

// NewServices returns every service backed by a fresh in-memory store.
func NewServices() *Services {
	db := inmemdb.Open()
	orgRepo := inmemdb.NewOrganizationRepository(db)
	lmsRepo := inmemdb.NewLMSRepository(db)
	usrRepo := inmemdb.NewUserRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)

	return &Services{
		DB:          db,
		Orgs:        organization.NewService(orgRepo),
		LMS:         lms.NewService(lmsRepo, orgRepo),
		Users:       user.NewService(usrRepo, orgRepo, bcrypt.MinCost),
		Courses:     course.NewService(courseRepo, lmsRepo, usrRepo),
		Roles:       role.NewService(inmemdb.NewRoleRepository(db), usrRepo, orgRepo, lmsRepo),
		Enrollments: enrollment.NewService(inmemdb.NewEnrollmentRepository(db), usrRepo, courseRepo),
	}
}

// NewValidator returns a validator with every custom rule registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)
	return validate, translator
}

func CreateOrganization(t *testing.T, svcs *Services, name string) organization.Organization {
	t.Helper()
	org, err := svcs.Orgs.Create(context.Background(), organization.NewOrganization{Name: name})
	if err != nil {
		t.Fatalf("CreateOrganization() failed: %v", err)
	}
	return org
}

func CreateLMS(t *testing.T, svcs *Services, orgID int64, name string) lms.LMS {
	t.Helper()
	l, err := svcs.LMS.Create(context.Background(), lms.NewLMS{OrganizationID: orgID, Name: name})
	if err != nil {
		t.Fatalf("CreateLMS() failed: %v", err)
	}
	return l
}

func CreateUser(t *testing.T, svcs *Services, orgID int64, name, email string) user.User {
	t.Helper()
	usr, err := svcs.Users.Create(context.Background(), user.NewUser{
		OrganizationID: orgID,
		Name:           name,
		Email:          email,
		Password:       Password,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(t *testing.T, svcs *Services, lmsID int64, slug string, duration ...float64) course.Course {
	t.Helper()
	nc := course.NewCourse{LMSID: lmsID, Title: slug, Slug: slug, Status: course.StatusDraft}
	if len(duration) > 0 {
		nc.DurationHours = null.Float64From(duration[0])
	}
	c, err := svcs.Courses.Create(context.Background(), nc)
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return c
}

func CreateModule(t *testing.T, svcs *Services, courseID int64, title string, order int) course.Module {
	t.Helper()
	m, err := svcs.Courses.CreateModule(context.Background(), course.NewModule{CourseID: courseID, Title: title, Order: &order})
	if err != nil {
		t.Fatalf("CreateModule() failed: %v", err)
	}
	return m
}

func CreateLesson(t *testing.T, svcs *Services, moduleID int64, title string, order int) course.Lesson {
	t.Helper()
	l, err := svcs.Courses.CreateLesson(context.Background(), course.NewLesson{
		ModuleID: moduleID,
		Title:    title,
		Type:     course.LessonTypeText,
		Order:    &order,
	})
	if err != nil {
		t.Fatalf("CreateLesson() failed: %v", err)
	}
	return l
}

func CreateEnrollment(t *testing.T, svcs *Services, userID, courseID int64) enrollment.Enrollment {
	t.Helper()
	e, err := svcs.Enrollments.Create(context.Background(), enrollment.NewEnrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   enrollment.StatusEnrolled,
	})
	if err != nil {
		t.Fatalf("CreateEnrollment() failed: %v", err)
	}
	return e
}

// IntPtr returns a pointer to i, for optional ordering fields.
func IntPtr(i int) *int {
	return &i
}
