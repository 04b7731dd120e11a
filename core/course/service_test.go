package course_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/testutil"
)

func setup(t *testing.T) (*testutil.Services, int64) {
	svcs := testutil.NewServices()
	org := testutil.CreateOrganization(t, svcs, "Acme")
	l := testutil.CreateLMS(t, svcs, org.ID, "Academy")
	return svcs, l.ID
}

func TestService_Create(t *testing.T) {
	svcs, lmsID := setup(t)
	ctx := context.Background()

	c, err := svcs.Courses.Create(ctx, course.NewCourse{
		LMSID:         lmsID,
		Title:         "Intro to Go",
		Slug:          "intro-to-go",
		DurationHours: null.Float64From(12.5),
		Status:        course.StatusPublished,
	})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, 12.5, c.DurationHours.Float64)
	assert.Equal(t, course.StatusPublished, c.Status)

	got, err := svcs.Courses.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	t.Run("duplicate slug in lms", func(t *testing.T) {
		_, err := svcs.Courses.Create(ctx, course.NewCourse{LMSID: lmsID, Title: "Again", Slug: "intro-to-go", Status: course.StatusDraft})
		require.Error(t, err)
		assert.True(t, core.IsConstraintViolation(err))
	})

	t.Run("same slug in another lms", func(t *testing.T) {
		org := testutil.CreateOrganization(t, svcs, "Other")
		other := testutil.CreateLMS(t, svcs, org.ID, "Other Academy")
		_, err := svcs.Courses.Create(ctx, course.NewCourse{LMSID: other.ID, Title: "Intro", Slug: "intro-to-go", Status: course.StatusDraft})
		assert.NoError(t, err)
	})

	t.Run("unknown lms", func(t *testing.T) {
		_, err := svcs.Courses.Create(ctx, course.NewCourse{LMSID: 999, Title: "Lost", Slug: "lost", Status: course.StatusDraft})
		require.Error(t, err)
		assert.True(t, core.IsNotFound(err))
		assert.Contains(t, err.Error(), "lms with id 999 does not exist")
	})
}

func TestService_QueryByLMS(t *testing.T) {
	svcs, lmsID := setup(t)
	ctx := context.Background()

	courses, err := svcs.Courses.QueryByLMS(ctx, lmsID)
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)

	a := testutil.CreateCourse(t, svcs, lmsID, "a")
	b := testutil.CreateCourse(t, svcs, lmsID, "b", 3)

	courses, err = svcs.Courses.QueryByLMS(ctx, lmsID)
	require.NoError(t, err)
	assert.Equal(t, []course.Course{a, b}, courses)
}

func TestService_Modules(t *testing.T) {
	svcs, lmsID := setup(t)
	ctx := context.Background()
	c := testutil.CreateCourse(t, svcs, lmsID, "go")

	third := testutil.CreateModule(t, svcs, c.ID, "Third", 3)
	first := testutil.CreateModule(t, svcs, c.ID, "First", 1)
	second := testutil.CreateModule(t, svcs, c.ID, "Second", 2)

	modules, err := svcs.Courses.QueryModules(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []course.Module{first, second, third}, modules)

	_, err = svcs.Courses.CreateModule(ctx, course.NewModule{CourseID: c.ID, Title: "Dup", Order: testutil.IntPtr(2)})
	require.Error(t, err)
	assert.True(t, core.IsConstraintViolation(err))

	_, err = svcs.Courses.CreateModule(ctx, course.NewModule{CourseID: 999, Title: "Lost", Order: testutil.IntPtr(1)})
	assert.True(t, core.IsNotFound(err))

	modules, err = svcs.Courses.QueryModules(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestService_Lessons(t *testing.T) {
	svcs, lmsID := setup(t)
	ctx := context.Background()
	c := testutil.CreateCourse(t, svcs, lmsID, "go")
	m := testutil.CreateModule(t, svcs, c.ID, "Basics", 0)

	second := testutil.CreateLesson(t, svcs, m.ID, "Second", 2)
	first := testutil.CreateLesson(t, svcs, m.ID, "First", 1)

	lessons, err := svcs.Courses.QueryLessons(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []course.Lesson{first, second}, lessons)

	_, err = svcs.Courses.CreateLesson(ctx, course.NewLesson{ModuleID: m.ID, Title: "Dup", Type: course.LessonTypeQuiz, Order: testutil.IntPtr(1)})
	assert.True(t, core.IsConstraintViolation(err))

	_, err = svcs.Courses.CreateLesson(ctx, course.NewLesson{ModuleID: 999, Title: "Lost", Type: course.LessonTypeQuiz, Order: testutil.IntPtr(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module with id 999 does not exist")
}

func TestService_Instructors(t *testing.T) {
	svcs, lmsID := setup(t)
	ctx := context.Background()
	c := testutil.CreateCourse(t, svcs, lmsID, "go")
	l, err := svcs.LMS.GetByID(ctx, lmsID)
	require.NoError(t, err)
	usr := testutil.CreateUser(t, svcs, l.OrganizationID, "Grace", "grace@example.com")

	ins, err := svcs.Courses.AddInstructor(ctx, course.NewInstructor{CourseID: c.ID, UserID: usr.ID})
	require.NoError(t, err)
	assert.Equal(t, c.ID, ins.CourseID)

	_, err = svcs.Courses.AddInstructor(ctx, course.NewInstructor{CourseID: c.ID, UserID: usr.ID})
	assert.True(t, core.IsConstraintViolation(err))

	_, err = svcs.Courses.AddInstructor(ctx, course.NewInstructor{CourseID: c.ID, UserID: 999})
	assert.True(t, core.IsNotFound(err))

	list, err := svcs.Courses.QueryInstructors(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []course.Instructor{ins}, list)
}
