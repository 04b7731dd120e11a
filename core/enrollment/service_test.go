package enrollment_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/enrollment"
	"github.com/trezcool/lmsadmin/testutil"
)

type fixture struct {
	svcs     *testutil.Services
	userID   int64
	courseID int64
}

func setup(t *testing.T) fixture {
	svcs := testutil.NewServices()
	org := testutil.CreateOrganization(t, svcs, "Acme")
	l := testutil.CreateLMS(t, svcs, org.ID, "Academy")
	usr := testutil.CreateUser(t, svcs, org.ID, "Ada", "ada@example.com")
	c := testutil.CreateCourse(t, svcs, l.ID, "go")
	return fixture{svcs: svcs, userID: usr.ID, courseID: c.ID}
}

func statusPtr(s enrollment.Status) *enrollment.Status {
	return &s
}

func TestService_Create(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	e, err := f.svcs.Enrollments.Create(ctx, enrollment.NewEnrollment{UserID: f.userID, CourseID: f.courseID, Status: enrollment.StatusEnrolled})
	require.NoError(t, err)
	assert.Equal(t, enrollment.StatusEnrolled, e.Status)
	assert.False(t, e.EnrollmentDate.IsZero())
	assert.False(t, e.CompletionDate.Valid)

	_, err = f.svcs.Enrollments.Create(ctx, enrollment.NewEnrollment{UserID: f.userID, CourseID: f.courseID, Status: enrollment.StatusEnrolled})
	require.Error(t, err)
	assert.Equal(t, enrollment.ErrAlreadyEnrolled, errors.Cause(err))

	_, err = f.svcs.Enrollments.Create(ctx, enrollment.NewEnrollment{UserID: f.userID, CourseID: 999, Status: enrollment.StatusEnrolled})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course with id 999 does not exist")

	_, err = f.svcs.Enrollments.Create(ctx, enrollment.NewEnrollment{UserID: 999, CourseID: f.courseID, Status: enrollment.StatusEnrolled})
	assert.True(t, core.IsNotFound(err))
}

func TestService_Query(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	list, err := f.svcs.Enrollments.QueryByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	e := testutil.CreateEnrollment(t, f.svcs, f.userID, f.courseID)

	list, err = f.svcs.Enrollments.QueryByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, []enrollment.Enrollment{e}, list)

	list, err = f.svcs.Enrollments.QueryByCourse(ctx, f.courseID)
	require.NoError(t, err)
	assert.Equal(t, []enrollment.Enrollment{e}, list)

	list, err = f.svcs.Enrollments.QueryByCourse(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Query_unmatchedIDs(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	testutil.CreateEnrollment(t, f.svcs, f.userID, f.courseID)

	tests := []struct {
		name  string
		query func(ctx context.Context, id int64) ([]enrollment.Enrollment, error)
		id    int64
	}{
		{name: "by user: zero", query: f.svcs.Enrollments.QueryByUser, id: 0},
		{name: "by user: negative", query: f.svcs.Enrollments.QueryByUser, id: -1},
		{name: "by course: zero", query: f.svcs.Enrollments.QueryByCourse, id: 0},
		{name: "by course: negative", query: f.svcs.Enrollments.QueryByCourse, id: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := tt.query(ctx, tt.id)
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestService_Update(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e := testutil.CreateEnrollment(t, f.svcs, f.userID, f.courseID)
	completedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// status only: completion_date untouched
	updated, err := f.svcs.Enrollments.Update(ctx, enrollment.UpdateEnrollment{ID: e.ID, Status: statusPtr(enrollment.StatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, enrollment.StatusCompleted, updated.Status)
	assert.False(t, updated.CompletionDate.Valid)
	assert.True(t, updated.UpdatedAt.After(e.UpdatedAt))
	assert.Equal(t, e.EnrollmentDate, updated.EnrollmentDate)
	prev := updated

	// completion_date only: status untouched
	updated, err = f.svcs.Enrollments.Update(ctx, enrollment.UpdateEnrollment{
		ID:             e.ID,
		CompletionDate: core.OptionalTimeFrom(null.TimeFrom(completedAt)),
	})
	require.NoError(t, err)
	assert.Equal(t, enrollment.StatusCompleted, updated.Status)
	assert.True(t, updated.CompletionDate.Time.Equal(completedAt))
	assert.True(t, updated.UpdatedAt.After(prev.UpdatedAt))
	prev = updated

	// no fields: only updated_at moves
	updated, err = f.svcs.Enrollments.Update(ctx, enrollment.UpdateEnrollment{ID: e.ID})
	require.NoError(t, err)
	assert.True(t, updated.CompletionDate.Valid)
	assert.True(t, updated.UpdatedAt.After(prev.UpdatedAt))
	prev = updated

	// explicit null clears completion_date
	updated, err = f.svcs.Enrollments.Update(ctx, enrollment.UpdateEnrollment{ID: e.ID, CompletionDate: core.OptionalTimeFrom(null.Time{})})
	require.NoError(t, err)
	assert.False(t, updated.CompletionDate.Valid)
	assert.True(t, updated.UpdatedAt.After(prev.UpdatedAt))

	_, err = f.svcs.Enrollments.Update(ctx, enrollment.UpdateEnrollment{ID: 999, Status: statusPtr(enrollment.StatusDropped)})
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
	assert.Contains(t, err.Error(), "enrollment with id 999 does not exist")
}

func TestService_Update_partialWritesDoNotClobber(t *testing.T) {
	completedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		first, second  enrollment.UpdateEnrollment
		wantStatus     enrollment.Status
		wantCompletion bool
	}{
		{
			name:           "status then completion_date",
			first:          enrollment.UpdateEnrollment{Status: statusPtr(enrollment.StatusCompleted)},
			second:         enrollment.UpdateEnrollment{CompletionDate: core.OptionalTimeFrom(null.TimeFrom(completedAt))},
			wantStatus:     enrollment.StatusCompleted,
			wantCompletion: true,
		},
		{
			name:           "completion_date then status",
			first:          enrollment.UpdateEnrollment{CompletionDate: core.OptionalTimeFrom(null.TimeFrom(completedAt))},
			second:         enrollment.UpdateEnrollment{Status: statusPtr(enrollment.StatusDropped)},
			wantStatus:     enrollment.StatusDropped,
			wantCompletion: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			ctx := context.Background()
			e := testutil.CreateEnrollment(t, f.svcs, f.userID, f.courseID)

			tt.first.ID, tt.second.ID = e.ID, e.ID
			_, err := f.svcs.Enrollments.Update(ctx, tt.first)
			require.NoError(t, err)
			got, err := f.svcs.Enrollments.Update(ctx, tt.second)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCompletion, got.CompletionDate.Valid)
			if tt.wantCompletion {
				assert.True(t, got.CompletionDate.Time.Equal(completedAt))
			}
		})
	}
}

func TestUpdateEnrollment_Apply(t *testing.T) {
	completedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	base := enrollment.Enrollment{ID: 1, Status: enrollment.StatusEnrolled, CompletionDate: null.TimeFrom(completedAt)}

	tests := []struct {
		name string
		ue   enrollment.UpdateEnrollment
		want enrollment.Enrollment
	}{
		{name: "nothing set", ue: enrollment.UpdateEnrollment{ID: 1}, want: base},
		{
			name: "status only",
			ue:   enrollment.UpdateEnrollment{ID: 1, Status: statusPtr(enrollment.StatusDropped)},
			want: enrollment.Enrollment{ID: 1, Status: enrollment.StatusDropped, CompletionDate: null.TimeFrom(completedAt)},
		},
		{
			name: "explicit null completion_date",
			ue:   enrollment.UpdateEnrollment{ID: 1, CompletionDate: core.OptionalTimeFrom(null.Time{})},
			want: enrollment.Enrollment{ID: 1, Status: enrollment.StatusEnrolled},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ue.Apply(base))
		})
	}
}

func TestUpdateEnrollment_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	assert.NoError(t, (&enrollment.UpdateEnrollment{ID: 1}).Validate(validate))
	assert.NoError(t, (&enrollment.UpdateEnrollment{ID: 1, Status: statusPtr(enrollment.StatusDropped)}).Validate(validate))
	assert.Error(t, (&enrollment.UpdateEnrollment{ID: 1, Status: statusPtr("paused")}).Validate(validate))
	assert.Error(t, (&enrollment.UpdateEnrollment{}).Validate(validate))

	ne := enrollment.NewEnrollment{UserID: 1, CourseID: 1}
	require.NoError(t, ne.Validate(validate))
	assert.Equal(t, enrollment.StatusEnrolled, ne.Status)
}
