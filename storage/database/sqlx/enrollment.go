package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/enrollment"
)

const enrollmentColumns = "id, user_id, course_id, status, enrollment_date, completion_date, created_at, updated_at"

type enrollmentRepository struct {
	exec core.DBExecutor
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(exec core.DBExecutor) *enrollmentRepository {
	return &enrollmentRepository{exec: exec}
}

func (repo enrollmentRepository) CreateEnrollment(ctx context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	var created enrollment.Enrollment
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO enrollments (user_id, course_id, status, enrollment_date, completion_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+enrollmentColumns,
		e.UserID, e.CourseID, e.Status, e.EnrollmentDate, e.CompletionDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return enrollment.Enrollment{}, errors.Wrap(trapConstraintErr(err), "inserting enrollment")
	}
	return created, nil
}

func (repo enrollmentRepository) FindEnrollment(ctx context.Context, userID, courseID int64) (enrollment.Enrollment, error) {
	var e enrollment.Enrollment
	q := "SELECT " + enrollmentColumns + " FROM enrollments WHERE user_id = $1 AND course_id = $2"
	if err := repo.exec.GetContext(ctx, &e, q, userID, courseID); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			err = core.NewNotFoundErrorBy("enrollment", "user_id and course_id", fmt.Sprintf("%d, %d", userID, courseID))
		}
		return enrollment.Enrollment{}, errors.Wrap(err, "selecting enrollment")
	}
	return e, nil
}

func (repo enrollmentRepository) QueryEnrollmentsByUser(ctx context.Context, userID int64) ([]enrollment.Enrollment, error) {
	return repo.queryEnrollments(ctx, "user_id = $1", userID)
}

func (repo enrollmentRepository) QueryEnrollmentsByCourse(ctx context.Context, courseID int64) ([]enrollment.Enrollment, error) {
	return repo.queryEnrollments(ctx, "course_id = $1", courseID)
}

func (repo enrollmentRepository) queryEnrollments(ctx context.Context, where string, args ...interface{}) ([]enrollment.Enrollment, error) {
	q := "SELECT " + enrollmentColumns + " FROM enrollments WHERE " + where + orderBy(byID)
	list := make([]enrollment.Enrollment, 0)
	if err := repo.exec.SelectContext(ctx, &list, q, args...); err != nil {
		return nil, errors.Wrap(err, "selecting enrollments")
	}
	return list, nil
}

// UpdateEnrollment only writes the provided fields so concurrent partial updates do not clobber each other.
// updated_at never goes backwards, even when two updates race.
func (repo enrollmentRepository) UpdateEnrollment(ctx context.Context, ue enrollment.UpdateEnrollment, now time.Time) (enrollment.Enrollment, error) {
	var updated enrollment.Enrollment
	err := repo.exec.GetContext(ctx, &updated,
		`UPDATE enrollments
		SET status = COALESCE($1::text, status),
			completion_date = CASE WHEN $2::boolean THEN $3::timestamptz ELSE completion_date END,
			updated_at = GREATEST($4, updated_at + interval '1 microsecond')
		WHERE id = $5
		RETURNING `+enrollmentColumns,
		ue.Status, ue.CompletionDate.Set, ue.CompletionDate.Value, now, ue.ID,
	)
	if err != nil {
		return enrollment.Enrollment{}, errors.Wrap(trapConstraintErr(trapNoRowsErr(err, "enrollment", ue.ID)), "updating enrollment")
	}
	return updated, nil
}
