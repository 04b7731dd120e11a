package inmemdb

import (
	"context"
	"fmt"
	"time"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/enrollment"
)

type enrollmentRepository struct {
	db *DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.users[e.UserID]; !ok {
		return enrollment.Enrollment{}, foreignKeyViolation("enrollments", "enrollments_user_id_fkey")
	}
	if _, ok := repo.db.courses[e.CourseID]; !ok {
		return enrollment.Enrollment{}, foreignKeyViolation("enrollments", "enrollments_course_id_fkey")
	}
	for _, existing := range repo.db.enrollments {
		if existing.UserID == e.UserID && existing.CourseID == e.CourseID {
			return enrollment.Enrollment{}, uniqueViolation("enrollments_user_id_course_id_key")
		}
	}
	e.ID = repo.db.nextID("enrollments")
	repo.db.enrollments[e.ID] = e
	return e, nil
}

func (repo *enrollmentRepository) FindEnrollment(_ context.Context, userID, courseID int64) (enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, e := range repo.db.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return enrollment.Enrollment{}, core.NewNotFoundErrorBy("enrollment", "user_id and course_id", fmt.Sprintf("%d, %d", userID, courseID))
}

func (repo *enrollmentRepository) QueryEnrollmentsByUser(_ context.Context, userID int64) ([]enrollment.Enrollment, error) {
	return repo.queryEnrollments(func(e enrollment.Enrollment) bool { return e.UserID == userID }), nil
}

func (repo *enrollmentRepository) QueryEnrollmentsByCourse(_ context.Context, courseID int64) ([]enrollment.Enrollment, error) {
	return repo.queryEnrollments(func(e enrollment.Enrollment) bool { return e.CourseID == courseID }), nil
}

func (repo *enrollmentRepository) queryEnrollments(match func(enrollment.Enrollment) bool) []enrollment.Enrollment {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.enrollments, match, func(a, b enrollment.Enrollment) bool { return a.ID < b.ID })
}

func (repo *enrollmentRepository) UpdateEnrollment(_ context.Context, ue enrollment.UpdateEnrollment, now time.Time) (enrollment.Enrollment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	existing, ok := repo.db.enrollments[ue.ID]
	if !ok {
		return enrollment.Enrollment{}, core.NewNotFoundError("enrollment", ue.ID)
	}
	updated := ue.Apply(existing)
	updated.UpdatedAt = laterOf(now, existing.UpdatedAt)
	repo.db.enrollments[ue.ID] = updated
	return updated, nil
}
