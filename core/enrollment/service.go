package enrollment

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/core/user"
)

var ErrAlreadyEnrolled = core.NewConflictError("user is already enrolled in this course")

type (
	Repository interface {
		CreateEnrollment(ctx context.Context, e Enrollment) (Enrollment, error)
		// FindEnrollment returns the enrollment of a user in a course, or a *core.NotFoundError.
		FindEnrollment(ctx context.Context, userID, courseID int64) (Enrollment, error)
		QueryEnrollmentsByUser(ctx context.Context, userID int64) ([]Enrollment, error)
		QueryEnrollmentsByCourse(ctx context.Context, courseID int64) ([]Enrollment, error)
		// UpdateEnrollment writes only the fields set on `ue` and moves updated_at to at least `now`,
		// strictly after its previous value.
		UpdateEnrollment(ctx context.Context, ue UpdateEnrollment, now time.Time) (Enrollment, error)
	}

	Service struct {
		repo    Repository
		users   user.Finder
		courses course.Finder
	}
)

func NewService(repo Repository, users user.Finder, courses course.Finder) *Service {
	return &Service{repo: repo, users: users, courses: courses}
}

func (svc *Service) Create(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	if _, err := svc.users.GetUser(ctx, ne.UserID); err != nil {
		return Enrollment{}, errors.Wrap(err, "checking user")
	}
	if _, err := svc.courses.GetCourse(ctx, ne.CourseID); err != nil {
		return Enrollment{}, errors.Wrap(err, "checking course")
	}

	// friendlier than the unique constraint, which still guards concurrent requests
	_, err := svc.repo.FindEnrollment(ctx, ne.UserID, ne.CourseID)
	switch {
	case err == nil:
		return Enrollment{}, ErrAlreadyEnrolled
	case !core.IsNotFound(err):
		return Enrollment{}, errors.Wrap(err, "checking enrollment")
	}

	now := core.Now()
	e, err := svc.repo.CreateEnrollment(ctx, Enrollment{
		UserID:         ne.UserID,
		CourseID:       ne.CourseID,
		Status:         ne.Status,
		EnrollmentDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return Enrollment{}, errors.Wrap(err, "creating enrollment")
	}
	return e, nil
}

func (svc *Service) QueryByUser(ctx context.Context, userID int64) ([]Enrollment, error) {
	list, err := svc.repo.QueryEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying enrollments")
	}
	return list, nil
}

func (svc *Service) QueryByCourse(ctx context.Context, courseID int64) ([]Enrollment, error) {
	list, err := svc.repo.QueryEnrollmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying enrollments")
	}
	return list, nil
}

// Update applies a partial update. updated_at always moves forward, even when nothing else changes.
func (svc *Service) Update(ctx context.Context, ue UpdateEnrollment) (Enrollment, error) {
	e, err := svc.repo.UpdateEnrollment(ctx, ue.normalize(), core.Now())
	if err != nil {
		return Enrollment{}, errors.Wrap(err, "updating enrollment")
	}
	return e, nil
}
