package course

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/core/user"
)

type (
	// Finder looks up courses and modules; a missing row is a *core.NotFoundError.
	Finder interface {
		GetCourse(ctx context.Context, id int64) (Course, error)
		GetModule(ctx context.Context, id int64) (Module, error)
	}

	Repository interface {
		Finder

		CreateCourse(ctx context.Context, c Course) (Course, error)
		QueryCoursesByLMS(ctx context.Context, lmsID int64) ([]Course, error)

		CreateModule(ctx context.Context, m Module) (Module, error)
		// QueryModulesByCourse returns modules by ascending Order.
		QueryModulesByCourse(ctx context.Context, courseID int64) ([]Module, error)

		CreateLesson(ctx context.Context, l Lesson) (Lesson, error)
		// QueryLessonsByModule returns lessons by ascending Order.
		QueryLessonsByModule(ctx context.Context, moduleID int64) ([]Lesson, error)

		CreateInstructor(ctx context.Context, ins Instructor) (Instructor, error)
		QueryInstructorsByCourse(ctx context.Context, courseID int64) ([]Instructor, error)
	}

	Service struct {
		repo  Repository
		lms   lms.Finder
		users user.Finder
	}
)

func NewService(repo Repository, lmsFinder lms.Finder, users user.Finder) *Service {
	return &Service{repo: repo, lms: lmsFinder, users: users}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	if _, err := svc.lms.GetLMS(ctx, nc.LMSID); err != nil {
		return Course{}, errors.Wrap(err, "checking lms")
	}

	now := core.Now()
	c, err := svc.repo.CreateCourse(ctx, Course{
		LMSID:           nc.LMSID,
		Title:           nc.Title,
		Description:     nc.Description,
		Slug:            nc.Slug,
		MetaTitle:       nc.MetaTitle,
		MetaDescription: nc.MetaDescription,
		Keywords:        nc.Keywords,
		ThumbnailURL:    nc.ThumbnailURL,
		DurationHours:   nc.DurationHours,
		Status:          nc.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return Course{}, errors.Wrap(err, "creating course")
	}
	return c, nil
}

// QueryByLMS returns the courses of an LMS; unknown LMS instances have none.
func (svc *Service) QueryByLMS(ctx context.Context, lmsID int64) ([]Course, error) {
	courses, err := svc.repo.QueryCoursesByLMS(ctx, lmsID)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return courses, nil
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Course, error) {
	c, err := svc.repo.GetCourse(ctx, id)
	if err != nil {
		return Course{}, errors.Wrap(err, "getting course")
	}
	return c, nil
}

func (svc *Service) CreateModule(ctx context.Context, nm NewModule) (Module, error) {
	if _, err := svc.repo.GetCourse(ctx, nm.CourseID); err != nil {
		return Module{}, errors.Wrap(err, "checking course")
	}

	now := core.Now()
	m, err := svc.repo.CreateModule(ctx, Module{
		CourseID:    nm.CourseID,
		Title:       nm.Title,
		Description: nm.Description,
		Order:       *nm.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return Module{}, errors.Wrap(err, "creating module")
	}
	return m, nil
}

func (svc *Service) QueryModules(ctx context.Context, courseID int64) ([]Module, error) {
	modules, err := svc.repo.QueryModulesByCourse(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying modules")
	}
	return modules, nil
}

func (svc *Service) CreateLesson(ctx context.Context, nl NewLesson) (Lesson, error) {
	if _, err := svc.repo.GetModule(ctx, nl.ModuleID); err != nil {
		return Lesson{}, errors.Wrap(err, "checking module")
	}

	now := core.Now()
	l, err := svc.repo.CreateLesson(ctx, Lesson{
		ModuleID:    nl.ModuleID,
		Title:       nl.Title,
		Description: nl.Description,
		Content:     nl.Content,
		Type:        nl.Type,
		Order:       *nl.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return Lesson{}, errors.Wrap(err, "creating lesson")
	}
	return l, nil
}

func (svc *Service) QueryLessons(ctx context.Context, moduleID int64) ([]Lesson, error) {
	lessons, err := svc.repo.QueryLessonsByModule(ctx, moduleID)
	if err != nil {
		return nil, errors.Wrap(err, "querying lessons")
	}
	return lessons, nil
}

func (svc *Service) AddInstructor(ctx context.Context, ni NewInstructor) (Instructor, error) {
	if _, err := svc.repo.GetCourse(ctx, ni.CourseID); err != nil {
		return Instructor{}, errors.Wrap(err, "checking course")
	}
	if _, err := svc.users.GetUser(ctx, ni.UserID); err != nil {
		return Instructor{}, errors.Wrap(err, "checking user")
	}

	ins, err := svc.repo.CreateInstructor(ctx, Instructor{
		CourseID:  ni.CourseID,
		UserID:    ni.UserID,
		CreatedAt: core.Now(),
	})
	if err != nil {
		return Instructor{}, errors.Wrap(err, "creating course instructor")
	}
	return ins, nil
}

func (svc *Service) QueryInstructors(ctx context.Context, courseID int64) ([]Instructor, error) {
	list, err := svc.repo.QueryInstructorsByCourse(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying course instructors")
	}
	return list, nil
}
