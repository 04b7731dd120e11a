package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
)

const (
	courseColumns = "id, lms_id, title, description, slug, meta_title, meta_description, keywords, " +
		"thumbnail_url, duration_hours, status, created_at, updated_at"
	moduleColumns     = `id, course_id, title, description, "order", created_at, updated_at`
	lessonColumns     = `id, module_id, title, description, content, type, "order", created_at, updated_at`
	instructorColumns = "id, course_id, user_id, created_at"
)

// courseRow carries duration_hours in its NUMERIC text form.
type courseRow struct {
	course.Course
	DurationHours null.String `db:"duration_hours"`
}

type courseRepository struct {
	exec core.DBExecutor
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(exec core.DBExecutor) *courseRepository {
	return &courseRepository{exec: exec}
}

func (repo courseRepository) unboil(row courseRow) (course.Course, error) {
	c := row.Course
	dur, err := core.ParseDecimal(row.DurationHours)
	if err != nil {
		return course.Course{}, err
	}
	c.DurationHours = dur
	return c, nil
}

func (repo courseRepository) unboilSlice(rows []courseRow) ([]course.Course, error) {
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		c, err := repo.unboil(row)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (repo courseRepository) CreateCourse(ctx context.Context, c course.Course) (course.Course, error) {
	var row courseRow
	err := repo.exec.GetContext(ctx, &row,
		`INSERT INTO courses (lms_id, title, description, slug, meta_title, meta_description, keywords,
			thumbnail_url, duration_hours, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+courseColumns,
		c.LMSID, c.Title, c.Description, c.Slug, c.MetaTitle, c.MetaDescription, c.Keywords,
		c.ThumbnailURL, core.FormatDecimal(c.DurationHours, core.DurationPlaces), c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return course.Course{}, errors.Wrap(trapConstraintErr(err), "inserting course")
	}
	return repo.unboil(row)
}

func (repo courseRepository) QueryCoursesByLMS(ctx context.Context, lmsID int64) ([]course.Course, error) {
	var rows []courseRow
	q := "SELECT " + courseColumns + " FROM courses WHERE lms_id = $1" + orderBy(byID)
	if err := repo.exec.SelectContext(ctx, &rows, q, lmsID); err != nil {
		return nil, errors.Wrap(err, "selecting courses")
	}
	return repo.unboilSlice(rows)
}

func (repo courseRepository) GetCourse(ctx context.Context, id int64) (course.Course, error) {
	var row courseRow
	q := "SELECT " + courseColumns + " FROM courses WHERE id = $1"
	if err := repo.exec.GetContext(ctx, &row, q, id); err != nil {
		return course.Course{}, errors.Wrap(trapNoRowsErr(err, "course", id), "selecting course")
	}
	return repo.unboil(row)
}

func (repo courseRepository) CreateModule(ctx context.Context, m course.Module) (course.Module, error) {
	var created course.Module
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO modules (course_id, title, description, "order", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+moduleColumns,
		m.CourseID, m.Title, m.Description, m.Order, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return course.Module{}, errors.Wrap(trapConstraintErr(err), "inserting module")
	}
	return created, nil
}

func (repo courseRepository) QueryModulesByCourse(ctx context.Context, courseID int64) ([]course.Module, error) {
	modules := make([]course.Module, 0)
	q := "SELECT " + moduleColumns + " FROM modules WHERE course_id = $1" + orderBy(byOrder)
	if err := repo.exec.SelectContext(ctx, &modules, q, courseID); err != nil {
		return nil, errors.Wrap(err, "selecting modules")
	}
	return modules, nil
}

func (repo courseRepository) GetModule(ctx context.Context, id int64) (course.Module, error) {
	var m course.Module
	q := "SELECT " + moduleColumns + " FROM modules WHERE id = $1"
	if err := repo.exec.GetContext(ctx, &m, q, id); err != nil {
		return course.Module{}, errors.Wrap(trapNoRowsErr(err, "module", id), "selecting module")
	}
	return m, nil
}

func (repo courseRepository) CreateLesson(ctx context.Context, l course.Lesson) (course.Lesson, error) {
	var created course.Lesson
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO lessons (module_id, title, description, content, type, "order", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+lessonColumns,
		l.ModuleID, l.Title, l.Description, l.Content, l.Type, l.Order, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return course.Lesson{}, errors.Wrap(trapConstraintErr(err), "inserting lesson")
	}
	return created, nil
}

func (repo courseRepository) QueryLessonsByModule(ctx context.Context, moduleID int64) ([]course.Lesson, error) {
	lessons := make([]course.Lesson, 0)
	q := "SELECT " + lessonColumns + " FROM lessons WHERE module_id = $1" + orderBy(byOrder)
	if err := repo.exec.SelectContext(ctx, &lessons, q, moduleID); err != nil {
		return nil, errors.Wrap(err, "selecting lessons")
	}
	return lessons, nil
}

func (repo courseRepository) CreateInstructor(ctx context.Context, ins course.Instructor) (course.Instructor, error) {
	var created course.Instructor
	err := repo.exec.GetContext(ctx, &created,
		`INSERT INTO course_instructors (course_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING `+instructorColumns,
		ins.CourseID, ins.UserID, ins.CreatedAt,
	)
	if err != nil {
		return course.Instructor{}, errors.Wrap(trapConstraintErr(err), "inserting course instructor")
	}
	return created, nil
}

func (repo courseRepository) QueryInstructorsByCourse(ctx context.Context, courseID int64) ([]course.Instructor, error) {
	list := make([]course.Instructor, 0)
	q := "SELECT " + instructorColumns + " FROM course_instructors WHERE course_id = $1" + orderBy(byID)
	if err := repo.exec.SelectContext(ctx, &list, q, courseID); err != nil {
		return nil, errors.Wrap(err, "selecting course instructors")
	}
	return list, nil
}
