package inmemdb

import (
	"context"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(_ context.Context, c course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.lms[c.LMSID]; !ok {
		return course.Course{}, foreignKeyViolation("courses", "courses_lms_id_fkey")
	}
	for _, existing := range repo.db.courses {
		if existing.Slug == c.Slug && existing.LMSID == c.LMSID {
			return course.Course{}, uniqueViolation("courses_slug_lms_id_key")
		}
	}
	c.ID = repo.db.nextID("courses")
	repo.db.courses[c.ID] = c
	return c, nil
}

func (repo *courseRepository) QueryCoursesByLMS(_ context.Context, lmsID int64) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.courses,
		func(c course.Course) bool { return c.LMSID == lmsID },
		func(a, b course.Course) bool { return a.ID < b.ID },
	), nil
}

func (repo *courseRepository) GetCourse(_ context.Context, id int64) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	c, ok := repo.db.courses[id]
	if !ok {
		return course.Course{}, core.NewNotFoundError("course", id)
	}
	return c, nil
}

func (repo *courseRepository) CreateModule(_ context.Context, m course.Module) (course.Module, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.courses[m.CourseID]; !ok {
		return course.Module{}, foreignKeyViolation("modules", "modules_course_id_fkey")
	}
	for _, existing := range repo.db.modules {
		if existing.CourseID == m.CourseID && existing.Order == m.Order {
			return course.Module{}, uniqueViolation("modules_course_id_order_key")
		}
	}
	m.ID = repo.db.nextID("modules")
	repo.db.modules[m.ID] = m
	return m, nil
}

func (repo *courseRepository) QueryModulesByCourse(_ context.Context, courseID int64) ([]course.Module, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.modules,
		func(m course.Module) bool { return m.CourseID == courseID },
		func(a, b course.Module) bool { return a.Order < b.Order },
	), nil
}

func (repo *courseRepository) GetModule(_ context.Context, id int64) (course.Module, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	m, ok := repo.db.modules[id]
	if !ok {
		return course.Module{}, core.NewNotFoundError("module", id)
	}
	return m, nil
}

func (repo *courseRepository) CreateLesson(_ context.Context, l course.Lesson) (course.Lesson, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.modules[l.ModuleID]; !ok {
		return course.Lesson{}, foreignKeyViolation("lessons", "lessons_module_id_fkey")
	}
	for _, existing := range repo.db.lessons {
		if existing.ModuleID == l.ModuleID && existing.Order == l.Order {
			return course.Lesson{}, uniqueViolation("lessons_module_id_order_key")
		}
	}
	l.ID = repo.db.nextID("lessons")
	repo.db.lessons[l.ID] = l
	return l, nil
}

func (repo *courseRepository) QueryLessonsByModule(_ context.Context, moduleID int64) ([]course.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.lessons,
		func(l course.Lesson) bool { return l.ModuleID == moduleID },
		func(a, b course.Lesson) bool { return a.Order < b.Order },
	), nil
}

func (repo *courseRepository) CreateInstructor(_ context.Context, ins course.Instructor) (course.Instructor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.courses[ins.CourseID]; !ok {
		return course.Instructor{}, foreignKeyViolation("course_instructors", "course_instructors_course_id_fkey")
	}
	if _, ok := repo.db.users[ins.UserID]; !ok {
		return course.Instructor{}, foreignKeyViolation("course_instructors", "course_instructors_user_id_fkey")
	}
	for _, existing := range repo.db.instructors {
		if existing.CourseID == ins.CourseID && existing.UserID == ins.UserID {
			return course.Instructor{}, uniqueViolation("course_instructors_course_id_user_id_key")
		}
	}
	ins.ID = repo.db.nextID("course_instructors")
	repo.db.instructors[ins.ID] = ins
	return ins, nil
}

func (repo *courseRepository) QueryInstructorsByCourse(_ context.Context, courseID int64) ([]course.Instructor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return collect(repo.db.instructors,
		func(ins course.Instructor) bool { return ins.CourseID == courseID },
		func(a, b course.Instructor) bool { return a.ID < b.ID },
	), nil
}
