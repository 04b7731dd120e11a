// Package inmemdb implements the core repositories in memory. It enforces the same foreign key
// and unique constraints as the PostgreSQL schema, with the same constraint names.
package inmemdb

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/core/enrollment"
	"github.com/trezcool/lmsadmin/core/lms"
	"github.com/trezcool/lmsadmin/core/organization"
	"github.com/trezcool/lmsadmin/core/role"
	"github.com/trezcool/lmsadmin/core/user"
)

// DB holds every table behind a single lock, so foreign key checks see a consistent snapshot.
type DB struct {
	mutex sync.RWMutex
	seq   map[string]int64

	organizations map[int64]organization.Organization
	lms           map[int64]lms.LMS
	users         map[int64]user.User
	courses       map[int64]course.Course
	modules       map[int64]course.Module
	lessons       map[int64]course.Lesson
	instructors   map[int64]course.Instructor
	orgRoles      map[int64]role.UserOrganizationRole
	lmsRoles      map[int64]role.UserLMSRole
	enrollments   map[int64]enrollment.Enrollment
}

var _ core.Pinger = (*DB)(nil)

func Open() *DB {
	return &DB{
		seq:           make(map[string]int64),
		organizations: make(map[int64]organization.Organization),
		lms:           make(map[int64]lms.LMS),
		users:         make(map[int64]user.User),
		courses:       make(map[int64]course.Course),
		modules:       make(map[int64]course.Module),
		lessons:       make(map[int64]course.Lesson),
		instructors:   make(map[int64]course.Instructor),
		orgRoles:      make(map[int64]role.UserOrganizationRole),
		lmsRoles:      make(map[int64]role.UserLMSRole),
		enrollments:   make(map[int64]enrollment.Enrollment),
	}
}

func (db *DB) PingContext(ctx context.Context) error {
	return ctx.Err()
}

// nextID mimics a BIGSERIAL sequence; must be called with the write lock held.
func (db *DB) nextID(table string) int64 {
	db.seq[table]++
	return db.seq[table]
}

func uniqueViolation(constraint string) error {
	return core.NewConstraintError(
		constraint,
		fmt.Sprintf("duplicate key value violates unique constraint %q", constraint),
		nil,
	)
}

func foreignKeyViolation(table, constraint string) error {
	return core.NewConstraintError(
		constraint,
		fmt.Sprintf("insert or update on table %q violates foreign key constraint %q", table, constraint),
		nil,
	)
}

// collect returns the rows accepted by `keep`, sorted by `less`. Never nil.
func collect[T any](table map[int64]T, keep func(T) bool, less func(a, b T) bool) []T {
	rows := make([]T, 0)
	for _, row := range table {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	return rows
}

// laterOf mirrors `GREATEST(t, updated_at + interval '1 microsecond')`.
func laterOf(t, prev time.Time) time.Time {
	if floor := prev.Add(time.Microsecond); floor.After(t) {
		return floor
	}
	return t
}
