// Package sqlxrepos implements the core repositories on PostgreSQL with sqlx.
package sqlxrepos

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/core"
)

var (
	byID    = []core.DBOrdering{{Field: "id", Ascending: true}}
	byOrder = []core.DBOrdering{{Field: `"order"`, Ascending: true}, {Field: "id", Ascending: true}}
)

// trapNoRowsErr turns sql.ErrNoRows into a *core.NotFoundError.
func trapNoRowsErr(err error, entity string, id int64) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return core.NewNotFoundError(entity, id)
	}
	return err
}

// trapConstraintErr turns unique, foreign key and check violations into a *core.ConstraintError
// carrying the server's message.
func trapConstraintErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation", "foreign_key_violation", "check_violation":
			return core.NewConstraintError(pqErr.Constraint, pqErr.Message, err)
		}
	}
	return err
}

func orderBy(ordering []core.DBOrdering) string {
	if len(ordering) == 0 {
		return ""
	}
	clauses := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		clauses = append(clauses, ord.String())
	}
	return " ORDER BY " + strings.Join(clauses, ", ")
}
