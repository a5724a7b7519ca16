package postgresql

import (
	"fmt"
	"strings"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
)

// whereBuilder collects AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add appends a condition; each %d in cond receives the next placeholder index.
func (w *whereBuilder) add(cond string, args ...interface{}) {
	idx := make([]interface{}, len(args))
	for i, arg := range args {
		w.args = append(w.args, arg)
		idx[i] = len(w.args)
	}
	w.conds = append(w.conds, fmt.Sprintf(cond, idx...))
}

// scope restricts column to the scope's employee ids; an unrestricted scope adds nothing.
func (w *whereBuilder) scope(column string, scope access.Scope) {
	if scope.All {
		return
	}
	w.add(column+" = ANY($%d)", scope.EmployeeIDs)
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(w.conds, " AND ")
}

// windowArgs renders the window bounds as ISO dates for ::date casts.
func windowArgs(w calendar.Window) (string, string) {
	return w.From.String(), w.To.String()
}
