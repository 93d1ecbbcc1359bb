package postgres

import (
	"fmt"
	"strings"

	"digital-api/internal/user/repository"
)

const userColumns = "id, name, email, phone, password_hash, role, is_verified, is_active, created_at, updated_at"

// buildWhere turns a Filter into a WHERE clause with positional args.
// Returns "WHERE ..." or an empty string when nothing filters.
func buildWhere(filter repository.Filter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if len(filter.IDs) > 0 {
		placeholders := make([]string, len(filter.IDs))
		for i, id := range filter.IDs {
			args = append(args, id)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		conds = append(conds, fmt.Sprintf("id IN (%s)", strings.Join(placeholders, ", ")))
	}

	if filter.Role != "" {
		args = append(args, filter.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
