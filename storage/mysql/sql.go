package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	driver "github.com/go-sql-driver/mysql"
)

const errDuplicateEntry = 1062

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insert(ctx context.Context, db execer, table string, cols []string, values []interface{}) error {
	params := make([]string, len(cols))
	for i := range cols {
		params[i] = "?"
	}

	tsql := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, table, strings.Join(cols, ", "), strings.Join(params, ", "))
	if _, err := db.ExecContext(ctx, tsql, values...); err != nil {
		return fmt.Errorf("insert: unable to insert record in %s: %w", table, err)
	}
	return nil
}

// update returns the number of rows the conditional update changed.
func update(ctx context.Context, db execer, table string, cols []string, values []interface{}, where []string, args []interface{}) (int64, error) {
	set := make([]string, len(cols))
	for i, col := range cols {
		set[i] = fmt.Sprintf("%s = ?", col)
	}
	conds := make([]string, len(where))
	for i, col := range where {
		conds[i] = fmt.Sprintf("%s = ?", col)
	}

	tsql := fmt.Sprintf(`UPDATE %s SET %s WHERE %s`, table, strings.Join(set, ", "), strings.Join(conds, " AND "))
	result, err := db.ExecContext(ctx, tsql, append(values, args...)...)
	if err != nil {
		return 0, fmt.Errorf("update: unable to update record in %s: %w", table, err)
	}
	return result.RowsAffected()
}

func isDuplicateEntry(err error) bool {
	var myErr *driver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateEntry
}
