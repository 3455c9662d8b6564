package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc sorts ascending.
	Asc Direction = iota
	// Desc sorts descending.
	Desc
)

// Builder constructs SELECT statements for Cloud Spanner with a fluent,
// immutable API. Parameter names are generated automatically so WHERE
// conditions never have to coordinate their placeholders.
type Builder struct {
	table        string
	selectCols   []string
	whereClauses []Condition
	orderByCol   string
	orderByDir   Direction
	limitVal     int64
	offsetVal    int64
}

// From creates a Builder for the given table.
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
	}
}

// Select sets the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a condition. Multiple conditions are combined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy sets the sort column and direction.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderByCol = column
	nb.orderByDir = direction
	return nb
}

// Limit caps the number of rows returned.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset skips the first offset rows.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count derives a COUNT(*) builder sharing the FROM and WHERE clauses.
// Ordering and pagination are cleared since they are meaningless for a
// single-row count.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.limitVal = 0
	nb.offsetVal = 0
	nb.orderByCol = ""
	return nb
}

// Build produces the final spanner.Statement.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			whereParts = append(whereParts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	if b.orderByCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderByCol)
		if b.orderByDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	if b.offsetVal > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offsetVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

// clone copies the builder so chained calls never mutate their receiver.
func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderByCol:   b.orderByCol,
		orderByDir:   b.orderByDir,
		limitVal:     b.limitVal,
		offsetVal:    b.offsetVal,
	}
	copy(nb.selectCols, b.selectCols)
	copy(nb.whereClauses, b.whereClauses)
	return nb
}

// String renders the statement for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
