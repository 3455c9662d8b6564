package query

import "fmt"

// Condition is a WHERE clause fragment. Implementations emit SQL using
// Spanner's named parameter format (@paramName), generating parameter
// names from paramIndex so fragments compose without collisions.
type Condition interface {
	// SQL returns the fragment and its parameters. paramIndex is the
	// first free parameter slot (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]interface{})
}

type eqCondition struct {
	field string
	value interface{}
}

// Eq matches rows where field equals value.
func Eq(field string, value interface{}) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

type neCondition struct {
	field string
	value interface{}
}

// Ne matches rows where field differs from value.
func Ne(field string, value interface{}) Condition {
	return &neCondition{field: field, value: value}
}

func (c *neCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s != @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

type isNullCondition struct {
	field string
}

// IsNull matches rows where field is NULL. Used to select the active
// (not soft-deleted) rows of a lifecycle table.
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}

type isNotNullCondition struct {
	field string
}

// IsNotNull matches rows where field is not NULL.
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
}
