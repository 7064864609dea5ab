package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorIsNull    = "is_null"
	FilterOperatorIsNotNull = "is_not_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// comparisons render a column against a single named argument.
var comparisons = map[string]string{
	FilterOperatorEq:    "%s = :%s",
	FilterOperatorNotEq: "%s != :%s",
}

// Filter is one predicate on a column. ArgName defaults to Field and must
// be unique within a group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Values   []any
	Operator string
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	col, name := f.column(), f.argName()

	if format, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf(format, col, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", col, name), args
	case FilterOperatorIn:
		placeholders := make([]string, len(f.Values))

		for i, v := range f.Values {
			key := fmt.Sprintf("%s_%d", name, i)
			args[key] = v
			placeholders[i] = ":" + key
		}

		return fmt.Sprintf("%s IN (%s) ", col, strings.Join(placeholders, ", ")), args
	case FilterOperatorIsNull:
		return col + " IS NULL", args
	case FilterOperatorIsNotNull:
		return col + " IS NOT NULL", args
	default:
		return "", args
	}
}

// FilterGroup joins Filters and nested FilterGroups with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func group(operator string, filters []any) FilterGroup {
	g := FilterGroup{Operator: operator, Filters: []any{}}

	for _, filter := range filters {
		if filter != nil {
			g.Filters = append(g.Filters, filter)
		}
	}

	return g
}

// And builds an AND group from the given filters, skipping nil entries.
func And(filters ...any) FilterGroup {
	return group(FilterGroupOperatorAnd, filters)
}

// Or builds an OR group from the given filters, skipping nil entries.
func Or(filters ...any) FilterGroup {
	return group(FilterGroupOperatorOr, filters)
}

// Eq returns an equality filter on table.field.
func Eq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Operator: FilterOperatorEq, Value: value}
}

// EqIfSet is Eq for optional query parameters. And skips the nil it returns
// for an empty value.
func EqIfSet(table, field, value string) any {
	if value == "" {
		return nil
	}

	return Eq(table, field, value)
}

// LikeIfSet matches a case-insensitive substring, or nothing when value is empty.
func LikeIfSet(table, field, value string) any {
	if value == "" {
		return nil
	}

	return Filter{Table: table, Field: field, Operator: FilterOperatorLike, Value: value}
}

// In returns an IN filter on table.field. Callers must not pass an empty slice.
func In[T any](table, field string, values []T) Filter {
	boxed := make([]any, len(values))
	for i, v := range values {
		boxed[i] = v
	}

	return Filter{Table: table, Field: field, Operator: FilterOperatorIn, Values: boxed}
}

// IsNull matches rows where table.field is NULL.
func IsNull(table, field string) Filter {
	return Filter{Table: table, Field: field, Operator: FilterOperatorIsNull}
}

// Empty reports whether the group carries no filters.
func (f *FilterGroup) Empty() bool {
	return len(f.Filters) == 0
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch v := filter.(type) {
		case Filter:
			where, arg = v.GetWhereClause()
		case FilterGroup:
			where, arg = v.GetWhereClause()
		default:
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+f.Operator+" ")), args
}
