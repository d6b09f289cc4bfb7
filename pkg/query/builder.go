package query

import (
	"reflect"
	"strconv"
	"strings"
)

// SortField orders results by a projected field or a raw column.
type SortField struct {
	Field      string
	Descending bool
}

type equality struct {
	column string
	value  any
}

// Builder accumulates equality filters and ordering for one projection.
// Placeholders are numbered $1..$n in the order filters were added.
type Builder struct {
	projection *ProjectionMap
	filters    []equality
	sort       []SortField
}

func NewBuilder(projection *ProjectionMap, sort ...SortField) *Builder {
	return &Builder{projection: projection, sort: sort}
}

// WhereEquals filters on field = value. Nil values, including typed nil
// pointers, leave the query unfiltered.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	b.filters = append(b.filters, equality{column: b.projection.Column(field), value: value})
	return b
}

func (b *Builder) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.projection.Columns())
	sb.WriteString(" FROM ")
	sb.WriteString(b.projection.From())
	args := b.writeWhere(&sb)
	b.writeOrder(&sb)
	return sb.String(), args
}

func (b *Builder) BuildCount() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM ")
	sb.WriteString(b.projection.From())
	return sb.String(), b.writeWhere(&sb)
}

func (b *Builder) writeWhere(sb *strings.Builder) []any {
	if len(b.filters) == 0 {
		return nil
	}
	args := make([]any, len(b.filters))
	for i, f := range b.filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(f.column)
		sb.WriteString(" = $")
		sb.WriteString(strconv.Itoa(i + 1))
		args[i] = f.value
	}
	return args
}

func (b *Builder) writeOrder(sb *strings.Builder) {
	for i, s := range b.sort {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(b.projection.Column(s.Field))
		if s.Descending {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
