// Package query renders parameterized SELECT statements over a single
// aliased table.
package query

import "strings"

type projected struct {
	field  string
	column string
}

// ProjectionMap binds Go field names to alias-qualified columns of one
// table. Columns render in the order they were projected, which is the
// order row scanners must read them in.
type ProjectionMap struct {
	table  string
	alias  string
	fields []projected
}

// NewProjectionMap starts a projection over schema.table, referenced in
// SQL as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{table: schema + "." + table, alias: alias}
}

// Project maps field to column and appends it to the select list.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields = append(p.fields, projected{field: field, column: p.alias + "." + column})
	return p
}

func (p *ProjectionMap) From() string {
	return p.table + " " + p.alias
}

// Column resolves field to its qualified column. Unknown names pass
// through so callers can sort on unprojected columns such as "c.seq".
func (p *ProjectionMap) Column(field string) string {
	for _, f := range p.fields {
		if f.field == field {
			return f.column
		}
	}
	return field
}

func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = f.column
	}
	return strings.Join(cols, ", ")
}
