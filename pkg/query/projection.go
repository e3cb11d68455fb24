// Package query provides parameterized SQL construction for the
// Postgres-backed domain repositories. Projections map domain field names
// onto aliased table columns so builders never interpolate raw input.
package query

import "strings"

// ProjectionMap associates domain field names with aliased table columns.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	fields []string
	cols   map[string]string
}

// NewProjectionMap creates a projection for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		cols:   map[string]string{},
	}
}

// Project registers a column under a domain field name. Registration order
// determines SELECT column order.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields = append(p.fields, field)
	p.cols[field] = p.alias + "." + column
	return p
}

// Table returns the aliased table reference, e.g. "public.tasks t".
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column returns the aliased column for a domain field. Unknown fields
// return an empty string, producing an invalid query rather than exposing
// unmapped input to SQL.
func (p *ProjectionMap) Column(field string) string {
	return p.cols[field]
}

// Columns returns the comma-separated SELECT list in registration order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.cols[f]
	}
	return strings.Join(cols, ", ")
}

// SortField identifies a domain field and sort direction.
type SortField struct {
	Field      string
	Descending bool
}
