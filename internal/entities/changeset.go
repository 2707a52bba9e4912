package entities

import "time"

// Changeset stages column writes for a partial update. Columns that are not
// staged keep their stored values.
type Changeset map[string]any

// NewChangeset returns a changeset that always refreshes updated_at.
func NewChangeset(now time.Time) Changeset {
	return Changeset{"updated_at": now}
}

// Set stages a column value and returns the changeset for chaining.
func (c Changeset) Set(column string, value any) Changeset {
	c[column] = value
	return c
}

// Has reports whether the column is staged.
func (c Changeset) Has(column string) bool {
	_, ok := c[column]
	return ok
}
