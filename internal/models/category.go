package models

// Category represents a display-grouping tag row.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	AuditFields
}
