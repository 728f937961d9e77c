package domain

// Category is a named tag attachable to transactions for display grouping.
// It carries no balance effect.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`       // Non-empty
	AuditFields
}
