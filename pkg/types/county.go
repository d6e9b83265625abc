package types

// County is a selectable option of the county coverage multi-select.
type County struct {
	ID           string `db:"id" json:"id"`
	Label        string `db:"label" json:"label"`
	DisplayOrder int    `db:"display_order" json:"-"`
}
