package types

import "fmt"

// Product represents one inventory record. ID is the identity key: it is
// unique within a table and is the only field that participates in
// hashing and lookup. The remaining fields are mutable payload.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

// String renders the product in its display form: [ID] Name - Category (Stock: N).
func (p *Product) String() string {
	return fmt.Sprintf("[%s] %s - %s (Stock: %d)", p.ID, p.Name, p.Category, p.Stock)
}

// ProductUpdate describes a partial update of a product's payload fields.
// A nil field means "leave unchanged"; the key itself is never updated.
type ProductUpdate struct {
	Name     *string
	Category *string
	Stock    *int
}

// Apply copies every non-nil field of the update onto the product.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
}

// IsZero reports whether the update carries no field changes.
func (u ProductUpdate) IsZero() bool {
	return u.Name == nil && u.Category == nil && u.Stock == nil
}
