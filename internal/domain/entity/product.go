// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a sellable catalog item.
// Once a product has been captured into an order line it is copied by value,
// so later catalog edits never alter historical orders.
type Product struct {
	ID          string `json:"id"`        // Stable catalog identifier.
	Name        string `json:"name"`      // Display name.
	LocalName   string `json:"localName"` // Localized display name shown when the UI language is toggled.
	Price       int    `json:"price"`     // Unit price in whole currency units, never negative.
	Category    string `json:"category"`  // Category label, e.g. "Pens", "Registers".
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Category is a browsable product grouping.
type Category struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	LocalLabel string `json:"localLabel"`
	Icon       string `json:"icon"`
}
