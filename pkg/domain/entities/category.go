package entities

import "fmt"

// CategoryColumn is the column ABC classification adds to a table
const CategoryColumn = "category"

// Category represents an ABC inventory class
type Category int

const (
	CategoryA Category = iota
	CategoryB
	CategoryC
)

// String method for Category enum
func (c Category) String() string {
	switch c {
	case CategoryA:
		return "A"
	case CategoryB:
		return "B"
	case CategoryC:
		return "C"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a category label back into a Category
func ParseCategory(s string) (Category, error) {
	switch s {
	case "A":
		return CategoryA, nil
	case "B":
		return CategoryB, nil
	case "C":
		return CategoryC, nil
	default:
		return CategoryC, fmt.Errorf("invalid category: %s (expected A, B or C)", s)
	}
}
