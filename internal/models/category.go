package models

// Category groups transactions, e.g. "Groceries" or "Salary".
type Category struct {
	DefaultModel
	Name string `json:"name" example:"Groceries"`
}
