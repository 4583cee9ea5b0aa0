package models

// Subject represents an academic subject with a display color for the grid.
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
