package models

// RawRow is one table row as produced by a row source. The first cell is
// the age label; the rest are metric values in document column order.
// An empty string is the absent marker.
type RawRow []string

// Page represents the rows of one page of the standards document.
type Page struct {
	// Name is the sheet name or file name the rows came from.
	Name string `json:"name"`
	// Rows contains the page's table rows in document order.
	Rows []RawRow `json:"rows,omitempty"`
}

// AgeBracket is an age-group label such as "10" or "17+".
type AgeBracket string
