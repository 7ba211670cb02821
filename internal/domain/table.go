package domain

// Table is a loaded CSV table in raw form: a fixed column header plus rows
// whose cells line up with the header. Export adapters and the import API
// work on this shape so they stay independent of the entity types.
type Table struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
