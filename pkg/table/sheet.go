package table

// Sheet is a format-neutral table: Rows[0] is the header, cells are string,
// int or float64. Writers in internal/external serialize it.
type Sheet struct {
	Name string
	Rows [][]any
}

// Width is the number of cells in the widest row.
func (s Sheet) Width() int {
	w := 0
	for _, r := range s.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}
