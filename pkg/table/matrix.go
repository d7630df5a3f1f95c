package table

import "entropylab/pkg/nlp"

// Matrix is a square joint-frequency table: Cells[i][j] is the share of
// bigrams whose first symbol is Axis[i] and second symbol is Axis[j].
type Matrix struct {
	Axis  []string    `json:"axis"`
	Cells [][]float64 `json:"cells"`
}

// BuildBigramMatrix reindexes a bigram table onto axis. Pairs outside the
// axis are ignored; axis symbols that never occur get all-zero rows and
// columns, so matrices from either alphabet variant share one shape when
// built against the with-separator axis.
func BuildBigramMatrix(t nlp.FrequencyTable, axis nlp.Alphabet) Matrix {
	symbols := axis.Symbols()
	m := Matrix{
		Axis:  make([]string, len(symbols)),
		Cells: make([][]float64, len(symbols)),
	}
	for i, r := range symbols {
		m.Axis[i] = string(r)
		m.Cells[i] = make([]float64, len(symbols))
	}

	total := t.Sum()
	if total == 0 {
		return m
	}
	for _, gram := range t.Keys() {
		pair := []rune(gram)
		if len(pair) != 2 {
			continue
		}
		row, col := axis.Index(pair[0]), axis.Index(pair[1])
		if row < 0 || col < 0 {
			continue
		}
		m.Cells[row][col] = float64(t.Count(gram)) / float64(total)
	}
	return m
}

// At returns the cell for the (first, second) pair, or 0 when either symbol is off-axis.
func (m Matrix) At(first, second string) float64 {
	row, col := -1, -1
	for i, s := range m.Axis {
		if s == first {
			row = i
		}
		if s == second {
			col = i
		}
	}
	if row < 0 || col < 0 {
		return 0
	}
	return m.Cells[row][col]
}

// Sheet renders the matrix with the axis as both header row and first column.
func (m Matrix) Sheet(name string) Sheet {
	rows := make([][]any, 0, len(m.Axis)+1)
	header := make([]any, 0, len(m.Axis)+1)
	header = append(header, "")
	for _, label := range m.Axis {
		header = append(header, label)
	}
	rows = append(rows, header)
	for i, label := range m.Axis {
		row := make([]any, 0, len(m.Axis)+1)
		row = append(row, label)
		for _, v := range m.Cells[i] {
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return Sheet{Name: name, Rows: rows}
}
