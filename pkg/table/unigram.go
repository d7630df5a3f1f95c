// Package table reshapes frequency tables into the row/column structures
// that the exporters write out. It never recounts anything.
package table

import (
	"sort"

	"entropylab/pkg/nlp"
)

// Column headers of an exported unigram table.
var UnigramHeader = []string{"Symbol", "Count", "Frequency"}

type UnigramRow struct {
	Symbol    string  `json:"symbol"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

type UnigramTable struct {
	Rows []UnigramRow `json:"rows"`
}

// BuildUnigramTable ranks symbols by relative frequency, highest first.
// Ties keep the order in which symbols first appeared in the stream.
func BuildUnigramTable(t nlp.FrequencyTable) UnigramTable {
	keys := t.Keys()
	rows := make([]UnigramRow, 0, len(keys))
	for _, k := range keys {
		row := UnigramRow{Symbol: k, Count: t.Count(k)}
		if t.Total > 0 {
			row.Frequency = float64(row.Count) / float64(t.Total)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Frequency > rows[j].Frequency
	})
	return UnigramTable{Rows: rows}
}

// Sheet renders the table with its header row first.
func (u UnigramTable) Sheet(name string) Sheet {
	rows := make([][]any, 0, len(u.Rows)+1)
	rows = append(rows, []any{UnigramHeader[0], UnigramHeader[1], UnigramHeader[2]})
	for _, r := range u.Rows {
		rows = append(rows, []any{r.Symbol, r.Count, r.Frequency})
	}
	return Sheet{Name: name, Rows: rows}
}
