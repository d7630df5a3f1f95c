package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entropylab/pkg/nlp"
)

func TestBuildUnigramTable(t *testing.T) {
	u := BuildUnigramTable(nlp.CountNGrams("ба аб в", 1, 1))

	require.Len(t, u.Rows, 4)
	assert.Equal(t, UnigramRow{Symbol: "б", Count: 2, Frequency: 2.0 / 7}, u.Rows[0])
	assert.Equal(t, UnigramRow{Symbol: "а", Count: 2, Frequency: 2.0 / 7}, u.Rows[1])
	assert.Equal(t, UnigramRow{Symbol: " ", Count: 2, Frequency: 2.0 / 7}, u.Rows[2])
	assert.Equal(t, UnigramRow{Symbol: "в", Count: 1, Frequency: 1.0 / 7}, u.Rows[3])
}

func TestBuildUnigramTableEmpty(t *testing.T) {
	u := BuildUnigramTable(nlp.CountNGrams("", 1, 1))
	assert.Empty(t, u.Rows)

	sheet := u.Sheet("Unigram")
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, []any{"Symbol", "Count", "Frequency"}, sheet.Rows[0])
}

func TestBuildBigramMatrix(t *testing.T) {
	axis := nlp.WithSeparator()
	m := BuildBigramMatrix(nlp.CountNGrams("абаб", 2, 1), axis)

	require.Len(t, m.Axis, 33)
	require.Len(t, m.Cells, 33)
	for _, row := range m.Cells {
		require.Len(t, row, 33)
	}
	assert.InDelta(t, 2.0/3, m.At("а", "б"), 1e-12)
	assert.InDelta(t, 1.0/3, m.At("б", "а"), 1e-12)
	assert.Zero(t, m.At("а", "а"))
	assert.Zero(t, m.At(" ", "а"))
	assert.Zero(t, m.At("z", "а"))
}

func TestBuildBigramMatrixIsJointDistribution(t *testing.T) {
	stream := nlp.NewDefaultNormalizer().Normalize("Граф Монте-Кристо. Марсель, прибытие.")
	m := BuildBigramMatrix(nlp.CountNGrams(stream, 2, 1), nlp.WithSeparator())

	sum := 0.0
	for _, row := range m.Cells {
		for _, v := range row {
			sum += v
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestBigramMatrixNoSeparatorKeepsFullAxis(t *testing.T) {
	axis := nlp.WithSeparator()
	stream := nlp.StripSeparators("аб ва")
	m := BuildBigramMatrix(nlp.CountNGrams(stream, 2, 1), axis)

	require.Len(t, m.Axis, axis.Size())
	assert.InDelta(t, 1.0/3, m.At("б", "в"), 1e-12)
	sep := axis.Index(nlp.Separator)
	for i := range m.Axis {
		assert.Zero(t, m.Cells[sep][i])
		assert.Zero(t, m.Cells[i][sep])
	}
}

func TestMatrixSheet(t *testing.T) {
	m := BuildBigramMatrix(nlp.CountNGrams("аб", 2, 1), nlp.NewAlphabet("аб"))
	sheet := m.Sheet("Bigram")

	assert.Equal(t, "Bigram", sheet.Name)
	assert.Equal(t, 3, sheet.Width())
	assert.Equal(t, [][]any{
		{"", "а", "б"},
		{"а", 0.0, 1.0},
		{"б", 0.0, 0.0},
	}, sheet.Rows)
}
