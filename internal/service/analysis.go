package service

import (
	"context"

	"entropylab/internal/model"
	"entropylab/pkg/algorithm"
	"entropylab/pkg/nlp"
	"entropylab/pkg/table"
)

// Export names of the estimator tables, keyed by estimator.
var sheetNames = map[string]string{
	algorithm.H1:             "Unigram",
	algorithm.H1NoSpace:      "UnigramNoSpace",
	algorithm.H2:             "Bigram",
	algorithm.H2Step2:        "BigramStep2",
	algorithm.H2NoSpace:      "BigramNoSpace",
	algorithm.H2Step2NoSpace: "BigramStep2NoSpace",
}

var labels = map[string]string{
	algorithm.H1:             "H1 (with spaces)",
	algorithm.H1NoSpace:      "H1 (without spaces)",
	algorithm.H2:             "H2 (with spaces)",
	algorithm.H2NoSpace:      "H2 (without spaces)",
	algorithm.H2Step2:        "H2 step 2 (with spaces)",
	algorithm.H2Step2NoSpace: "H2 step 2 (without spaces)",
}

type AnalysisService struct {
	Normalizer *nlp.Normalizer
	Registry   *algorithm.Registry
	Parallel   bool
}

func NewAnalysisService(parallel bool) *AnalysisService {
	return &AnalysisService{
		Normalizer: nlp.NewDefaultNormalizer(),
		Registry:   algorithm.DefaultRegistry(),
		Parallel:   parallel,
	}
}

// Analysis is the outcome of one pass: the canonical stream and every estimate.
type Analysis struct {
	Stream  string
	Results []algorithm.Result
	axis    nlp.Alphabet
}

// Normalize returns the with-separator stream and its no-separator form.
func (s *AnalysisService) Normalize(raw string) (string, string) {
	stream := s.Normalizer.Normalize(raw)
	return stream, nlp.StripSeparators(stream)
}

func (s *AnalysisService) Analyze(ctx context.Context, raw string) (*Analysis, error) {
	return s.AnalyzeStream(ctx, s.Normalizer.Normalize(raw))
}

// AnalyzeStream runs the estimators over an already canonical stream.
func (s *AnalysisService) AnalyzeStream(ctx context.Context, stream string) (*Analysis, error) {
	results, err := algorithm.ExecuteEstimators(ctx, s.Registry, stream, s.Parallel)
	if err != nil {
		return nil, err
	}
	return &Analysis{Stream: stream, Results: results, axis: s.Normalizer.Alphabet()}, nil
}

// Sheets builds the unigram tables and the bigram matrices, in estimator order.
// Every matrix uses the with-separator axis.
func (a *Analysis) Sheets() []table.Sheet {
	sheets := make([]table.Sheet, 0, len(a.Results))
	for _, res := range a.Results {
		name := sheetName(res.Name)
		switch res.Order {
		case 1:
			sheets = append(sheets, table.BuildUnigramTable(res.Table).Sheet(name))
		case 2:
			sheets = append(sheets, table.BuildBigramMatrix(res.Table, a.axis).Sheet(name))
		}
	}
	return sheets
}

// Report summarizes the analysis; withTables adds the built tables.
func (a *Analysis) Report(withTables bool) model.Report {
	withSep, noSep := nlp.WithSeparator(), nlp.WithoutSeparator()
	r := model.Report{
		StreamLength:    len([]rune(a.Stream)),
		NoSpaceLength:   len([]rune(nlp.StripSeparators(a.Stream))),
		MaxEntropy:      withSep.MaxEntropy(),
		MaxEntropyNoSep: noSep.MaxEntropy(),
		Estimates:       make([]model.Estimate, 0, len(a.Results)),
	}
	for _, res := range a.Results {
		r.Estimates = append(r.Estimates, model.Estimate{
			Name:       res.Name,
			Label:      label(res.Name),
			Order:      res.Order,
			Stride:     res.Stride,
			Separator:  res.Separator,
			Samples:    res.Table.Total,
			Entropy:    res.Entropy,
			MaxEntropy: res.MaxEntropy,
			Redundancy: res.Redundancy,
		})
	}
	if !withTables {
		return r
	}

	r.Unigrams = make(map[string]table.UnigramTable)
	r.Bigrams = make(map[string]table.Matrix)
	for _, res := range a.Results {
		switch res.Order {
		case 1:
			r.Unigrams[sheetName(res.Name)] = table.BuildUnigramTable(res.Table)
		case 2:
			r.Bigrams[sheetName(res.Name)] = table.BuildBigramMatrix(res.Table, a.axis)
		}
	}
	return r
}

func sheetName(estimator string) string {
	if name, ok := sheetNames[estimator]; ok {
		return name
	}
	return estimator
}

func label(estimator string) string {
	if l, ok := labels[estimator]; ok {
		return l
	}
	return estimator
}
