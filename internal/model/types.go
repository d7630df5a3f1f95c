package model

import "entropylab/pkg/table"

type Estimate struct {
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	Order      int     `json:"order"`
	Stride     int     `json:"stride"`
	Separator  bool    `json:"separator"`
	Samples    int     `json:"samples"`
	Entropy    float64 `json:"entropy"`
	MaxEntropy float64 `json:"max_entropy"`
	Redundancy float64 `json:"redundancy"`
}

// Report is the result of one full analysis pass over a corpus.
type Report struct {
	ID              string                        `json:"id,omitempty"`
	StreamLength    int                           `json:"stream_length"`
	NoSpaceLength   int                           `json:"no_space_length"`
	MaxEntropy      float64                       `json:"h0"`
	MaxEntropyNoSep float64                       `json:"h0_no_space"`
	Estimates       []Estimate                    `json:"estimates"`
	Unigrams        map[string]table.UnigramTable `json:"unigrams,omitempty"`
	Bigrams         map[string]table.Matrix       `json:"bigrams,omitempty"`
}

type AnalyzeRequest struct {
	Text string `json:"text"`
	// Tables adds the unigram tables and bigram matrices to the response.
	Tables bool `json:"tables"`
}

type NormalizeRequest struct {
	Text string `json:"text"`
}

type NormalizeResponse struct {
	Text    string `json:"text"`
	NoSpace string `json:"no_space"`
}
