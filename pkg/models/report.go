package models

import "encoding/json"

// ReportRanking is one row of the data-report ranking endpoint.
// freqSum has been observed both as a JSON string and as a number, so it is
// decoded as json.Number.
type ReportRanking struct {
	ID             string      `json:"id"`
	NormalizedText string      `json:"normalizedText"`
	FreqSum        json.Number `json:"freqSum"`
	ScoreSum       float64     `json:"scoreSum"`
}

// TimeSeriesPoint is one bucket of a keyword's time series. The backend
// returns buckets newest-first; callers reverse them before charting.
type TimeSeriesPoint struct {
	BucketTime string  `json:"bucketTime"`
	FreqSum    float64 `json:"freqSum"`
	ScoreSum   float64 `json:"scoreSum"`
}

// RelatedArticle is an article associated with a report keyword.
type RelatedArticle struct {
	ID          string  `json:"id"`
	Publisher   string  `json:"publisher"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
	Weight      float64 `json:"weight"`
}

// RelatedKeyword is a co-occurring keyword with its association strength.
type RelatedKeyword struct {
	ID               string      `json:"id"`
	NormalizedText   string      `json:"normalizedText"`
	CoCount          json.Number `json:"coCount"`
	WeightSum        float64     `json:"weightSum"`
	AssociationScore float64     `json:"associationScore"`
}

// KeywordHit is one result of the keyword search endpoint.
type KeywordHit struct {
	ID             string `json:"id"`
	NormalizedText string `json:"normalizedText"`
}

// ReportArticle is the display form of a related article in the report view.
type ReportArticle struct {
	Title  string  `json:"title"`
	Source string  `json:"source"`
	Weight float64 `json:"weight"`
	URL    string  `json:"url,omitempty"`
}

// AnalysisFactor describes one influence behind a keyword's rise.
type AnalysisFactor struct {
	Type        string   `json:"type"` // trigger, amplifier, sustainer, related
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"` // high, medium, low
	Evidence    []string `json:"evidence,omitempty"`
}

// TrendPattern classifies the shape of a keyword's trend curve.
type TrendPattern struct {
	Pattern     string `json:"pattern"` // sudden_spike, gradual_rise, sustained, fluctuating
	Description string `json:"description"`
	PeakTime    string `json:"peakTime,omitempty"`
}

// ExpectedDuration estimates how long a keyword will stay trending.
type ExpectedDuration struct {
	Level       string `json:"level"` // short, medium, long
	Description string `json:"description"`
}

// KeywordAnalysis is an optional editorial analysis of a keyword.
type KeywordAnalysis struct {
	Summary          string            `json:"summary"`
	Factors          []AnalysisFactor  `json:"factors"`
	TrendPattern     TrendPattern      `json:"trendPattern"`
	ExpectedDuration *ExpectedDuration `json:"expectedDuration,omitempty"`
	RelatedIssues    []string          `json:"relatedIssues,omitempty"`
}

// KeywordData is the display-ready form of a report keyword, assembled from
// the ranking row plus on-demand detail facets.
type KeywordData struct {
	ID              string            `json:"id,omitempty"`
	Rank            int               `json:"rank"`
	Keyword         string            `json:"keyword"`
	Score           float64           `json:"score"`
	Change          int               `json:"change"` // percent vs trailing average
	Status          TrendStatus       `json:"status"`
	TrendData       []float64         `json:"trendData"`
	TimeSeries      []TimeSeriesPoint `json:"timeSeriesData,omitempty"`
	RelatedKeywords []string          `json:"relatedKeywords,omitempty"`
	Articles        []ReportArticle   `json:"articles,omitempty"`
	Analysis        *KeywordAnalysis  `json:"analysis,omitempty"`
}
