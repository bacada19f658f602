package models

// Category is the display filter for the trend list. The trend backend does
// not supply per-keyword categories yet, so every reconciled item carries
// CategoryAll and the filter is a dormant seam.
type Category string

const (
	CategoryAll           Category = "전체"
	CategoryTech          Category = "기술"
	CategoryEntertainment Category = "엔터"
	CategorySports        Category = "스포츠"
	CategoryPolitics      Category = "정치"
	CategoryEconomy       Category = "경제"
	CategorySociety       Category = "사회"
	CategoryCulture       Category = "문화"
)

// Categories lists all selectable categories in display order.
var Categories = []Category{
	CategoryAll, CategoryTech, CategoryEntertainment, CategorySports,
	CategoryPolitics, CategoryEconomy, CategorySociety, CategoryCulture,
}

// TrendStatus represents the display direction of a trend item.
type TrendStatus string

const (
	StatusUp   TrendStatus = "up"
	StatusDown TrendStatus = "down"
	StatusSame TrendStatus = "same"
)

// TrendDataPoints is the fixed length of a TrendItem's synthetic trend
// sequence.
const TrendDataPoints = 6

// RankingRecord is one keyword as reported by the trend backend.
//
// Two schema generations coexist in deployed backends: the current one
// carries score/score24h/scoreRecent/scorePrev/diffScore, the legacy one
// totalScore/recentScore/trendScore. Score fields are pointers so that an
// absent field can be told apart from a literal zero when resolving the
// fallback chains.
type RankingRecord struct {
	ID         string `json:"id,omitempty"`
	Keyword    string `json:"keyword"`
	Type       string `json:"type,omitempty"`
	Rank       int    `json:"rank"`
	Status     string `json:"status"` // new, up, down, same
	RankChange int    `json:"rankChange,omitempty"`

	Score       *float64 `json:"score,omitempty"`
	Score24h    *float64 `json:"score24h,omitempty"`
	ScoreRecent *float64 `json:"scoreRecent,omitempty"`
	ScorePrev   *float64 `json:"scorePrev,omitempty"`
	DiffScore   *float64 `json:"diffScore,omitempty"`

	// Legacy schema.
	LegacyTotalScore  *float64 `json:"totalScore,omitempty"`
	LegacyRecentScore *float64 `json:"recentScore,omitempty"`
	LegacyTrendScore  *float64 `json:"trendScore,omitempty"`

	Articles []string `json:"articles,omitempty"`
}

// Article is a display article attached to a trend item.
type Article struct {
	ID        int    `json:"id"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Source    string `json:"source"`
	Date      string `json:"date"`
}

// TrendItem is the display-ready form of a RankingRecord.
type TrendItem struct {
	ID              int         `json:"id"`
	Rank            int         `json:"rank"`
	Keyword         string      `json:"keyword"`
	OriginalKeyword string      `json:"originalKeyword"`
	Category        Category    `json:"category"`
	Score           float64     `json:"score"`
	Description     string      `json:"description"`
	Status          TrendStatus `json:"status"`
	TrendData       []float64   `json:"trendData"`
	Articles        []Article   `json:"articles"`
}
