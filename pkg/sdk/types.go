package sdk

// Float returns a pointer to v, for optional request fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for optional request fields.
func Int(v int) *int { return &v }

// String returns a pointer to v, for optional request fields.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for optional request fields.
func Bool(v bool) *bool { return &v }

// Tutor is a tutor profile as returned by the service.
type Tutor struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name,omitempty"`
	FullName        string   `json:"full_name"`
	Qualifications  []string `json:"qualifications"`
	Bio             string   `json:"bio,omitempty"`
	TeachingStyle   string   `json:"teaching_style,omitempty"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	AverageRating   *float64 `json:"average_rating,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	IsOnline        bool     `json:"is_online"`
}

// TutorAttributes is the payload for creating or upserting a tutor.
type TutorAttributes struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Qualifications  []string `json:"qualifications"`
	Bio             string   `json:"bio"`
	TeachingStyle   string   `json:"teaching_style"`
	HourlyRate      *float64 `json:"hourly_rate"`
	ExperienceYears int      `json:"experience_years"`
	IsOnline        bool     `json:"is_online"`
}

// TutorPatch is a partial update. Nil fields are left unchanged.
type TutorPatch struct {
	FirstName       *string   `json:"first_name,omitempty"`
	LastName        *string   `json:"last_name,omitempty"`
	Qualifications  *[]string `json:"qualifications,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	TeachingStyle   *string   `json:"teaching_style,omitempty"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	IsOnline        *bool     `json:"is_online,omitempty"`
}

// BulkItem is the per-tutor outcome of a bulk upsert.
type BulkItem struct {
	ID     string `json:"id"`
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error,omitempty"`
}

// BulkResult summarizes a bulk upsert.
type BulkResult struct {
	Items     []BulkItem `json:"items"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
}

// ReviewInput is the payload for adding a review.
type ReviewInput struct {
	StudentName         string  `json:"student_name"`
	Rating              float64 `json:"rating"`
	Comment             string  `json:"comment"`
	KnowledgeRating     *int    `json:"knowledge_rating,omitempty"`
	TeachingStyleRating *int    `json:"teaching_style_rating,omitempty"`
	CommunicationRating *int    `json:"communication_rating,omitempty"`
}

// Review is a stored student review.
type Review struct {
	ID                  string  `json:"id"`
	TutorID             string  `json:"tutor_id"`
	StudentName         string  `json:"student_name,omitempty"`
	Rating              float64 `json:"rating"`
	Comment             string  `json:"comment,omitempty"`
	KnowledgeRating     *int    `json:"knowledge_rating,omitempty"`
	TeachingStyleRating *int    `json:"teaching_style_rating,omitempty"`
	CommunicationRating *int    `json:"communication_rating,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

// AddReviewResult is the outcome of adding a review: the stored review,
// the tutor's recomputed average rating (nil when no rating exists) and
// a sentiment reading of the comment (nil for blank comments).
type AddReviewResult struct {
	Review        Review    `json:"review"`
	AverageRating *float64  `json:"average_rating,omitempty"`
	Sentiment     *Analysis `json:"sentiment,omitempty"`
}

// RecommendRequest holds recommendation query parameters. A zero Limit
// uses the service default of 10.
type RecommendRequest struct {
	Query      string   `json:"query"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	OnlineOnly bool     `json:"online_only,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// TermMatch is one shared term with its weight in each vector.
type TermMatch struct {
	Term         string  `json:"term"`
	QueryWeight  float64 `json:"query_weight"`
	TutorWeight  float64 `json:"tutor_weight"`
	Contribution float64 `json:"contribution"`
}

// Factor is one named contributor to a recommendation.
type Factor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Keywords    []string `json:"keywords,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

// Explanation is the evidence behind one recommendation.
type Explanation struct {
	Summary          string      `json:"summary"`
	Strength         string      `json:"strength"`
	MatchingKeywords []string    `json:"matching_keywords"`
	DetailedMatches  []TermMatch `json:"detailed_matches"`
	Factors          []Factor    `json:"factors"`
}

// Recommendation is one ranked match.
type Recommendation struct {
	Rank            int         `json:"rank"`
	Tutor           Tutor       `json:"tutor"`
	Similarity      float64     `json:"similarity_score"`
	MatchPercentage float64     `json:"match_percentage"`
	Explanation     Explanation `json:"explanation"`
}

// WeightedTerm is a vocabulary term with its TF-IDF weight.
type WeightedTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Insight breaks down how a query scores against a single tutor.
type Insight struct {
	Query          string         `json:"query"`
	TutorID        string         `json:"tutor_id"`
	TutorName      string         `json:"tutor_name"`
	Similarity     float64        `json:"similarity_score"`
	Explanation    Explanation    `json:"explanation"`
	QueryTerms     []WeightedTerm `json:"query_terms"`
	MatchingTerms  []TermMatch    `json:"matching_terms"`
	VocabularySize int            `json:"vocabulary_size"`
}

// Analysis is a sentiment reading of one piece of text.
type Analysis struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Sentiment    string  `json:"sentiment"`
	Confidence   string  `json:"confidence"`
	WordCount    int     `json:"word_count"`
}

// SentenceScore is the per-sentence breakdown of a detailed analysis.
type SentenceScore struct {
	Text      string  `json:"text"`
	Polarity  float64 `json:"polarity"`
	Sentiment string  `json:"sentiment"`
}

// Emotions flags emotional signals detected in review text.
type Emotions struct {
	Joy          bool `json:"joy"`
	Gratitude    bool `json:"gratitude"`
	Frustration  bool `json:"frustration"`
	Satisfaction bool `json:"satisfaction"`
	Confusion    bool `json:"confusion"`
	Enthusiasm   bool `json:"enthusiasm"`
}

// Moderation is the automated review-moderation verdict.
type Moderation struct {
	AutoApprove    bool     `json:"auto_approve"`
	Action         string   `json:"action"`
	Issues         []string `json:"issues"`
	ReviewPriority string   `json:"review_priority,omitempty"`
}

// DetailedAnalysis extends Analysis with per-sentence scores, emotion
// flags and a moderation verdict.
type DetailedAnalysis struct {
	Analysis
	Sentences  []SentenceScore `json:"sentences"`
	Emotions   Emotions        `json:"emotions"`
	Moderation Moderation      `json:"moderation"`
}

// Distribution counts reviews per sentiment label.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Percentage is the share of reviews per sentiment label.
type Percentage struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Summary aggregates sentiment over a set of reviews.
type Summary struct {
	TotalReviews    int          `json:"total_reviews"`
	AveragePolarity float64      `json:"average_polarity"`
	Overall         string       `json:"overall"`
	Distribution    Distribution `json:"distribution"`
	Percentage      Percentage   `json:"percentage"`
}

// BatchAnalysis is the outcome of analyzing several comments at once.
type BatchAnalysis struct {
	Count   int        `json:"count"`
	Results []Analysis `json:"results"`
	Summary Summary    `json:"summary"`
}

// ModelStats describes a fitted pricing regression.
type ModelStats struct {
	SamplesUsed    int     `json:"samples_used"`
	Intercept      float64 `json:"intercept"`
	Coefficient    float64 `json:"coefficient"`
	R2Score        float64 `json:"r2_score"`
	RMSE           float64 `json:"rmse"`
	MeanRate       float64 `json:"mean_rate"`
	MinRate        float64 `json:"min_rate"`
	MaxRate        float64 `json:"max_rate"`
	Interpretation string  `json:"interpretation"`
}

// Estimate is a suggested hourly rate with its provenance.
type Estimate struct {
	SuggestedRate     float64     `json:"suggested_hourly_rate"`
	BaseRate          float64     `json:"base_rate"`
	PremiumMultiplier float64     `json:"premium_multiplier"`
	Method            string      `json:"method"`
	Confidence        string      `json:"confidence"`
	Stats             *ModelStats `json:"model_stats,omitempty"`
	Reason            string      `json:"reason,omitempty"`
	Formula           string      `json:"formula,omitempty"`
	ExperienceYears   int         `json:"experience_years"`
	Subject           string      `json:"subject,omitempty"`
}

// RateStats summarizes observed hourly rates.
type RateStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Std    float64 `json:"std"`
}

// ExperienceStats summarizes observed experience years.
type ExperienceStats struct {
	Mean float64 `json:"mean"`
	Min  int     `json:"min"`
	Max  int     `json:"max"`
}

// Percentiles are rate distribution cut points.
type Percentiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// MarketReport is the pricing landscape for a subject.
type MarketReport struct {
	SubjectFilter string          `json:"subject_filter"`
	SampleSize    int             `json:"sample_size"`
	Rates         RateStats       `json:"rates"`
	Experience    ExperienceStats `json:"experience"`
	Percentiles   Percentiles     `json:"percentiles"`
}

// HealthStatus is the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded", "error"
	Checks map[string]string `json:"checks"`
}

// VersionInfo is the running service build.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// ScopeUsage is today's quota consumption for one scope.
type ScopeUsage struct {
	Used      int64 `json:"used"`
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
}

// ServiceStats is the recommendation service health snapshot.
type ServiceStats struct {
	TotalTutors   int64                 `json:"total_tutors"`
	TotalReviews  int64                 `json:"total_reviews"`
	RequestsToday map[string]ScopeUsage `json:"requests_today"`
}
