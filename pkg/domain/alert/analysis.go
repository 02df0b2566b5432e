package alert

// ContentAnalysisResult is the verdict produced by the external enrichment
// pipeline for a single piece of content. It is consumed as an opaque input;
// this subsystem never runs classification itself.
//
// Scores are assumed to lie in [0,1]; callers clamp upstream. Out-of-range
// values are not rejected here, threshold comparisons simply behave leniently.
type ContentAnalysisResult struct {
	IsNsfw                  bool     `json:"is_nsfw"`
	NsfwConfidence          float64  `json:"nsfw_confidence"`
	DetectedObjects         []string `json:"detected_objects,omitempty"`
	SuggestedTags           []string `json:"suggested_tags,omitempty"`
	QualityScore            float64  `json:"quality_score"`
	IsPotentiallyMisleading bool     `json:"is_potentially_misleading"`
}

// Enrichment carries the analysis attached to an alert once the enrichment
// pipeline has processed it.
type Enrichment struct {
	Analysis *ContentAnalysisResult `json:"analysis,omitempty"`
}
