package request

type SubmitAnalysisRequest struct {
	IsNsfw                  bool     `json:"is_nsfw"`
	NsfwConfidence          float64  `json:"nsfw_confidence"`
	DetectedObjects         []string `json:"detected_objects,omitempty"`
	SuggestedTags           []string `json:"suggested_tags,omitempty"`
	QualityScore            float64  `json:"quality_score"`
	IsPotentiallyMisleading bool     `json:"is_potentially_misleading"`
}
