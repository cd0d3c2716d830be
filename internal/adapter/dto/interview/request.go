package interview

// AnalyzeRequest carries raw interview text for analysis
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

// ComposeRequest asks for a content package from an analyzed fact
type ComposeRequest struct {
	FactID string `json:"fact_id" validate:"required,uuid"`
}

// IllustrateRequest asks for generated images for a content package
type IllustrateRequest struct {
	ContentID string `json:"content_id" validate:"required,uuid"`
}

// PublishRequest pushes a content package to WordPress
type PublishRequest struct {
	ContentID string `json:"content_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"omitempty,oneof=draft publish private"`
}

// RunRequest executes the full pipeline in one call
type RunRequest struct {
	Text           string `json:"text" validate:"required"`
	GenerateImages bool   `json:"generate_images"`
	Publish        bool   `json:"publish"`
	Status         string `json:"status" validate:"omitempty,oneof=draft publish private"`
}
