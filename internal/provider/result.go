// Package provider defines the provider-neutral request/result types and the
// error taxonomy for the AI generation boundary. Adapters under
// internal/adapter/provider map concrete wire formats into these types.
package provider

import "github.com/mkravets/contentangle-backend/internal/domain"

// BrandData is the brand context sent along with every generation request.
type BrandData struct {
	Name            string  `json:"name"`
	Website         string  `json:"website"`
	TargetAudience  string  `json:"targetAudience"`
	BrandTone       string  `json:"brandTone"`
	KeyOffer        string  `json:"keyOffer"`
	ImageGuidelines *string `json:"imageGuidelines,omitempty"`
}

// AngleData is the selected-angle context for idea and content generation.
type AngleData struct {
	Header      string `json:"header"`
	Description string `json:"description"`
	Tonality    string `json:"tonality"`
	Objective   string `json:"objective"`
}

// IdeaData is the content-idea context for content generation.
type IdeaData struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	ImagePrompt string `json:"imagePrompt"`
}

// AutofillResult carries the generated brand strategy fields.
type AutofillResult struct {
	TargetAudience string
	BrandTone      string
	KeyOffer       string
}

// AngleResult is one generated content angle, platform not yet assigned.
type AngleResult struct {
	Header      string
	Description string
	Tonality    string
	Objective   string
}

// IdeaResult is one generated content idea.
type IdeaResult struct {
	Topic       string
	Description string
	ImagePrompt string
}

// ContentResult is the generated text/image output for one idea.
type ContentResult struct {
	Content  string
	ImageURL string
}

// AutofillRequest asks the provider to derive brand strategy fields from the
// brand's public presence.
type AutofillRequest struct {
	BrandID        string
	Name           string
	Website        string
	AdditionalInfo string
}

// AnglesRequest asks the provider for content angles for one platform.
type AnglesRequest struct {
	BrandID        string
	Name           string
	Website        string
	AdditionalInfo string
	TargetAudience string
	BrandTone      string
	KeyOffer       string
	ImageGuidelines string
	Platform       domain.Platform
}

// IdeasRequest asks the provider for ideas derived from one angle.
type IdeasRequest struct {
	AngleID  string
	Platform domain.Platform
	Angle    AngleData
	Brand    BrandData
}

// ContentRequest asks the provider for the final content piece for one idea.
type ContentRequest struct {
	IdeaID   string
	Platform domain.Platform
	Idea     IdeaData
	Brand    BrandData
	Angle    AngleData
}
