package rest

import (
	"time"

	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/hierarchy"
)

type statsResponse struct {
	IdeaCount      int `json:"ideaCount"`
	GeneratedCount int `json:"generatedCount"`
	PendingCount   int `json:"pendingCount"`
}

type angleResponse struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brandId"`
	Platform    string    `json:"platform"`
	Header      string    `json:"header"`
	Description string    `json:"description"`
	Tonality    string    `json:"tonality"`
	Objective   string    `json:"objective"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ideaResponse struct {
	ID          string    `json:"id"`
	AngleID     string    `json:"angleId"`
	Platform    string    `json:"platform"`
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	ImagePrompt string    `json:"imagePrompt"`
	CreatedAt   time.Time `json:"createdAt"`
}

type generatedContentResponse struct {
	ID        string    `json:"id"`
	IdeaID    string    `json:"ideaId"`
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ideaNodeResponse struct {
	ideaResponse
	Generated  []generatedContentResponse `json:"generated"`
	HasContent bool                       `json:"hasContent"`
}

type angleNodeResponse struct {
	angleResponse
	Ideas []ideaNodeResponse `json:"ideas"`
	Stats statsResponse      `json:"stats"`
}

type platformGroupResponse struct {
	Platform string              `json:"platform"`
	Angles   []angleNodeResponse `json:"angles"`
	Stats    statsResponse       `json:"stats"`
}

type brandTreeResponse struct {
	brandResponse
	Platforms []platformGroupResponse `json:"platforms"`
	Stats     statsResponse           `json:"stats"`
}

func toStatsResponse(s hierarchy.Stats) statsResponse {
	return statsResponse{
		IdeaCount:      s.IdeaCount,
		GeneratedCount: s.GeneratedCount,
		PendingCount:   s.PendingCount,
	}
}

func toAngleResponse(a domain.ContentAngle) angleResponse {
	return angleResponse{
		ID:          a.ID.String(),
		BrandID:     a.BrandID.String(),
		Platform:    a.Platform.String(),
		Header:      a.Header,
		Description: a.Description,
		Tonality:    a.Tonality,
		Objective:   a.Objective,
		CreatedAt:   a.CreatedAt,
	}
}

func toIdeaResponse(i domain.ContentIdea) ideaResponse {
	return ideaResponse{
		ID:          i.ID.String(),
		AngleID:     i.AngleID.String(),
		Platform:    i.Platform.String(),
		Topic:       i.Topic,
		Description: i.Description,
		ImagePrompt: i.ImagePrompt,
		CreatedAt:   i.CreatedAt,
	}
}

func toGeneratedContentResponse(gc domain.GeneratedContent) generatedContentResponse {
	return generatedContentResponse{
		ID:        gc.ID.String(),
		IdeaID:    gc.IdeaID.String(),
		Platform:  gc.Platform.String(),
		Content:   gc.Content,
		ImageURL:  gc.ImageURL,
		CreatedAt: gc.CreatedAt,
		UpdatedAt: gc.UpdatedAt,
	}
}

func toIdeaNodeResponse(n hierarchy.IdeaNode) ideaNodeResponse {
	generated := make([]generatedContentResponse, 0, len(n.Generated))
	for _, gc := range n.Generated {
		generated = append(generated, toGeneratedContentResponse(gc))
	}
	return ideaNodeResponse{
		ideaResponse: toIdeaResponse(n.ContentIdea),
		Generated:    generated,
		HasContent:   n.HasContent,
	}
}

func toBrandTreeResponse(t hierarchy.BrandTree) brandTreeResponse {
	platforms := make([]platformGroupResponse, 0, len(t.Platforms))
	for _, pg := range t.Platforms {
		angles := make([]angleNodeResponse, 0, len(pg.Angles))
		for _, an := range pg.Angles {
			ideas := make([]ideaNodeResponse, 0, len(an.Ideas))
			for _, in := range an.Ideas {
				ideas = append(ideas, toIdeaNodeResponse(in))
			}
			angles = append(angles, angleNodeResponse{
				angleResponse: toAngleResponse(an.ContentAngle),
				Ideas:         ideas,
				Stats:         toStatsResponse(an.Stats),
			})
		}
		platforms = append(platforms, platformGroupResponse{
			Platform: pg.Platform.String(),
			Angles:   angles,
			Stats:    toStatsResponse(pg.Stats),
		})
	}
	return brandTreeResponse{
		brandResponse: toBrandResponse(t.Brand),
		Platforms:     platforms,
		Stats:         toStatsResponse(t.Stats),
	}
}
