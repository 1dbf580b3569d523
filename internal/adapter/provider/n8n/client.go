// Package n8n implements the generation provider against an n8n-style
// workflow webhook. Every operation POSTs a tagged envelope
// {identifier, data} and normalizes the response, which arrives in one of
// several shapes depending on how the upstream workflow terminates.
package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mkravets/contentangle-backend/internal/config"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
)

// Identifiers of the four workflow operations.
const (
	identifierAutofill        = "autofill"
	identifierGenerateAngles  = "generateAngles"
	identifierGenerateIdeas   = "generateIdeas"
	identifierGenerateContent = "generateContent"
)

// Client talks to the generation webhook.
type Client struct {
	webhookURL string
	authHeader string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from GenerationConfig.
func NewClient(cfg config.GenerationConfig, logger *slog.Logger) *Client {
	return &Client{
		webhookURL: cfg.WebhookURL,
		authHeader: cfg.AuthHeader,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "n8n"),
	}
}

// envelope is the tagged request every workflow operation receives.
type envelope struct {
	Identifier string `json:"identifier"`
	Data       any    `json:"data"`
}

// Autofill derives brand strategy fields from the brand's public presence.
func (c *Client) Autofill(ctx context.Context, req provider.AutofillRequest) (*provider.AutofillResult, error) {
	body, err := c.post(ctx, identifierAutofill, autofillData{
		BrandID:        req.BrandID,
		Name:           req.Name,
		Website:        req.Website,
		AdditionalInfo: omitEmpty(req.AdditionalInfo),
	})
	if err != nil {
		return nil, err
	}

	return decodeAutofill(body)
}

// GenerateAngles requests content angles for a single platform. The wire
// carries a one-element platforms list; batching across platforms is the
// caller's concern (one round trip per platform).
func (c *Client) GenerateAngles(ctx context.Context, req provider.AnglesRequest) ([]provider.AngleResult, error) {
	if !req.Platform.IsValid() {
		return nil, domain.NewValidationError("platform", fmt.Sprintf("unknown platform %q", req.Platform))
	}

	body, err := c.post(ctx, identifierGenerateAngles, anglesData{
		BrandID:         req.BrandID,
		Name:            req.Name,
		Website:         req.Website,
		AdditionalInfo:  omitEmpty(req.AdditionalInfo),
		TargetAudience:  omitEmpty(req.TargetAudience),
		BrandTone:       omitEmpty(req.BrandTone),
		KeyOffer:        omitEmpty(req.KeyOffer),
		ImageGuidelines: omitEmpty(req.ImageGuidelines),
		Platforms:       []string{req.Platform.String()},
	})
	if err != nil {
		return nil, err
	}

	return decodeAngles(body)
}

// GenerateIdeas requests content ideas derived from one angle.
func (c *Client) GenerateIdeas(ctx context.Context, req provider.IdeasRequest) ([]provider.IdeaResult, error) {
	if !req.Platform.IsValid() {
		return nil, domain.NewValidationError("platform", fmt.Sprintf("unknown platform %q", req.Platform))
	}

	body, err := c.post(ctx, identifierGenerateIdeas, ideasData{
		AngleID:       req.AngleID,
		Platform:      req.Platform.String(),
		SelectedAngle: req.Angle,
		BrandData:     req.Brand,
	})
	if err != nil {
		return nil, err
	}

	return decodeIdeas(body)
}

// GenerateContent requests the final content piece for one idea.
func (c *Client) GenerateContent(ctx context.Context, req provider.ContentRequest) (*provider.ContentResult, error) {
	if !req.Platform.IsValid() {
		return nil, domain.NewValidationError("platform", fmt.Sprintf("unknown platform %q", req.Platform))
	}

	body, err := c.post(ctx, identifierGenerateContent, contentData{
		IdeaID:        req.IdeaID,
		Platform:      req.Platform.String(),
		ContentIdea:   req.Idea,
		BrandData:     req.Brand,
		SelectedAngle: req.Angle,
	})
	if err != nil {
		return nil, err
	}

	return decodeContent(body)
}

// post sends the tagged envelope and returns the raw response body.
// Transport failures, non-2xx statuses and unreadable bodies map to the
// provider error taxonomy.
func (c *Client) post(ctx context.Context, identifier string, data any) ([]byte, error) {
	payload, err := json.Marshal(envelope{Identifier: identifier, Data: data})
	if err != nil {
		return nil, fmt.Errorf("n8n: marshal %s request: %w", identifier, err)
	}

	c.log.DebugContext(ctx, "generation request", slog.String("identifier", identifier))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("n8n: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "generation request failed",
			slog.String("identifier", identifier),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("n8n: %s: %w: %v", identifier, provider.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("n8n: %s: read body: %w", identifier, provider.ErrUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "generation request rejected",
			slog.String("identifier", identifier),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &provider.StatusError{Code: resp.StatusCode, Message: errorMessage(body)}
	}

	c.log.DebugContext(ctx, "generation response",
		slog.String("identifier", identifier),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return body, nil
}

// errorMessage pulls a human-readable message out of an error response body.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return ""
}

func omitEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Wire shapes of the data field, one per identifier.

type autofillData struct {
	BrandID        string  `json:"brandId"`
	Name           string  `json:"name"`
	Website        string  `json:"website"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
}

type anglesData struct {
	BrandID         string   `json:"brandId"`
	Name            string   `json:"name"`
	Website         string   `json:"website"`
	AdditionalInfo  *string  `json:"additionalInfo,omitempty"`
	TargetAudience  *string  `json:"targetAudience,omitempty"`
	BrandTone       *string  `json:"brandTone,omitempty"`
	KeyOffer        *string  `json:"keyOffer,omitempty"`
	ImageGuidelines *string  `json:"imageGuidelines,omitempty"`
	Platforms       []string `json:"platforms"`
}

type ideasData struct {
	AngleID       string             `json:"angleId"`
	Platform      string             `json:"platform"`
	SelectedAngle provider.AngleData `json:"selectedAngle"`
	BrandData     provider.BrandData `json:"brandData"`
}

type contentData struct {
	IdeaID        string             `json:"ideaId"`
	Platform      string             `json:"platform"`
	ContentIdea   provider.IdeaData  `json:"contentIdea"`
	BrandData     provider.BrandData `json:"brandData"`
	SelectedAngle provider.AngleData `json:"selectedAngle"`
}
