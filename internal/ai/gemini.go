package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hirerevops-backend/pkg/logger"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

	// Placeholder responses mirror what the UI shows when generation is
	// unavailable; callers never see an error from this package.
	msgNotConfigured = "AI generation unavailable. Please write description manually."
	msgEmptyResult   = "Could not generate description."
	msgAPIError      = "Error generating content. Please try again."
)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generator produces job descriptions with the Gemini API. It is an
// optional collaborator: any failure degrades to a placeholder string.
type Generator struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewGenerator(apiKey string) *Generator {
	return &Generator{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

func (g *Generator) GenerateJobDescription(ctx context.Context, title, company, location string) (string, error) {
	if g.apiKey == "" {
		return msgNotConfigured, nil
	}

	prompt := fmt.Sprintf(
		`Write a compelling and professional job description for a %q position at %q located in %q.
Structure it with an Introduction, Key Responsibilities, and Requirements.
Keep it concise (approx 150-200 words) but engaging.
Format it in Markdown.`,
		title, company, location,
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return msgAPIError, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return msgAPIError, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Log.Warn("gemini request failed", "error", err)
		return msgAPIError, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		logger.Log.Warn("gemini returned error status", "status", resp.StatusCode)
		return msgAPIError, nil
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return msgAPIError, nil
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return msgEmptyResult, nil
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return msgEmptyResult, nil
	}
	return text, nil
}
