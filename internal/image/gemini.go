package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiGenerator calls the Gemini generateContent REST endpoint and extracts
// the inline image payload. Generation parameters are fixed: low temperature
// and a bounded token ceiling, tuned for image synthesis rather than exposed
// to callers.
type GeminiGenerator struct {
	Client  *http.Client
	Key     string
	Model   string
	BaseURL string
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("gemini").With("model", g.Model)
	log.Info("generating image")

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.4,
			TopK:            32,
			TopP:            1,
			MaxOutputTokens: 4096,
		},
	})
	if err != nil {
		return "", err
	}

	base := g.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", base, g.Model, g.Key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return "", errors.New(errResp.Error.Message)
		}
		return "", errors.New("Failed to generate image")
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", err
	}

	for _, cand := range genResp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				log.Info("received inline image", "mime", p.InlineData.MimeType)
				return p.InlineData.Data, nil
			}
		}
	}
	return "", errors.New("No image data received from Gemini")
}
