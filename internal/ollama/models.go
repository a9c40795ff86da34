package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// ModelInfo describes an installed Ollama model.
type ModelInfo struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modified_at"`
}

type listModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// ListModels lists all models available on the Ollama server.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	url := fmt.Sprintf("%s/api/tags", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama API error: %d - %s", resp.StatusCode, string(body))
	}

	var result listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Models, nil
}

// ResolveModel verifies the configured chat model exists on the server,
// or picks a sensible installed model when none is configured.
func (c *Client) ResolveModel(ctx context.Context) (string, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return "", err
	}
	if len(models) == 0 {
		return "", fmt.Errorf("no models available")
	}

	if c.model != "" {
		for _, m := range models {
			if m.Name == c.model {
				return c.model, nil
			}
		}
		// Configured model not installed, fall through to selection.
	}

	// Prefer models known to follow instructions well.
	preferred := []string{"llama3.2", "llama3.1", "qwen2.5", "mistral", "llama3", "llama2"}
	for _, want := range preferred {
		for _, m := range models {
			if strings.Contains(strings.ToLower(m.Name), want) {
				return m.Name, nil
			}
		}
	}

	// Otherwise take the largest installed model.
	sort.Slice(models, func(i, j int) bool {
		return models[i].Size > models[j].Size
	})
	return models[0].Name, nil
}
