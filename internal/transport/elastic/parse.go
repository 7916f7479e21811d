package elastic

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nkuhub/infosearch/internal/domain/search/hit"
)

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Score     float64             `json:"_score"`
			Source    hit.Hit             `json:"_source"`
			Highlight map[string][]string `json:"highlight"`
		} `json:"hits"`
	} `json:"hits"`
}

type suggestResponse struct {
	Suggest map[string][]struct {
		Options []struct {
			Text string `json:"text"`
		} `json:"options"`
	} `json:"suggest"`
}

// parseSearchResponse decodes the engine response into hits, carrying the
// native score and the first highlight fragment per field.
func parseSearchResponse(body io.Reader) ([]hit.Hit, error) {
	var resp searchResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	hits := make([]hit.Hit, 0, len(resp.Hits.Hits))
	for _, raw := range resp.Hits.Hits {
		h := raw.Source
		h.EngineScore = raw.Score
		if frags := raw.Highlight["title"]; len(frags) > 0 {
			h.HighlightedTitle = frags[0]
		}
		if frags := raw.Highlight["content"]; len(frags) > 0 {
			h.HighlightedContent = frags[0]
		}
		hits = append(hits, h)
	}
	return hits, nil
}

func parseSuggestResponse(body io.Reader) ([]string, error) {
	var resp suggestResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode suggest response: %w", err)
	}

	var out []string
	for _, entry := range resp.Suggest["title-suggest"] {
		for _, opt := range entry.Options {
			out = append(out, opt.Text)
		}
	}
	return out, nil
}
