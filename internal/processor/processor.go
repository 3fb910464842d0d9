package processor

import (
	"github.com/SongJongbeen/ai-media/internal/collector"
)

// Pipeline applies the post-fetch rules before persistence: first-wins
// deduplication by URL, then an optional cap on the total batch size.
type Pipeline struct {
	maxTotal int
}

// NewPipeline returns a pipeline capping the batch at maxTotal articles.
// A non-positive maxTotal disables the cap.
func NewPipeline(maxTotal int) *Pipeline {
	return &Pipeline{maxTotal: maxTotal}
}

// Process deduplicates by URL, keeping the first occurrence in input order.
// Articles without a URL are dropped: URL is the identity key.
func (p *Pipeline) Process(items []collector.Article) []collector.Article {
	out := make([]collector.Article, 0, len(items))
	seen := make(map[string]struct{})

	for _, it := range items {
		if it.URL == "" {
			continue
		}
		if _, ok := seen[it.URL]; ok {
			continue
		}
		seen[it.URL] = struct{}{}
		out = append(out, it)
	}

	if p.maxTotal > 0 && len(out) > p.maxTotal {
		out = out[:p.maxTotal]
	}

	return out
}
