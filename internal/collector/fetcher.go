package collector

// Article is the normalized record every source produces. All fields are
// strings: the persisted formats are CSV and JSON, and upstream timestamp
// formats vary by source, so nothing is coerced or re-parsed.
type Article struct {
	// ID is a per-run display label (category label + in-source index).
	// It is not stable across runs; URL is the identity key.
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	SourceName  string `json:"source_name"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	PublishedAt string `json:"published_at"`
	CollectedAt string `json:"collected_at"`
	Author      string `json:"author"`
}

// Fetcher abstracts one news source.
type Fetcher interface {
	Name() string
	Fetch() ([]Article, error)
}

const (
	contentLimit     = 1000
	descriptionLimit = 200
	ellipsisMarker   = "..."
)

// truncateRunes cuts s to at most limit runes and appends the ellipsis
// marker. Counting runes keeps multi-byte titles from the Korean sources
// intact. The marker is appended even when s is already short enough,
// matching the persisted format readers already depend on.
func truncateRunes(s string, limit int) string {
	rs := []rune(s)
	if len(rs) > limit {
		s = string(rs[:limit])
	}
	return s + ellipsisMarker
}
