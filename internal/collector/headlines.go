package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	headlinePageSize     = 20
	headlineTimeout      = 10 * time.Second
	headlineMaxBodyBytes = 1 << 20 // 1MB
)

// HeadlineQuery describes one top-headlines request: either a country
// (optionally narrowed by a category) or an explicit source list.
type HeadlineQuery struct {
	Label    string
	Country  string
	Category string
	Sources  string
}

// HeadlineFetcher pulls a single configured query from the headline API.
type HeadlineFetcher struct {
	BaseURL string
	APIKey  string
	Query   HeadlineQuery
	Client  *http.Client
	Now     func() time.Time
}

func NewHeadlineFetcher(baseURL, apiKey string, q HeadlineQuery) *HeadlineFetcher {
	return &HeadlineFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Query:   q,
		Client:  &http.Client{Timeout: headlineTimeout},
		Now:     time.Now,
	}
}

func (f *HeadlineFetcher) Name() string { return f.Query.Label }

type headlineResponse struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []headlineArticle `json:"articles"`
}

type headlineArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

func (f *HeadlineFetcher) Fetch() ([]Article, error) {
	q := f.Query

	params := url.Values{}
	params.Set("apiKey", f.APIKey)
	params.Set("pageSize", strconv.Itoa(headlinePageSize))

	// Korean headlines are requested without a language filter; everything
	// else is narrowed to English.
	switch {
	case q.Sources != "":
		params.Set("sources", q.Sources)
		params.Set("language", "en")
	case q.Country == "kr":
		params.Set("country", "kr")
	default:
		params.Set("country", q.Country)
		params.Set("language", "en")
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	resp, err := f.Client.Get(f.BaseURL + "/top-headlines?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("headlines %s: %w", q.Label, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("headlines %s: unexpected status %d", q.Label, resp.StatusCode)
	}

	var payload headlineResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, headlineMaxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("headlines %s: decode response: %w", q.Label, err)
	}

	log.Printf("headlines %s: %d total results", q.Label, payload.TotalResults)

	country := q.Country
	if country == "" {
		country = "global"
	}
	collectedAt := f.Now().Format(time.RFC3339)

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		// Only keep articles that carry both a title and a description.
		if a.Title == "" || a.Description == "" {
			continue
		}

		content := ""
		if a.Content != "" {
			content = truncateRunes(a.Content, contentLimit)
		}

		author := a.Author
		if author == "" {
			author = "Unknown"
		}

		articles = append(articles, Article{
			ID:          fmt.Sprintf("%s_%d", q.Label, len(articles)),
			Title:       a.Title,
			Description: a.Description,
			Content:     content,
			URL:         a.URL,
			SourceName:  a.Source.Name,
			Category:    q.Label,
			Country:     country,
			PublishedAt: a.PublishedAt,
			CollectedAt: collectedAt,
			Author:      author,
		})
	}

	return articles, nil
}
