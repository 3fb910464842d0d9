package collector

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	rssMaxEntries = 10
	rssTimeout    = 10 * time.Second
)

// RSSSource is one configured feed.
type RSSSource struct {
	URL     string
	Name    string
	Country string
}

// RSSFetcher pulls the newest entries from a single RSS feed.
type RSSFetcher struct {
	Source RSSSource
	Parser *gofeed.Parser
	Now    func() time.Time
}

func NewRSSFetcher(src RSSSource) *RSSFetcher {
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: rssTimeout}
	return &RSSFetcher{Source: src, Parser: p, Now: time.Now}
}

func (f *RSSFetcher) Name() string { return f.Source.Name }

func (f *RSSFetcher) Fetch() ([]Article, error) {
	feed, err := f.Parser.ParseURL(f.Source.URL)
	if err != nil {
		return nil, fmt.Errorf("rss %s: %w", f.Source.Name, err)
	}

	collectedAt := f.Now().Format(time.RFC3339)
	category := f.Source.Name + " RSS"

	articles := make([]Article, 0, rssMaxEntries)
	for _, entry := range feed.Items {
		if len(articles) >= rssMaxEntries {
			break
		}
		// URL is the identity key downstream; a linkless entry is useless.
		if entry.Link == "" {
			continue
		}

		// No title/description gate here: feeds without summaries fall
		// back to the entry title.
		summary := entry.Description
		if summary == "" {
			summary = entry.Title
		}

		content := ""
		if entry.Content != "" {
			content = truncateRunes(entry.Content, contentLimit)
		}

		published := entry.Published
		if published == "" {
			published = collectedAt
		}

		author := "Unknown"
		if entry.Author != nil && entry.Author.Name != "" {
			author = entry.Author.Name
		}

		articles = append(articles, Article{
			ID:          fmt.Sprintf("%s_%d", f.Source.Name, len(articles)),
			Title:       entry.Title,
			Description: truncateRunes(summary, descriptionLimit),
			Content:     content,
			URL:         entry.Link,
			SourceName:  f.Source.Name,
			Category:    category,
			Country:     f.Source.Country,
			PublishedAt: published,
			CollectedAt: collectedAt,
			Author:      author,
		})
	}

	return articles, nil
}
