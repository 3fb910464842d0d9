package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourcePlan is the ordered fetch plan for one collection run: headline API
// queries first, RSS feeds after. The order matters — duplicate URLs are
// resolved in favor of the source listed first.
type SourcePlan struct {
	Headlines []HeadlineQuery `yaml:"headlines"`
	Feeds     []RSSFeed       `yaml:"feeds"`
}

// HeadlineQuery selects one slice of the headline API: a country (optionally
// narrowed by category) or an explicit comma-separated source list.
type HeadlineQuery struct {
	Label    string `yaml:"label"`
	Country  string `yaml:"country,omitempty"`
	Category string `yaml:"category,omitempty"`
	Sources  string `yaml:"sources,omitempty"`
}

// RSSFeed is one fixed feed endpoint.
type RSSFeed struct {
	URL     string `yaml:"url"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

// DefaultPlan returns the built-in fetch plan: Korean, US and UK headline
// slices, one global source-list query, and six national/international
// outlets by RSS.
func DefaultPlan() SourcePlan {
	return SourcePlan{
		Headlines: []HeadlineQuery{
			{Label: "한국 전체", Country: "kr"},
			{Label: "한국 기술", Country: "kr", Category: "technology"},
			{Label: "한국 경제", Country: "kr", Category: "business"},
			{Label: "한국 연예", Country: "kr", Category: "entertainment"},

			{Label: "미국 전체", Country: "us"},
			{Label: "미국 기술", Country: "us", Category: "technology"},
			{Label: "미국 경제", Country: "us", Category: "business"},
			{Label: "미국 정치", Country: "us", Category: "politics"},

			{Label: "영국 전체", Country: "gb"},
			{Label: "영국 경제", Country: "gb", Category: "business"},
			{Label: "영국 정치", Country: "gb", Category: "politics"},

			{Label: "글로벌 주요 매체", Sources: "bbc-news,cnn,reuters,associated-press,techcrunch"},
		},
		Feeds: []RSSFeed{
			{URL: "https://feeds.yna.co.kr/news", Name: "연합뉴스", Country: "kr"},
			{URL: "https://www.mk.co.kr/rss/30000001/", Name: "매일경제", Country: "kr"},
			{URL: "http://news.chosun.com/site/data/rss/rss.xml", Name: "조선일보", Country: "kr"},
			{URL: "http://feeds.bbci.co.uk/news/rss.xml", Name: "BBC", Country: "gb"},
			{URL: "https://www.theguardian.com/world/rss", Name: "Guardian", Country: "gb"},
			{URL: "http://rss.cnn.com/rss/edition.rss", Name: "CNN", Country: "us"},
		},
	}
}

// LoadPlan reads a YAML source plan from path, or returns the built-in plan
// when path is empty.
func LoadPlan(path string) (SourcePlan, error) {
	if path == "" {
		return DefaultPlan(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return SourcePlan{}, fmt.Errorf("read sources file: %w", err)
	}

	var plan SourcePlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return SourcePlan{}, fmt.Errorf("parse sources file: %w", err)
	}
	if len(plan.Headlines) == 0 && len(plan.Feeds) == 0 {
		return SourcePlan{}, fmt.Errorf("sources file %s defines no sources", path)
	}

	return plan, nil
}
