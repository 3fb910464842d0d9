package service

import (
	"errors"
	"log"
	"time"

	"github.com/SongJongbeen/ai-media/internal/collector"
	"github.com/SongJongbeen/ai-media/internal/config"
	"github.com/SongJongbeen/ai-media/internal/processor"
	"github.com/SongJongbeen/ai-media/internal/storage"
)

// Status values returned by CollectAll.
const (
	StatusSuccess       = "success"
	StatusAlreadyExists = "already_exists"
	StatusError         = "error"
)

// Result summarizes one collection run.
type Result struct {
	Status        string   `json:"status"`
	Date          string   `json:"date"`
	TotalArticles int      `json:"total_articles,omitempty"`
	Files         []string `json:"files,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// Collector orchestrates one day's collection: same-day guard, ordered
// fail-soft fetching, URL dedup, persistence.
type Collector struct {
	cfg      *config.Config
	fetchers []collector.Fetcher
	pipeline *processor.Pipeline
	store    *storage.FileStore
	now      func() time.Time
}

// New builds the collector from the fetch plan: one headline fetcher per
// query, then one RSS fetcher per feed, in plan order.
func New(cfg *config.Config, plan config.SourcePlan, store *storage.FileStore) *Collector {
	fetchers := make([]collector.Fetcher, 0, len(plan.Headlines)+len(plan.Feeds))
	for _, q := range plan.Headlines {
		fetchers = append(fetchers, collector.NewHeadlineFetcher(cfg.NewsBaseURL, cfg.NewsAPIKey, collector.HeadlineQuery{
			Label:    q.Label,
			Country:  q.Country,
			Category: q.Category,
			Sources:  q.Sources,
		}))
	}
	for _, feed := range plan.Feeds {
		fetchers = append(fetchers, collector.NewRSSFetcher(collector.RSSSource{
			URL:     feed.URL,
			Name:    feed.Name,
			Country: feed.Country,
		}))
	}

	return &Collector{
		cfg:      cfg,
		fetchers: fetchers,
		pipeline: processor.NewPipeline(cfg.MaxNewsCount),
		store:    store,
		now:      config.Now,
	}
}

func (c *Collector) today() string {
	return c.now().Format("20060102")
}

// HasTodayData reports whether today's CSV and JSON files both exist.
func (c *Collector) HasTodayData() bool {
	return c.store.HasDay(c.today())
}

// CollectAll runs one full collection. With force false an already-collected
// day is left untouched and no network call is made.
func (c *Collector) CollectAll(force bool) Result {
	date := c.today()
	csvPath, jsonPath := c.store.Paths(date)

	if c.store.HasDay(date) && !force {
		log.Printf("news for %s already collected: %s, %s", date, csvPath, jsonPath)
		return Result{Status: StatusAlreadyExists, Date: date, Files: []string{csvPath, jsonPath}}
	}

	if c.cfg.NewsAPIKey == "" {
		log.Printf("NEWS_API_KEY not configured, collection aborted")
		return Result{Status: StatusError, Date: date, Message: "API key missing"}
	}

	log.Printf("collecting global news for %s from %d sources", date, len(c.fetchers))

	// Sources are fetched in plan order and fail independently: a broken
	// feed contributes zero articles and the run continues. No retries.
	var all []collector.Article
	for _, f := range c.fetchers {
		items, err := f.Fetch()
		if err != nil {
			log.Printf("fetch %s failed: %v", f.Name(), err)
			continue
		}
		log.Printf("fetch %s: %d articles", f.Name(), len(items))
		all = append(all, items...)
	}

	unique := c.pipeline.Process(all)
	log.Printf("%d unique articles after dedup", len(unique))

	collectedAt := c.now().Format(time.RFC3339)
	if err := c.store.Save(date, collectedAt, unique); err != nil {
		log.Printf("save %s failed: %v", date, err)
		return Result{Status: StatusError, Date: date, Message: err.Error()}
	}

	return Result{
		Status:        StatusSuccess,
		Date:          date,
		TotalArticles: len(unique),
		Files:         []string{csvPath, jsonPath},
	}
}

// LoadTodayData reads today's persisted CSV back for preview and stats.
// Returns storage.ErrNoData when nothing has been collected yet.
func (c *Collector) LoadTodayData() ([]collector.Article, error) {
	articles, err := c.store.LoadDay(c.today())
	if err != nil {
		if errors.Is(err, storage.ErrNoData) {
			log.Printf("no collected data for %s yet", c.today())
		} else {
			log.Printf("load %s failed: %v", c.today(), err)
		}
		return nil, err
	}
	return articles, nil
}

// CategoryCounts tallies articles per category label, preserving the
// first-seen order of the labels.
func CategoryCounts(articles []collector.Article) ([]string, map[string]int) {
	counts := make(map[string]int)
	order := make([]string, 0, 16)
	for _, a := range articles {
		if _, ok := counts[a.Category]; !ok {
			order = append(order, a.Category)
		}
		counts[a.Category]++
	}
	return order, counts
}
