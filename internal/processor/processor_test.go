package processor

import (
	"fmt"
	"testing"

	"github.com/SongJongbeen/ai-media/internal/collector"
)

func TestProcessDeduplicatesFirstWins(t *testing.T) {
	p := NewPipeline(0)

	items := []collector.Article{
		{URL: "https://example.com/1", Title: "from headline api", Category: "미국 전체"},
		{URL: "https://example.com/2", Title: "unique"},
		{URL: "https://example.com/1", Title: "same story via rss", Category: "CNN RSS"},
	}

	out := p.Process(items)
	if len(out) != 2 {
		t.Fatalf("got %d articles after dedup, want 2", len(out))
	}
	if out[0].Title != "from headline api" {
		t.Fatalf("dedup kept %q, want the first occurrence", out[0].Title)
	}
	if out[1].URL != "https://example.com/2" {
		t.Fatalf("input order not preserved: %q", out[1].URL)
	}
}

func TestProcessDropsArticlesWithoutURL(t *testing.T) {
	p := NewPipeline(0)

	out := p.Process([]collector.Article{
		{URL: "", Title: "no identity"},
		{URL: "https://example.com/1", Title: "ok"},
	})
	if len(out) != 1 || out[0].Title != "ok" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestProcessAppliesTotalCap(t *testing.T) {
	p := NewPipeline(3)

	items := make([]collector.Article, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, collector.Article{URL: fmt.Sprintf("https://example.com/%d", i)})
	}

	out := p.Process(items)
	if len(out) != 3 {
		t.Fatalf("got %d articles with cap 3", len(out))
	}
	if out[2].URL != "https://example.com/2" {
		t.Fatalf("cap should keep the head of the list, got %q", out[2].URL)
	}
}

func TestProcessZeroCapKeepsEverything(t *testing.T) {
	p := NewPipeline(0)

	items := make([]collector.Article, 0, 500)
	for i := 0; i < 500; i++ {
		items = append(items, collector.Article{URL: fmt.Sprintf("https://example.com/%d", i)})
	}

	if out := p.Process(items); len(out) != 500 {
		t.Fatalf("got %d articles with cap disabled, want 500", len(out))
	}
}
