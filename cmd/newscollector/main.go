package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/SongJongbeen/ai-media/internal/config"
	"github.com/SongJongbeen/ai-media/internal/scheduler"
	"github.com/SongJongbeen/ai-media/internal/service"
	"github.com/SongJongbeen/ai-media/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var force bool

	root := &cobra.Command{
		Use:          "newscollector",
		Short:        "Collect global news headlines into daily CSV/JSON files",
		SilenceUsage: true,
		// Bare invocation behaves like `collect`.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(force)
		},
	}
	root.Flags().BoolVar(&force, "force", false, "re-collect even if today's files already exist")

	collect := &cobra.Command{
		Use:   "collect",
		Short: "Run one collection and print the per-category summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(force)
		},
	}
	collect.Flags().BoolVar(&force, "force", false, "re-collect even if today's files already exist")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Print the per-category summary for today's collected data",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newCollector()
			if err != nil {
				return err
			}
			return printSummary(c)
		},
	}

	daemon := &cobra.Command{
		Use:   "daemon",
		Short: "Run the cron-scheduled daily collection loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon()
		},
	}

	root.AddCommand(collect, stats, daemon)
	return root
}

func newCollector() (*service.Collector, *config.Config, error) {
	cfg := config.Load()

	plan, err := config.LoadPlan(cfg.SourcesFile)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}

	return service.New(cfg, plan, store), cfg, nil
}

func runCollect(force bool) error {
	c, _, err := newCollector()
	if err != nil {
		return err
	}

	res := c.CollectAll(force)
	switch res.Status {
	case service.StatusAlreadyExists:
		fmt.Printf("Today's news (%s) is already collected.\n", res.Date)
		fmt.Printf("Files: %s\n", strings.Join(res.Files, ", "))
	case service.StatusError:
		return fmt.Errorf("collection failed: %s", res.Message)
	default:
		fmt.Printf("Collected %d articles for %s.\n", res.TotalArticles, res.Date)
	}

	return printSummary(c)
}

func printSummary(c *service.Collector) error {
	articles, err := c.LoadTodayData()
	if err != nil {
		if errors.Is(err, storage.ErrNoData) {
			fmt.Println("No data collected today.")
			return nil
		}
		return err
	}

	order, counts := service.CategoryCounts(articles)

	// Pad by display width, not byte length: most category labels are CJK.
	width := 0
	for _, label := range order {
		if w := runewidth.StringWidth(label); w > width {
			width = w
		}
	}

	fmt.Printf("Articles by category (%d total):\n", len(articles))
	for _, label := range order {
		fmt.Printf("  %s  %d\n", runewidth.FillRight(label, width), counts[label])
	}
	return nil
}

func runDaemon() error {
	c, cfg, err := newCollector()
	if err != nil {
		return err
	}

	s, err := scheduler.New(cfg.CronSpec, c)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	log.Printf("starting collection daemon (cron %q)", cfg.CronSpec)
	s.Start()
	select {}
}
