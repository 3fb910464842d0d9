package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SongJongbeen/ai-media/internal/collector"
)

// ErrNoData reports that no file exists for the requested day.
var ErrNoData = errors.New("no data for date")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvHeader is the persisted column order. LoadDay assumes the same order
// when reading the file back.
var csvHeader = []string{
	"id", "title", "description", "content", "url", "source_name",
	"category", "country", "published_at", "collected_at", "author",
}

// FileStore persists one day's batch as a CSV and a JSON file named by the
// YYYYMMDD date. Files are written once per run and fully overwritten on a
// forced re-run; there is no merging.
type FileStore struct {
	dataDir string
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

// Paths returns the CSV and JSON file paths for a date.
func (s *FileStore) Paths(date string) (csvPath, jsonPath string) {
	csvPath = filepath.Join(s.dataDir, fmt.Sprintf("news_data_%s.csv", date))
	jsonPath = filepath.Join(s.dataDir, fmt.Sprintf("news_data_%s.json", date))
	return csvPath, jsonPath
}

// HasDay reports whether both files for the date already exist. Contents
// are not validated.
func (s *FileStore) HasDay(date string) bool {
	csvPath, jsonPath := s.Paths(date)
	return fileExists(csvPath) && fileExists(jsonPath)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// dayFile is the JSON document layout.
type dayFile struct {
	CollectionDate      string              `json:"collection_date"`
	CollectionTimestamp string              `json:"collection_timestamp"`
	TotalArticles       int                 `json:"total_articles"`
	Articles            []collector.Article `json:"articles"`
}

// Save writes the batch to both files, CSV first. A failed JSON write does
// not remove the CSV already on disk.
func (s *FileStore) Save(date, collectedAt string, articles []collector.Article) error {
	csvPath, jsonPath := s.Paths(date)

	if err := writeCSV(csvPath, articles); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := writeJSON(jsonPath, date, collectedAt, articles); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func writeCSV(path string, articles []collector.Article) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// BOM so spreadsheet tools detect UTF-8 for the CJK fields.
	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, a := range articles {
		if err := w.Write(row(a)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func row(a collector.Article) []string {
	return []string{
		a.ID, a.Title, a.Description, a.Content, a.URL, a.SourceName,
		a.Category, a.Country, a.PublishedAt, a.CollectedAt, a.Author,
	}
}

func writeJSON(path, date, collectedAt string, articles []collector.Article) error {
	if articles == nil {
		articles = []collector.Article{}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc := dayFile{
		CollectionDate:      date,
		CollectionTimestamp: collectedAt,
		TotalArticles:       len(articles),
		Articles:            articles,
	}

	enc := json.NewEncoder(f)
	// Keep non-ASCII literal in the files; they are read by humans too.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// LoadDay reads the day's CSV back. Returns ErrNoData when the file is
// missing.
func (s *FileStore) LoadDay(date string) ([]collector.Article, error) {
	csvPath, _ := s.Paths(date)

	data, err := os.ReadFile(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	articles := make([]collector.Article, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(csvHeader) {
			continue
		}
		articles = append(articles, collector.Article{
			ID:          rec[0],
			Title:       rec[1],
			Description: rec[2],
			Content:     rec[3],
			URL:         rec[4],
			SourceName:  rec[5],
			Category:    rec[6],
			Country:     rec[7],
			PublishedAt: rec[8],
			CollectedAt: rec[9],
			Author:      rec[10],
		})
	}

	return articles, nil
}
