package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hansifer/anagram-server/internal/config"
	"github.com/hansifer/anagram-server/internal/models"
	"github.com/hansifer/anagram-server/pkg/anagram"
	"github.com/hansifer/anagram-server/pkg/fetcher"
	"github.com/hansifer/anagram-server/pkg/parser"
	"github.com/schollz/progressbar/v3"
)

// App represents the main application
type App struct {
	config  *config.Config
	fetcher *fetcher.Fetcher
	parser  *parser.Parser
	service *anagram.Service
}

// New creates a new instance of the application
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	f := fetcher.New(fetcher.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Timeout:           time.Duration(cfg.HTTPClient.Timeout) * time.Second,
		MaxRetries:        cfg.HTTPClient.MaxRetries,
		UserAgent:         cfg.HTTPClient.UserAgent,
	})

	return &App{
		config:  cfg,
		fetcher: f,
		parser:  parser.New(),
		service: anagram.NewInMemory(),
	}, nil
}

// Run loads the dictionary and executes the configured queries.
func (a *App) Run(ctx context.Context) (*models.Report, error) {
	startTime := time.Now()

	src, err := a.dictionarySource(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Println("Loading dictionary...")
	bar := progressbar.NewOptions(len(src),
		progressbar.OptionSetDescription("Indexing words..."),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	reader := progressbar.NewReader(bytes.NewReader(src), bar)
	load, err := a.service.Load(&reader)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	bar.Finish()

	report := &models.Report{Load: load}

	if a.config.Output.IncludeStats {
		stats := a.service.Stats()
		report.Stats = &stats
	}
	if a.config.Output.LargestGroups {
		report.Largest = a.service.MaxCardinalityAnagrams()
	}
	if a.config.Output.LongestGroups {
		report.Longest = a.service.MaxLengthAnagrams()
	}
	if b := a.config.Output.ByCardinality; b != nil {
		report.ByCardinality = a.service.AnagramsByCardinality(b.Min, b.Max)
	}
	if b := a.config.Output.ByLength; b != nil {
		report.ByLength = a.service.AnagramsByLength(b.Min, b.Max)
	}
	for _, group := range a.config.CheckGroups {
		report.Checks = append(report.Checks, models.AffinityResult{
			Words:       group,
			AreAnagrams: a.service.AreAnagrams(group),
		})
	}

	report.TimeElapsed = int(time.Since(startTime).Milliseconds())
	return report, nil
}

// Service exposes the anagram index for callers layered on the app.
func (a *App) Service() *anagram.Service {
	return a.service
}

// dictionarySource reads the configured dictionary and reduces it to a
// whitespace-delimited token stream.
func (a *App) dictionarySource(ctx context.Context) ([]byte, error) {
	var content []byte
	var err error

	switch {
	case a.config.Dictionary.File != "":
		content, err = os.ReadFile(a.config.Dictionary.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary file: %w", err)
		}
	default:
		content, err = a.fetcher.Fetch(ctx, a.config.Dictionary.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dictionary: %w", err)
		}
	}

	if a.config.Dictionary.Format == config.FormatHTML {
		text, err := a.parser.ExtractText(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dictionary HTML: %w", err)
		}
		content = []byte(strings.TrimSpace(text))
	}

	return content, nil
}
