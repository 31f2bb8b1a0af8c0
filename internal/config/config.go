package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	FormatText = "text"
	FormatHTML = "html"
)

// Bounds are inclusive range-query limits. Non-positive values mean
// unspecified.
type Bounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type Config struct {
	Dictionary struct {
		// Exactly one of File or URL supplies the dictionary.
		File   string `yaml:"file"`
		URL    string `yaml:"url"`
		Format string `yaml:"format"`
	} `yaml:"dictionary"`

	RateLimit struct {
		RequestsPerSecond int `yaml:"requestsPerSecond"`
		Burst             int `yaml:"burst"`
	} `yaml:"rateLimit"`

	HTTPClient struct {
		Timeout    int    `yaml:"timeout"`
		MaxRetries int    `yaml:"maxRetries"`
		UserAgent  string `yaml:"userAgent"`
	} `yaml:"httpClient"`

	Output struct {
		IncludeStats  bool `yaml:"includeStats"`
		LargestGroups bool `yaml:"largestGroups"`
		LongestGroups bool `yaml:"longestGroups"`
		PrettyPrint   bool `yaml:"prettyPrint"`

		// ByCardinality and ByLength request range queries over the
		// index; nil skips the query.
		ByCardinality *Bounds `yaml:"byCardinality"`
		ByLength      *Bounds `yaml:"byLength"`
	} `yaml:"output"`

	// Checks are anagram-affinity probes, each a whitespace-separated
	// word group. ChecksFile adds one group per line.
	Checks     []string `yaml:"checks"`
	ChecksFile string   `yaml:"checksFile"`

	// This will be populated from Checks and ChecksFile
	CheckGroups [][]string `yaml:"-"`
}

// Load reads and parses the configuration
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	// Collect affinity-check groups
	for _, line := range cfg.Checks {
		if group := strings.Fields(line); len(group) > 0 {
			cfg.CheckGroups = append(cfg.CheckGroups, group)
		}
	}
	if cfg.ChecksFile != "" {
		groups, err := loadChecksFromFile(cfg.ChecksFile)
		if err != nil {
			return nil, fmt.Errorf("error loading checks from file: %w", err)
		}
		cfg.CheckGroups = append(cfg.CheckGroups, groups...)
	}

	// Set default values
	setDefaults(&cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadChecksFromFile reads word groups from the specified file, one
// group per line. Blank lines and # comments are skipped.
func loadChecksFromFile(filepath string) ([][]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("error opening checks file: %w", err)
	}
	defer file.Close()

	var groups [][]string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		groups = append(groups, strings.Fields(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading checks file: %w", err)
	}

	return groups, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.Dictionary.Format == "" {
		cfg.Dictionary.Format = FormatText
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.HTTPClient.Timeout == 0 {
		cfg.HTTPClient.Timeout = 30
	}
	if cfg.HTTPClient.MaxRetries == 0 {
		cfg.HTTPClient.MaxRetries = 3
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dictionary.File == "" && c.Dictionary.URL == "" {
		return fmt.Errorf("a dictionary file or url is required")
	}
	if c.Dictionary.File != "" && c.Dictionary.URL != "" {
		return fmt.Errorf("dictionary file and url are mutually exclusive")
	}
	if c.Dictionary.Format != FormatText && c.Dictionary.Format != FormatHTML {
		return fmt.Errorf("unknown dictionary format %q", c.Dictionary.Format)
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("requestsPerSecond must be positive")
	}
	return nil
}
