package config

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"countrystats/internal/errors"
)

// Language ranking policies for question g
const (
	RankingNormalized = "normalized"
	RankingRaw        = "raw" // deprecated: ranks raw per-language sums
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathConfig
	Input  InputConfig
	Report ReportConfig
	Log    LogConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	Input  string // dataset to read (.csv/.txt delimited text, or .xlsx)
	Output string // report destination, replaced atomically
}

// InputConfig controls how the dataset is decoded
type InputConfig struct {
	Delimiter rune   // field separator for delimited text
	Sheet     string // xlsx sheet; empty selects the first sheet
}

// ReportConfig holds report shaping settings
type ReportConfig struct {
	TopN            int    // rows listed by the ranking questions
	LanguageRanking string // RankingNormalized or RankingRaw
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	delimiter, err := ParseDelimiter(getEnvOrDefault("REPORT_DELIMITER", ","))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load input configuration")
	}

	config := &Config{
		Paths: PathConfig{
			Input:  getEnvOrDefault("REPORT_INPUT", "Database Prac 1/file.txt"),
			Output: getEnvOrDefault("REPORT_OUTPUT", "Database Prac 1/file2.txt"),
		},
		Input: InputConfig{
			Delimiter: delimiter,
			Sheet:     getEnvOrDefault("REPORT_SHEET", ""),
		},
		Report: ReportConfig{
			TopN:            getEnvIntOrDefault("REPORT_TOP_N", 5),
			LanguageRanking: getEnvOrDefault("REPORT_LANGUAGE_RANKING", RankingNormalized),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks field constraints; flags applied after Load go through it again
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.Input) == "" {
		return errors.ConfigInvalid("input path is required")
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		return errors.ConfigInvalid("output path is required")
	}
	if c.Input.Delimiter == 0 || c.Input.Delimiter == '\n' || c.Input.Delimiter == '\r' || c.Input.Delimiter == '"' {
		return errors.ConfigInvalid("delimiter must be a single character other than newline or quote")
	}
	if c.Report.TopN < 1 {
		return errors.ConfigInvalid("top N must be at least 1")
	}
	switch c.Report.LanguageRanking {
	case RankingNormalized, RankingRaw:
	default:
		return errors.ConfigInvalid("language ranking must be \"normalized\" or \"raw\"")
	}
	return nil
}

// ParseDelimiter accepts a single character, or the names "tab", "\t",
// "comma", "semicolon" and "pipe"
func ParseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, errors.ConfigInvalid("delimiter must be exactly one character")
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
