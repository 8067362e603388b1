package config

import (
	"testing"

	"countrystats/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"REPORT_INPUT", "REPORT_OUTPUT", "REPORT_DELIMITER", "REPORT_SHEET",
		"REPORT_TOP_N", "REPORT_LANGUAGE_RANKING", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Database Prac 1/file.txt", cfg.Paths.Input)
	assert.Equal(t, "Database Prac 1/file2.txt", cfg.Paths.Output)
	assert.Equal(t, ',', cfg.Input.Delimiter)
	assert.Empty(t, cfg.Input.Sheet)
	assert.Equal(t, 5, cfg.Report.TopN)
	assert.Equal(t, RankingNormalized, cfg.Report.LanguageRanking)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPORT_INPUT", "in.tsv")
	t.Setenv("REPORT_OUTPUT", "out/report.txt")
	t.Setenv("REPORT_DELIMITER", "tab")
	t.Setenv("REPORT_TOP_N", "3")
	t.Setenv("REPORT_LANGUAGE_RANKING", "raw")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "in.tsv", cfg.Paths.Input)
	assert.Equal(t, "out/report.txt", cfg.Paths.Output)
	assert.Equal(t, '\t', cfg.Input.Delimiter)
	assert.Equal(t, 3, cfg.Report.TopN)
	assert.Equal(t, RankingRaw, cfg.Report.LanguageRanking)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"multi-char delimiter", "REPORT_DELIMITER", ";;"},
		{"zero top n", "REPORT_TOP_N", "0"},
		{"unknown ranking", "REPORT_LANGUAGE_RANKING", "weighted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{"|", '|', false},
		{`\t`, '\t', false},
		{"Semicolon", ';', false},
		{"", 0, true},
		{"ab", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestValidate_RejectsEmptyPaths(t *testing.T) {
	cfg := &Config{
		Paths:  PathConfig{Input: " ", Output: "out.txt"},
		Input:  InputConfig{Delimiter: ','},
		Report: ReportConfig{TopN: 5, LanguageRanking: RankingNormalized},
	}
	assert.Error(t, cfg.Validate())

	cfg.Paths.Input = "in.txt"
	assert.NoError(t, cfg.Validate())

	cfg.Input.Delimiter = '"'
	assert.Error(t, cfg.Validate())
}
