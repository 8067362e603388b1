package excel

import (
	"countrystats/internal"
	"countrystats/internal/config"
)

// OptionsFromConfig builds reader options from the input section of cfg
func OptionsFromConfig(cfg *config.Config, logger *internal.Logger) ReaderOptions {
	return ReaderOptions{
		Delimiter: cfg.Input.Delimiter,
		Sheet:     cfg.Input.Sheet,
		Logger:    logger,
	}
}

// NewDataReaderFromConfig creates a reader for cfg.Paths.Input
func NewDataReaderFromConfig(cfg *config.Config, logger *internal.Logger) *DataReader {
	return NewDataReader(cfg.Paths.Input, OptionsFromConfig(cfg, logger))
}
