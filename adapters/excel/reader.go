package excel

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"countrystats/domain/dataset"
	"countrystats/internal"
	"countrystats/internal/errors"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReaderOptions controls decoding of the input table
type ReaderOptions struct {
	Delimiter rune   // delimited text only; defaults to ','
	Sheet     string // xlsx only; defaults to the first sheet
	Logger    *internal.Logger
}

// DataReader reads a delimited text file or an xlsx workbook into a Dataset
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	opts     ReaderOptions
	logger   *internal.Logger
}

// NewDataReader creates a reader for filePath. Files ending in .xlsx are
// read as workbooks, everything else as delimited text.
func NewDataReader(filePath string, opts ReaderOptions) *DataReader {
	fileType := "csv"
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		fileType = "xlsx"
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	logger := opts.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{filePath: filePath, fileType: fileType, opts: opts, logger: logger}
}

// ReadDataset loads every row of the input into memory
func (r *DataReader) ReadDataset(ctx context.Context) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(r.filePath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			r.logger.Error("[DataReader] File '%s' not found", r.filePath)
			return nil, errors.NotFound(fmt.Sprintf("input file %q", r.filePath))
		}
		r.logger.Error("[DataReader] Unable to stat '%s': %v", r.filePath, err)
		return nil, errors.SourceUnreadable(r.filePath, err)
	}
	if info.IsDir() {
		r.logger.Error("[DataReader] '%s' is a directory", r.filePath)
		return nil, errors.SourceUnreadable(r.filePath, fmt.Errorf("is a directory"))
	}

	var rows [][]string
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readDelimitedRows()
	}
	if err != nil {
		r.logger.Error("[DataReader] Unexpected error reading '%s': %v", r.filePath, err)
		return nil, errors.SourceUnreadable(r.filePath, err)
	}

	ds, err := r.processRows(rows)
	if err != nil {
		r.logger.Error("[DataReader] Unexpected error reading '%s': %v", r.filePath, err)
		return nil, errors.SourceUnreadable(r.filePath, err)
	}
	return ds, nil
}

// readDelimitedRows decodes the file with any leading byte-order mark
// removed. UTF-16 input announced by a BOM is converted to UTF-8; input
// without a BOM is passed through and validated as UTF-8 afterwards.
func (r *DataReader) readDelimitedRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())
	reader := csv.NewReader(transform.NewReader(file, decoder))
	reader.Comma = r.opts.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited text: %w", err)
	}
	r.logger.Debug("[DataReader] Delimited file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// readExcelRows reads the configured sheet, or the first one
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	r.logger.Debug("[DataReader] Sheet %s read in %.2fms (%d rows)",
		sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	// excelize reports blank rows as empty slices; delimited text skips them
	nonEmpty := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			nonEmpty = append(nonEmpty, row)
		}
	}
	return nonEmpty, nil
}

// processRows maps each data row onto the header names. Short rows read
// as "" for the missing columns; cells beyond the header are dropped.
func (r *DataReader) processRows(rows [][]string) (*dataset.Dataset, error) {
	ds := &dataset.Dataset{Source: r.filePath}
	if len(rows) == 0 {
		r.logger.Warn("[DataReader] '%s' is empty", r.filePath)
		return ds, nil
	}

	headerRow := rows[0]
	ds.Headers = make([]string, len(headerRow))
	for i, header := range headerRow {
		if !utf8.ValidString(header) {
			return nil, fmt.Errorf("header column %d is not valid UTF-8", i+1)
		}
		ds.Headers[i] = strings.TrimSpace(header)
	}

	ds.Records = make([]dataset.Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		record := make(dataset.Record, len(ds.Headers))
		for j, header := range ds.Headers {
			if j >= len(row) {
				record[header] = ""
				continue
			}
			if !utf8.ValidString(row[j]) {
				return nil, fmt.Errorf("row %d column %q is not valid UTF-8", i+1, header)
			}
			record[header] = row[j]
		}
		ds.Records = append(ds.Records, record)
	}

	if missing := ds.MissingColumns(dataset.ReportColumns...); len(missing) > 0 {
		r.logger.Warn("[DataReader] '%s' lacks columns %s; they read as empty",
			r.filePath, strings.Join(missing, ", "))
	}
	r.logger.Info("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(ds.Headers), len(ds.Records))

	return ds, nil
}
