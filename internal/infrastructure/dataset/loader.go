// Package dataset loads the HSN reference table from a tabular source file.
// Supported formats are XLSX (the canonical distribution format of the
// HSN/SAC master) and CSV.  Every failure mode — missing file, empty file,
// unparseable content, missing required column — surfaces as a distinct
// AppError code so callers can report the exact condition.
package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/turtacn/hsn-advisor/internal/domain/hsn"
	apperrors "github.com/turtacn/hsn-advisor/pkg/errors"
)

// Default column headers of the reference source.
const (
	DefaultCodeColumn        = "HSNCode"
	DefaultDescriptionColumn = "Description"
)

// Source identifies a reference data file and the two required columns.
type Source struct {
	// Path is the file path of the tabular source.
	Path string

	// Format is "xlsx" or "csv".  When empty it is inferred from the file
	// extension.
	Format string

	// CodeColumn and DescriptionColumn are the required header names.
	// Empty values fall back to the defaults.
	CodeColumn        string
	DescriptionColumn string
}

func (s Source) normalized() Source {
	if s.Format == "" {
		s.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(s.Path)), ".")
	}
	if s.CodeColumn == "" {
		s.CodeColumn = DefaultCodeColumn
	}
	if s.DescriptionColumn == "" {
		s.DescriptionColumn = DefaultDescriptionColumn
	}
	return s
}

// Load reads the source file and returns its records in row order.
// Error codes: CodeDatasetNotFound when the file is absent,
// CodeDatasetMalformed when it cannot be parsed or the format is unsupported,
// CodeDatasetMissingColumn when a required header is absent, and
// CodeDatasetEmpty when no data rows remain.
func Load(src Source) ([]hsn.Record, error) {
	src = src.normalized()

	if _, err := os.Stat(src.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.CodeDatasetNotFound,
				"reference data file not found").WithDetail(src.Path)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatasetMalformed,
			"reference data file is not readable")
	}

	var (
		rows [][]string
		err  error
	)
	switch src.Format {
	case "xlsx":
		rows, err = readXLSX(src.Path)
	case "csv":
		rows, err = readCSV(src.Path)
	default:
		return nil, apperrors.New(apperrors.CodeDatasetMalformed,
			"unsupported reference data format").WithDetail(src.Format)
	}
	if err != nil {
		return nil, err
	}

	return rowsToRecords(rows, src)
}

// rowsToRecords validates the header row and converts data rows to records.
// Header cells are trimmed before matching; code and description cells are
// trimmed per record.  Rows with an empty code cell are skipped.
func rowsToRecords(rows [][]string, src Source) ([]hsn.Record, error) {
	if len(rows) == 0 {
		return nil, apperrors.New(apperrors.CodeDatasetEmpty,
			"reference data file contains no rows").WithDetail(src.Path)
	}

	codeIdx, descIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case src.CodeColumn:
			codeIdx = i
		case src.DescriptionColumn:
			descIdx = i
		}
	}
	if codeIdx < 0 || descIdx < 0 {
		return nil, apperrors.New(apperrors.CodeDatasetMissingColumn,
			"required columns are missing").WithDetail(
			src.CodeColumn + ", " + src.DescriptionColumn)
	}

	records := make([]hsn.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var code, desc string
		if codeIdx < len(row) {
			code = strings.TrimSpace(row[codeIdx])
		}
		if descIdx < len(row) {
			desc = strings.TrimSpace(row[descIdx])
		}
		if code == "" {
			continue
		}
		records = append(records, hsn.Record{Code: code, Description: desc})
	}

	if len(records) == 0 {
		return nil, apperrors.New(apperrors.CodeDatasetEmpty,
			"reference data file contains no data rows").WithDetail(src.Path)
	}
	return records, nil
}
