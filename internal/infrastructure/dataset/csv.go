package dataset

import (
	"encoding/csv"
	"os"

	apperrors "github.com/turtacn/hsn-advisor/pkg/errors"
)

// readCSV returns all rows of a CSV file.  Records may have a variable
// number of fields; short rows are tolerated by the converter.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatasetMalformed,
			"failed to open CSV file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatasetMalformed,
			"failed to parse CSV content")
	}
	return rows, nil
}
