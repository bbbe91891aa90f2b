package dataset

import (
	"github.com/xuri/excelize/v2"

	apperrors "github.com/turtacn/hsn-advisor/pkg/errors"
)

// readXLSX returns all rows of the first sheet of an XLSX workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatasetMalformed,
			"failed to open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.New(apperrors.CodeDatasetEmpty,
			"workbook contains no sheets").WithDetail(path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatasetMalformed,
			"failed to read sheet rows")
	}
	return rows, nil
}
