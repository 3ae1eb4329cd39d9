package workbook

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/bitmark-inc/variant-dashboard/schema"
)

const (
	logPrefix    = "workbook"
	defaultSheet = "Sheet1"
)

var (
	ErrNoSheet        = fmt.Errorf("workbook without sheet")
	ErrMalformedChart = fmt.Errorf("series x and y differ in length")

	header = []interface{}{"Series", "Date", "Value"}
)

// Sheet - one chart written as a long table of series, date and value
type Sheet struct {
	Name   string
	Series []schema.ChartSeries
}

// Write - xlsx workbook with one worksheet per sheet, in order
func Write(w io.Writer, sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrNoSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); nil != err {
				return err
			}
		} else if _, err := f.NewSheet(sheet.Name); nil != err {
			return err
		}

		if err := writeSheet(f, sheet); nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "sheet": sheet.Name, "error": err}).Error("write sheet")
			return err
		}
	}
	f.SetActiveSheet(0)

	return f.Write(w)
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	if err := f.SetSheetRow(sheet.Name, "A1", &header); nil != err {
		return err
	}

	row := 2
	for _, s := range sheet.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("%w: %s", ErrMalformedChart, s.Label)
		}

		for i := range s.X {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if nil != err {
				return err
			}

			values := []interface{}{s.Label, s.X[i], s.Y[i]}
			if err := f.SetSheetRow(sheet.Name, cell, &values); nil != err {
				return err
			}
			row++
		}
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "sheet": sheet.Name, "rows": row - 2}).Debug("sheet written")
	return nil
}
