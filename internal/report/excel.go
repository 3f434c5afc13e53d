package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ABTestLab/internal/model"
)

// WriteXLSX exports the per-day table and the run summary to a spreadsheet.
func WriteXLSX(path string, exp model.Experiment, obs []model.Observation, sum *model.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"date", "conversions", "visitors", "cum_conversions", "cum_visitors", "cum_rate", "std_err", "ci_lower", "ci_upper"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}

	for row, o := range obs {
		values := []interface{}{
			o.Date.Format("2006-01-02"), o.Conversions, o.Visitors,
			o.CumConversions, o.CumVisitors, o.CumRate, o.StdErr, o.CILower, o.CIUpper,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set cell: %w", err)
			}
		}
	}

	summaryRow := len(obs) + 3
	summary := [][2]interface{}{
		{"final_rate", sum.FinalRate},
		{"ci_lower", sum.CILower},
		{"ci_upper", sum.CIUpper},
		{"expected_lift", sum.ExpectedLift},
		{"observed_lift", sum.ObservedLift},
		{"z_score", sum.ZScore},
		{"p_value", sum.PValue},
		{"verdict", Verdict(sum)},
		{"baseline_rate", exp.BaselineRate},
		{"confidence", exp.Confidence},
	}
	for i, kv := range summary {
		keyCell, err := excelize.CoordinatesToCellName(1, summaryRow+i)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		valCell, err := excelize.CoordinatesToCellName(2, summaryRow+i)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetCellValue(sheet, keyCell, kv[0]); err != nil {
			return fmt.Errorf("set summary key: %w", err)
		}
		if err := f.SetCellValue(sheet, valCell, kv[1]); err != nil {
			return fmt.Errorf("set summary value: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
