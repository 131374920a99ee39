package scheduleexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/emi"
)

const sheetName = "Repayment Schedule"

// WriteXLSX renders an amortization schedule as an Excel workbook with a
// summary block above the month-by-month table.
func WriteXLSX(w io.Writer, result *emi.Result, rows []emi.ScheduleRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsx delete default sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Product Price", result.Principal},
		{"Down Payment", result.DownPaymentAmount},
		{"Financed Amount", result.FinanceAmount},
		{"Annual Interest Rate (%)", result.AnnualRatePercent},
		{"Tenure (months)", result.TenureMonths},
		{"Monthly Payment", result.PaymentPerMonth},
		{"Total Payment", result.TotalPayment},
		{"Total Interest", result.TotalInterest},
	}
	for i, pair := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetName, cell, &pair); err != nil {
			return fmt.Errorf("xlsx summary row %d: %w", i+1, err)
		}
	}

	headerRow := len(summary) + 2
	header := []interface{}{"Month", "Payment", "Interest", "Principal", "Remaining Principal"}
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	if err := f.SetSheetRow(sheetName, cell, &header); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	for i, row := range rows {
		record := []interface{}{
			row.Month,
			row.Payment,
			row.Interest,
			row.PrincipalComponent,
			row.RemainingPrincipal,
		}
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err := f.SetSheetRow(sheetName, cell, &record); err != nil {
			return fmt.Errorf("xlsx row %d: %w", row.Month, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
