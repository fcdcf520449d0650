package leave

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Leave Requests"

var exportHeaders = []string{
	"ID", "Employee", "Email", "Type", "Start Date", "End Date",
	"Days", "Reason", "Status", "Applied On", "Decided By", "Decided At", "Rejection Reason",
}

var exportColWidths = []float64{38, 20, 26, 16, 12, 12, 6, 32, 10, 12, 24, 22, 28}

// BuildWorkbook renders the admin list as a single-sheet workbook. The
// caller closes the file.
func BuildWorkbook(list []LeaveResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, h := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(exportSheet, cell, h)
		f.SetCellStyle(exportSheet, cell, cell, boldStyle)
	}
	for i, w := range exportColWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, col, col, w)
	}

	for i, l := range list {
		row := []any{
			l.ID, l.EmployeeName, l.EmployeeEmail, l.TypeName, l.StartDate, l.EndDate,
			l.TotalDays, l.Reason, l.Status, l.AppliedOn, l.DecidedBy, l.DecidedAt, l.RejectionReason,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}
