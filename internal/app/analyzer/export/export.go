package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"audio-insights/internal/app/model"
)

// ToExcel writes the run history to an xlsx workbook.
func ToExcel(records []model.RunRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Runs")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Run ID"
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Duration (min)"
	headerRow.AddCell().Value = "Words"
	headerRow.AddCell().Value = "WPM"
	headerRow.AddCell().Value = "Summary Words"
	headerRow.AddCell().Value = "Finished"
	headerRow.AddCell().Value = "Error Message"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.RunID
		row.AddCell().Value = r.FileName
		row.AddCell().Value = fmt.Sprintf("%.2f", r.DurationMinutes)
		row.AddCell().Value = fmt.Sprint(r.WordCount)
		row.AddCell().Value = fmt.Sprint(r.SpeakingWPM)
		row.AddCell().Value = fmt.Sprint(r.SummaryWords)
		row.AddCell().Value = r.FinishedAt.Format(time.RFC3339)
		row.AddCell().Value = r.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
