// Package export renders a QuotationRecord as an XLSX workbook so agents
// can hand the structured quotation to clients as a spreadsheet.
package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tripdesk/quotation-parser/internal/entity"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// QuotationXLSX returns a workbook (as bytes) with a summary sheet, a
// hotels sheet, and an itinerary sheet for the given record.
func (s *Service) QuotationXLSX(rec *entity.QuotationRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	summaryRows := [][2]any{
		{"File", rec.FileName},
		{"Processed At", rec.ProcessedAt},
		{"Destination", rec.Destination},
		{"Duration", rec.Duration},
		{"Travellers", rec.PaxCount},
		{"Base Cost", rec.BaseCost},
		{"Inclusions", strings.Join(rec.Inclusions, "; ")},
		{"Exclusions", strings.Join(rec.Exclusions, "; ")},
	}
	for i, kv := range summaryRows {
		write(summary, 1, i+1, kv[0])
		write(summary, 2, i+1, kv[1])
	}

	const hotels = "Hotels"
	if _, err := f.NewSheet(hotels); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}
	for i, h := range []string{"Hotel", "Location", "Nights", "Room Type"} {
		write(hotels, i+1, 1, h)
	}
	for i, h := range rec.Hotels {
		write(hotels, 1, i+2, h.Name)
		write(hotels, 2, i+2, h.Location)
		write(hotels, 3, i+2, h.Nights)
		write(hotels, 4, i+2, h.RoomType)
	}

	const itinerary = "Itinerary"
	if _, err := f.NewSheet(itinerary); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}
	for i, h := range []string{"Day", "Title", "Activities"} {
		write(itinerary, i+1, 1, h)
	}
	for i, d := range rec.Itinerary {
		write(itinerary, 1, i+2, d.Day)
		write(itinerary, 2, i+2, d.Title)
		write(itinerary, 3, i+2, strings.Join(d.Activities, "; "))
	}

	idx, _ := f.GetSheetIndex(summary)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"file_name", rec.FileName,
		"hotels", len(rec.Hotels),
		"itinerary_days", len(rec.Itinerary),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
