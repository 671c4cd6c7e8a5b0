package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/patelpranay97/creator-toolkit/internal/trends"
)

const (
	allSheetName = "All Hashtags"
	// sheetNameLimit is the workbook format's sheet name length ceiling.
	sheetNameLimit = 31
	maxColumnWidth = 50
)

var excelHeader = []string{"rank", "hashtag", "category", "scraped_date", "source"}

// excelRow is one (category, tag) pair with its rank within the category.
type excelRow struct {
	rank        int
	hashtag     string
	category    string
	scrapedDate string
	source      string
}

// ExcelWriter emits a formatted workbook: one combined sheet plus one sheet
// per category. It exists for manual review and archives; failures here must
// never block the JSON output.
type ExcelWriter struct {
	path   string
	logger *zap.Logger
}

// NewExcelWriter returns a writer targeting path.
func NewExcelWriter(path string, logger *zap.Logger) *ExcelWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExcelWriter{path: path, logger: logger}
}

// DefaultExcelPath returns the dated filename used when none is configured.
func DefaultExcelPath(now time.Time) string {
	return fmt.Sprintf("tiktok_hashtags_%s.xlsx", now.Format("20060102"))
}

// Write builds and saves the workbook.
func (w *ExcelWriter) Write(data trends.Dataset, meta trends.Meta, now time.Time) error {
	rows := buildRows(data, meta, now)

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // best-effort cleanup

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", allSheetName); err != nil {
		return fmt.Errorf("rename combined sheet: %w", err)
	}
	if err := writeSheet(f, allSheetName, rows, headerStyle); err != nil {
		return fmt.Errorf("write combined sheet: %w", err)
	}

	for _, category := range categoriesInOrder(rows) {
		sheet := truncateSheetName(category)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, rowsForCategory(rows, category), headerStyle); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook to %s: %w", w.path, err)
	}
	w.logger.Info("saved hashtag workbook",
		zap.String("path", w.path),
		zap.Int("rows", len(rows)),
		zap.Int("categories", len(categoriesInOrder(rows))),
	)
	return nil
}

// buildRows flattens the dataset into ranked rows. Categories are sorted so
// output ordering is stable run to run.
func buildRows(data trends.Dataset, meta trends.Meta, now time.Time) []excelRow {
	categories := make([]string, 0, len(data))
	for key := range data {
		categories = append(categories, key)
	}
	sort.Strings(categories)

	scraped := now.Format("2006-01-02 15:04:05")
	var rows []excelRow
	for _, category := range categories {
		for i, tag := range data[category] {
			rows = append(rows, excelRow{
				rank:        i + 1,
				hashtag:     tag,
				category:    category,
				scrapedDate: scraped,
				source:      string(meta.Source),
			})
		}
	}
	return rows
}

func categoriesInOrder(rows []excelRow) []string {
	var out []string
	last := ""
	for _, row := range rows {
		if row.category != last {
			out = append(out, row.category)
			last = row.category
		}
	}
	return out
}

func rowsForCategory(rows []excelRow, category string) []excelRow {
	var out []excelRow
	for _, row := range rows {
		if row.category == category {
			out = append(out, row)
		}
	}
	return out
}

// writeSheet fills one sheet with the header row, data rows, header styling,
// and content-sized column widths.
func writeSheet(f *excelize.File, sheet string, rows []excelRow, headerStyle int) error {
	header := make([]any, len(excelHeader))
	widths := make([]int, len(excelHeader))
	for i, h := range excelHeader {
		header[i] = h
		widths[i] = len(h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range rows {
		values := []any{row.rank, row.hashtag, row.category, row.scrapedDate, row.source}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("compute row cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
		for col, v := range values {
			if n := len(fmt.Sprint(v)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(excelHeader), 1)
	if err != nil {
		return fmt.Errorf("compute header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("style header row: %w", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("compute column name: %w", err)
		}
		w := float64(width + 3)
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("size column %s: %w", col, err)
		}
	}
	return nil
}

// truncateSheetName clips category names to the workbook sheet name limit.
func truncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= sheetNameLimit {
		return name
	}
	return string(runes[:sheetNameLimit])
}
