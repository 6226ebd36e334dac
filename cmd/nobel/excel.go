package nobel

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/lepinkainen/nobelfetch/internal/cmdutil"
	"github.com/lepinkainen/nobelfetch/internal/config"
	"github.com/lepinkainen/nobelfetch/internal/errors"
	"github.com/lepinkainen/nobelfetch/internal/fileutil"
	"github.com/spf13/viper"
	"github.com/xuri/excelize/v2"
)

func init() {
	registerWriter("excel", writeLaureatesToExcel)
}

const chartDataSheet = "Charts Data"

var defaultExcelColors = map[string]string{
	"excel.header_color": "4F81BD",
	"excel.zebra_color":  "DCE6F1",
}

// excelColor reads a fill color from config, accepting both "#RRGGBB" and
// "RRGGBB" notations.
func excelColor(key string) string {
	color := strings.TrimPrefix(viper.GetString(key), "#")
	if color == "" {
		return defaultExcelColors[key]
	}
	return color
}

var excelHeaders = []string{
	"GIVEN NAME", "FAMILY NAME", "GENDER", "BIRTH DATE", "WIKIPEDIA LINK",
	"CATEGORY", "STATUS", "MOTIVATION", "AWARD YEAR",
}

// prizeRow is one spreadsheet row: laureate identity columns repeated per prize
type prizeRow struct {
	GivenName  string
	FamilyName string
	Gender     string
	BirthDate  string
	Wikipedia  string
	Category   string
	Status     string
	Motivation string
	AwardYear  int
}

// flattenPrizes turns the nested records into one row per prize,
// preserving record and prize order.
func flattenPrizes(laureates []Laureate) []prizeRow {
	var rows []prizeRow
	for _, laureate := range laureates {
		for _, prize := range laureate.Prizes {
			rows = append(rows, prizeRow{
				GivenName:  laureate.GivenName,
				FamilyName: laureate.FamilyName,
				Gender:     laureate.Gender,
				BirthDate:  laureate.BirthDate,
				Wikipedia:  laureate.Wikipedia,
				Category:   prize.Category,
				Status:     prize.Status,
				Motivation: prize.Motivation,
				AwardYear:  prize.AwardYear,
			})
		}
	}
	return rows
}

func (r prizeRow) values() []any {
	return []any{
		r.GivenName, r.FamilyName, r.Gender, r.BirthDate, r.Wikipedia,
		r.Category, r.Status, r.Motivation, r.AwardYear,
	}
}

func writeLaureatesToExcel(laureates []Laureate, opts Options) error {
	output := cmdutil.ResolveOutputPath(opts.ExcelOutput, "ExcelOutputDir", "excel", "laureates.xlsx")

	if fileutil.FileExists(output) && !config.OverwriteFiles {
		slog.Info("Excel file already exists, skipping", "filename", output)
		return nil
	}
	if err := cmdutil.EnsureOutputDir(output); err != nil {
		return errors.NewExportError(output, err)
	}

	rows := flattenPrizes(laureates)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := fmt.Sprintf("Nobel laureates %d - %d", opts.YearFrom, opts.YearTo)
	if err := buildDataSheet(f, sheet, rows); err != nil {
		return errors.NewExportError(output, err)
	}
	if err := buildStatisticsCharts(f, sheet, rows); err != nil {
		return errors.NewExportError(output, err)
	}

	slog.Info("Writing Excel file", "filename", output, "rows", len(rows))
	if err := f.SaveAs(output); err != nil {
		return errors.NewExportError(output, err)
	}
	return nil
}

// buildDataSheet renames the default sheet and fills it with the styled
// header row, zebra-striped data rows and content-sized columns.
func buildDataSheet(f *excelize.File, sheet string, rows []prizeRow) error {
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	fullBorder := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{excelColor("excel.header_color")}},
		Border:    fullBorder,
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}
	zebraStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{excelColor("excel.zebra_color")}},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	// Track content width per column for sizing, header included
	widths := make([]int, len(excelHeaders))

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		widths[col] = len(header)
	}
	firstHeader, _ := excelize.CoordinatesToCellName(1, 1)
	lastHeader, _ := excelize.CoordinatesToCellName(len(excelHeaders), 1)
	if err := f.SetCellStyle(sheet, firstHeader, lastHeader, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		rowNum := i + 2
		for col, value := range row.values() {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if l := len(fmt.Sprint(value)); l > widths[col] {
				widths[col] = l
			}
		}

		style := cellStyle
		if i%2 == 0 {
			style = zebraStyle
		}
		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		last, _ := excelize.CoordinatesToCellName(len(excelHeaders), rowNum)
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return err
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		// Motivation texts run long, cap the column and let the text wrap
		if width > 80 {
			width = 80
		}
		if err := f.SetColWidth(sheet, name, name, float64(width+2)); err != nil {
			return err
		}
	}

	return nil
}

// buildStatisticsCharts writes per-prize distribution counts to a separate
// data sheet and inserts a pie chart per distribution next to the data table.
func buildStatisticsCharts(f *excelize.File, mainSheet string, rows []prizeRow) error {
	if _, err := f.NewSheet(chartDataSheet); err != nil {
		return err
	}

	charts := []struct {
		title string
		key   func(prizeRow) string
	}{
		{"Gender distribution of Nobel Prize winners", func(r prizeRow) string { return r.Gender }},
		{"Nobel Prizes won in given years", func(r prizeRow) string { return strconv.Itoa(r.AwardYear) }},
		{"Nobel Prizes won for a given categories", func(r prizeRow) string { return r.Category }},
	}

	for i, chart := range charts {
		keys, counts := countByKey(rows, chart.key)
		keyCol := i*3 + 1
		countCol := keyCol + 1

		for rowIdx, key := range keys {
			keyCell, err := excelize.CoordinatesToCellName(keyCol, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(chartDataSheet, keyCell, key); err != nil {
				return err
			}
			countCell, err := excelize.CoordinatesToCellName(countCol, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(chartDataSheet, countCell, counts[rowIdx]); err != nil {
				return err
			}
		}

		catStart, _ := excelize.CoordinatesToCellName(keyCol, 1, true)
		catEnd, _ := excelize.CoordinatesToCellName(keyCol, len(keys), true)
		valStart, _ := excelize.CoordinatesToCellName(countCol, 1, true)
		valEnd, _ := excelize.CoordinatesToCellName(countCol, len(keys), true)

		anchor, err := excelize.CoordinatesToCellName(len(excelHeaders)+2, 1+i*16)
		if err != nil {
			return err
		}
		err = f.AddChart(mainSheet, anchor, &excelize.Chart{
			Type: excelize.Pie,
			Series: []excelize.ChartSeries{{
				Name:       chart.title,
				Categories: fmt.Sprintf("'%s'!%s:%s", chartDataSheet, catStart, catEnd),
				Values:     fmt.Sprintf("'%s'!%s:%s", chartDataSheet, valStart, valEnd),
			}},
			Title:     []excelize.RichTextRun{{Text: chart.title}},
			Dimension: excelize.ChartDimension{Width: 500, Height: 300},
			PlotArea:  excelize.ChartPlotArea{ShowVal: true},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// countByKey counts rows per key value and returns keys sorted
// lexicographically with their matching counts.
func countByKey(rows []prizeRow, key func(prizeRow) string) ([]string, []int) {
	byKey := make(map[string]int)
	for _, row := range rows {
		byKey[key(row)]++
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	counts := make([]int, len(keys))
	for i, k := range keys {
		counts[i] = byKey[k]
	}
	return keys, counts
}
