// ABOUTME: XLSX manifest import built on excelize
// ABOUTME: Maps flexible column headers to cargo items with per-row skip reporting

package manifest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/twaldron/airlift-planner/models"
)

// SkippedRow records one manifest row the importer could not use.
type SkippedRow struct {
	Row    int    `json:"row"` // 1-based worksheet row
	Reason string `json:"reason"`
}

// ImportResult is the outcome of one XLSX import: the usable cargo
// lines plus an account of everything skipped.
type ImportResult struct {
	Items   []models.CargoItem `json:"items"`
	Skipped []SkippedRow       `json:"skipped,omitempty"`
	Total   int                `json:"total"` // data rows seen, including skipped
}

// headerAliases maps normalized column headers to canonical fields.
// Normalization strips everything but letters and digits, so
// "Weight (lb)", "weight_lb", and "WEIGHT LB" all resolve the same way.
var headerAliases = map[string]string{
	"id":           "id",
	"itemid":       "id",
	"lineid":       "id",
	"description":  "description",
	"item":         "description",
	"nomenclature": "description",
	"cargo":        "description",
	"weight":       "weight",
	"weightlb":     "weight",
	"weightlbs":    "weight",
	"grossweight":  "weight",
	"length":       "length",
	"lengthin":     "length",
	"width":        "width",
	"widthin":      "width",
	"height":       "height",
	"heightin":     "height",
	"category":     "category",
	"cargotype":    "category",
	"phase":        "phase",
	"movement":     "phase",
	"hazmat":       "hazmat",
	"hazardous":    "hazmat",
	"tcn":          "tcn",
	"pax":          "pax",
	"paxcount":     "pax",
	"personnel":    "pax",
}

// ImportXLSX reads the first worksheet of an XLSX manifest. The first
// row must be a header; unusable data rows are skipped with a reason
// rather than failing the whole import.
func ImportXLSX(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		if field, ok := headerAliases[normalizeHeader(header)]; ok {
			if _, taken := columns[field]; !taken {
				columns[field] = i
			}
		}
	}
	if _, ok := columns["description"]; !ok {
		return nil, fmt.Errorf("sheet %s has no description column", sheet)
	}

	result := &ImportResult{}
	for idx := 1; idx < len(rows); idx++ {
		row := rows[idx]
		if emptyRow(row) {
			continue
		}
		result.Total++

		item, reason := parseRow(row, columns, idx+1)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedRow{Row: idx + 1, Reason: reason})
			continue
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// parseRow converts one data row. A non-empty reason means the row is
// skipped.
func parseRow(row []string, columns map[string]int, rowNum int) (models.CargoItem, string) {
	item := models.CargoItem{
		ID:          cell(row, columns, "id"),
		Description: cell(row, columns, "description"),
		Category:    cell(row, columns, "category"),
		Phase:       cell(row, columns, "phase"),
		TCN:         cell(row, columns, "tcn"),
	}
	if item.Description == "" {
		return item, "missing description"
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("ROW-%d", rowNum)
	}

	var err error
	if item.WeightLb, err = parseNumber(cell(row, columns, "weight")); err != nil {
		return item, fmt.Sprintf("bad weight: %v", err)
	}
	if item.LengthIn, err = parseNumber(cell(row, columns, "length")); err != nil {
		return item, fmt.Sprintf("bad length: %v", err)
	}
	if item.WidthIn, err = parseNumber(cell(row, columns, "width")); err != nil {
		return item, fmt.Sprintf("bad width: %v", err)
	}
	if item.HeightIn, err = parseNumber(cell(row, columns, "height")); err != nil {
		return item, fmt.Sprintf("bad height: %v", err)
	}
	if item.WeightLb < 0 || item.LengthIn < 0 || item.WidthIn < 0 || item.HeightIn < 0 {
		return item, "negative weight or dimension"
	}

	if raw := cell(row, columns, "pax"); raw != "" {
		pax, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || pax < 0 {
			return item, fmt.Sprintf("bad pax count %q", raw)
		}
		item.PaxCount = pax
	}
	item.Hazmat = parseFlag(cell(row, columns, "hazmat"))

	if item.WeightLb == 0 && item.PaxCount == 0 {
		return item, "no weight and no passengers"
	}
	return item, ""
}

func cell(row []string, columns map[string]int, field string) string {
	i, ok := columns[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseNumber accepts blank cells as zero and tolerates thousands
// separators the way planners type them.
func parseNumber(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	cleaned := strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "true", "1", "x":
		return true
	default:
		return false
	}
}

func normalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
