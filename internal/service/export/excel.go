package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX serializes a workbook description into an XLSX stream.
func WriteXLSX(wb Workbook, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if wb.SheetName != "" {
		file.SetSheetName(sheet, wb.SheetName)
		sheet = wb.SheetName
	}

	styles := newStyleCache(file)

	for i, row := range wb.Rows {
		rowNum := i + 1
		for col, value := range row.Cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}

		if len(row.Cells) == 0 {
			continue
		}
		styleID, err := styles.lookup(row.Region, row.ColorIndex)
		if err != nil {
			return err
		}
		if styleID == 0 {
			continue
		}
		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		last, _ := excelize.CoordinatesToCellName(len(row.Cells), rowNum)
		if err := file.SetCellStyle(sheet, first, last, styleID); err != nil {
			return fmt.Errorf("set excel style %s:%s: %w", first, last, err)
		}
	}

	file.SetColWidth(sheet, "A", "Z", 18)

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}
	return nil
}

// styleCache builds each (region, color) style at most once per file.
type styleCache struct {
	file  *excelize.File
	byKey map[string]int
}

func newStyleCache(file *excelize.File) *styleCache {
	return &styleCache{file: file, byKey: make(map[string]int)}
}

func (c *styleCache) lookup(region Region, colorIndex int) (int, error) {
	key := fmt.Sprintf("%s/%d", region, colorIndex)
	if id, ok := c.byKey[key]; ok {
		return id, nil
	}

	style := regionStyle(region, colorIndex)
	if style == nil {
		c.byKey[key] = 0
		return 0, nil
	}

	id, err := c.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("build excel style %s: %w", key, err)
	}
	c.byKey[key] = id
	return id, nil
}

func regionStyle(region Region, colorIndex int) *excelize.Style {
	switch region {
	case RegionTitle:
		return &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}
	case RegionHeader:
		return &excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E5E7EB"}},
		}
	case RegionTotals, RegionAverages:
		return &excelize.Style{Font: &excelize.Font{Bold: true}}
	case RegionWeekData, RegionData:
		color := PaletteColor(colorIndex)
		if color == "" {
			return nil
		}
		return &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		}
	default:
		return nil
	}
}
