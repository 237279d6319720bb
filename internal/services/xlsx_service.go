package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eliox01/bookMarking/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	workbookSheetName  = "bookmarks"
	workbookTimeLayout = "2006-01-02 15:04:05"
)

var workbookHeader = []string{"id", "created_at", "title", "url", "category", "tags", "notes"}

type XlsxService struct{}

func NewXlsxService() (*XlsxService, error) {
	return &XlsxService{}, nil
}

// Export renders the catalog into a single-sheet workbook matching the
// spreadsheet's column layout.
func (s *XlsxService) Export(ctx context.Context, bookmarks []models.Bookmark) ([]byte, error) {
	if s == nil {
		return nil, errors.New("xlsx service is nil")
	}
	_ = ctx

	workbook := excelize.NewFile()
	if err := workbook.SetSheetName("Sheet1", workbookSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(workbookHeader))
	for i, column := range workbookHeader {
		header[i] = column
	}
	if err := workbook.SetSheetRow(workbookSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, bookmark := range bookmarks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name for row %d: %w", i+2, err)
		}
		row := []interface{}{
			bookmark.ID,
			bookmark.CreatedAt.UTC().Format(workbookTimeLayout),
			bookmark.Title,
			bookmark.URL,
			bookmark.Category,
			models.JoinTags(bookmark.Tags),
			bookmark.Notes,
		}
		if err := workbook.SetSheetRow(workbookSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := workbook.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

// Import parses an uploaded workbook back into bookmarks. The header row is
// located by its title and url columns; rows missing either are counted as
// skipped rather than aborting the whole upload.
func (s *XlsxService) Import(ctx context.Context, content []byte) ([]models.Bookmark, int, error) {
	if s == nil {
		return nil, 0, errors.New("xlsx service is nil")
	}
	if len(content) == 0 {
		return nil, 0, errors.New("workbook bytes are empty")
	}
	_ = ctx

	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook: %w", err)
	}

	sheetNames := workbook.GetSheetList()
	if len(sheetNames) == 0 {
		closeErr := workbook.Close()
		if closeErr != nil {
			return nil, 0, fmt.Errorf("close workbook: %w", closeErr)
		}
		return nil, 0, errors.New("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheetNames[0])
	closeErr := workbook.Close()
	if err != nil {
		return nil, 0, fmt.Errorf("get rows for %s: %w", sheetNames[0], err)
	}
	if closeErr != nil {
		return nil, 0, fmt.Errorf("close workbook: %w", closeErr)
	}

	headerIndex, columns, err := findWorkbookHeader(rows)
	if err != nil {
		return nil, 0, err
	}

	var bookmarks []models.Bookmark
	skipped := 0
	for _, row := range rows[headerIndex+1:] {
		if workbookRowIsEmpty(row) {
			continue
		}

		title := strings.TrimSpace(columnValue(row, columns, "title"))
		rawURL := strings.TrimSpace(columnValue(row, columns, "url"))
		if title == "" || rawURL == "" {
			skipped++
			continue
		}

		created, _ := time.Parse(workbookTimeLayout, strings.TrimSpace(columnValue(row, columns, "created_at")))
		bookmarks = append(bookmarks, models.Bookmark{
			CreatedAt: created,
			Title:     title,
			URL:       rawURL,
			Category:  strings.TrimSpace(columnValue(row, columns, "category")),
			Tags:      models.SplitTags(columnValue(row, columns, "tags")),
			Notes:     strings.TrimSpace(columnValue(row, columns, "notes")),
		})
	}

	return bookmarks, skipped, nil
}

// findWorkbookHeader returns the header row index and a column-name to
// column-index map. A row counts as the header once it names both title
// and url.
func findWorkbookHeader(rows [][]string) (int, map[string]int, error) {
	for index, row := range rows {
		columns := make(map[string]int)
		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name == "" {
				continue
			}
			if _, exists := columns[name]; !exists {
				columns[name] = i
			}
		}
		if _, hasTitle := columns["title"]; !hasTitle {
			continue
		}
		if _, hasURL := columns["url"]; !hasURL {
			continue
		}
		return index, columns, nil
	}

	return 0, nil, errors.New("header row not found")
}

func columnValue(row []string, columns map[string]int, name string) string {
	index, ok := columns[name]
	if !ok || index >= len(row) {
		return ""
	}
	return row[index]
}

func workbookRowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
