// Package sheets talks to the Google Sheets document that backs the bookmark
// catalog. The spreadsheet is the sole source of truth: every operation is a
// single synchronous round-trip, and concurrent editors resolve
// last-write-wins at the sheet. Update and Delete locate the target row by
// id at call time, so a row deleted by another session surfaces as
// ErrNotFound instead of touching a neighbor row.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/eliox01/bookMarking/internal/models"

	"github.com/google/uuid"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrAuth = errors.New("authentication failed")
var ErrConnection = errors.New("remote store unreachable")
var ErrNotFound = errors.New("record not found")

// Worksheet layout: header in row 1, one bookmark per row below it.
const (
	headerRows  = 1
	columnCount = 7
	timeLayout  = "2006-01-02 15:04:05"
)

type Client struct {
	svc         *sheets.Service
	spreadsheet string
	worksheet   string
	sheetID     int64
}

// NewClient opens the spreadsheet and resolves the worksheet. A non-empty
// baseURL skips credential loading and points the API client at baseURL
// instead; tests use that to talk to a local fake.
func NewClient(ctx context.Context, credentialsFile string, spreadsheetID string, worksheet string, baseURL string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is empty")
	}
	if worksheet == "" {
		return nil, errors.New("worksheet is empty")
	}

	var opts []option.ClientOption
	if baseURL != "" {
		opts = append(opts, option.WithEndpoint(baseURL), option.WithoutAuthentication())
	} else {
		if credentialsFile == "" {
			return nil, fmt.Errorf("%w: credentials file is not set", ErrAuth)
		}
		if _, err := os.Stat(credentialsFile); err != nil {
			return nil, fmt.Errorf("%w: credentials file %s: %v", ErrAuth, credentialsFile, err)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsFile), option.WithScopes(sheets.SpreadsheetsScope))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", classify(err))
	}

	client := &Client{
		svc:         svc,
		spreadsheet: spreadsheetID,
		worksheet:   worksheet,
	}
	if err := client.resolveSheetID(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) resolveSheetID(ctx context.Context) error {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheet).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("open spreadsheet: %w", classify(err))
	}

	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == c.worksheet {
			c.sheetID = sheet.Properties.SheetId
			return nil
		}
	}

	return fmt.Errorf("worksheet %q: %w", c.worksheet, ErrNotFound)
}

func (c *Client) List(ctx context.Context) ([]models.Bookmark, error) {
	if c == nil {
		return nil, errors.New("sheet client is nil")
	}

	rows, err := c.dataRows(ctx)
	if err != nil {
		return nil, err
	}

	bookmarks := make([]models.Bookmark, 0, len(rows))
	for _, row := range rows {
		if rowIsEmpty(row) {
			continue
		}
		bookmarks = append(bookmarks, rowToBookmark(row))
	}

	return bookmarks, nil
}

func (c *Client) Create(ctx context.Context, bookmark models.Bookmark) (string, error) {
	if c == nil {
		return "", errors.New("sheet client is nil")
	}

	bookmark.ID = uuid.NewString()
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = time.Now().UTC()
	}

	writeRange := fmt.Sprintf("%s!A:G", c.worksheet)
	body := &sheets.ValueRange{Values: [][]interface{}{bookmarkToRow(bookmark)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheet, writeRange, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("append row: %w", classify(err))
	}

	return bookmark.ID, nil
}

func (c *Client) Update(ctx context.Context, id string, patch models.BookmarkPatch) error {
	if c == nil {
		return errors.New("sheet client is nil")
	}

	row, rowNumber, err := c.findRow(ctx, id)
	if err != nil {
		return err
	}

	current := rowToBookmark(row)
	if patch.Title != nil {
		current.Title = *patch.Title
	}
	if patch.URL != nil {
		current.URL = *patch.URL
	}
	if patch.Category != nil {
		current.Category = *patch.Category
	}
	if patch.Tags != nil {
		current.Tags = *patch.Tags
	}
	if patch.Notes != nil {
		current.Notes = *patch.Notes
	}

	writeRange := fmt.Sprintf("%s!A%d:G%d", c.worksheet, rowNumber, rowNumber)
	body := &sheets.ValueRange{Values: [][]interface{}{bookmarkToRow(current)}}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheet, writeRange, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update row: %w", classify(err))
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if c == nil {
		return errors.New("sheet client is nil")
	}

	_, rowNumber, err := c.findRow(ctx, id)
	if err != nil {
		return err
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    c.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1),
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheet, request).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row: %w", classify(err))
	}

	return nil
}

// dataRows reads every row below the header, padded to the full column
// width so partially filled rows stay addressable.
func (c *Client) dataRows(ctx context.Context) ([][]string, error) {
	readRange := fmt.Sprintf("%s!A%d:G", c.worksheet, headerRows+1)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheet, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", classify(err))
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, columnCount)
		for i := 0; i < columnCount && i < len(raw); i++ {
			row[i] = cellString(raw[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// findRow returns the row values and the 1-based sheet row number for id.
func (c *Client) findRow(ctx context.Context, id string) ([]string, int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, 0, fmt.Errorf("bookmark id is empty: %w", ErrNotFound)
	}

	rows, err := c.dataRows(ctx)
	if err != nil {
		return nil, 0, err
	}

	for i, row := range rows {
		if strings.TrimSpace(row[0]) == id {
			return row, headerRows + i + 1, nil
		}
	}

	return nil, 0, fmt.Errorf("bookmark %s: %w", id, ErrNotFound)
}

func rowToBookmark(row []string) models.Bookmark {
	created, _ := time.Parse(timeLayout, strings.TrimSpace(row[1]))
	return models.Bookmark{
		ID:        strings.TrimSpace(row[0]),
		CreatedAt: created,
		Title:     row[2],
		URL:       row[3],
		Category:  row[4],
		Tags:      models.SplitTags(row[5]),
		Notes:     row[6],
	}
}

func bookmarkToRow(b models.Bookmark) []interface{} {
	return []interface{}{
		b.ID,
		b.CreatedAt.UTC().Format(timeLayout),
		b.Title,
		b.URL,
		b.Category,
		models.JoinTags(b.Tags),
		b.Notes,
	}
}

func cellString(value interface{}) string {
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprint(value)
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// classify maps API failures onto the client's sentinel errors so callers
// can distinguish bad credentials, stale rows, and transport trouble.
func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case apiErr.Code == http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case apiErr.Code >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", ErrConnection, err)
		}
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return err
}
