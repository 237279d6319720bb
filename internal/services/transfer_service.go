package services

import (
	"context"
	"errors"
	"fmt"
)

// TransferService moves the catalog in and out of .xlsx workbooks. Imports
// go through the bookmark service so every row gets the same validation as
// the dashboard form; invalid rows are skipped, not fatal.
type TransferService struct {
	bookmarks  BookmarkManager
	workbook   WorkbookCodec
	logService LogWriter
}

func NewTransferService(bookmarks BookmarkManager, workbook WorkbookCodec, logService LogWriter) (*TransferService, error) {
	if bookmarks == nil {
		return nil, errors.New("bookmark service is nil")
	}
	if workbook == nil {
		return nil, errors.New("xlsx service is nil")
	}
	if logService == nil {
		return nil, errors.New("log service is nil")
	}

	return &TransferService{
		bookmarks:  bookmarks,
		workbook:   workbook,
		logService: logService,
	}, nil
}

func (s *TransferService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	if s == nil {
		return nil, errors.New("transfer service is nil")
	}
	if s.bookmarks == nil {
		return nil, errors.New("bookmark service is nil")
	}
	if s.workbook == nil {
		return nil, errors.New("xlsx service is nil")
	}
	if s.logService == nil {
		return nil, errors.New("log service is nil")
	}

	bookmarks, err := s.bookmarks.List(ctx, "", "")
	if err != nil {
		failMsg := fmt.Sprintf("export: %v", err)
		_ = s.logService.CreateLog(ctx, nil, LogActionBookmarkExport, LogOutcomeFail, &failMsg)
		return nil, fmt.Errorf("export workbook: %w", err)
	}

	content, err := s.workbook.Export(ctx, bookmarks)
	if err != nil {
		failMsg := fmt.Sprintf("export: %v", err)
		_ = s.logService.CreateLog(ctx, nil, LogActionBookmarkExport, LogOutcomeFail, &failMsg)
		return nil, fmt.Errorf("export workbook: %w", err)
	}

	successMsg := fmt.Sprintf("exported rows=%d", len(bookmarks))
	_ = s.logService.CreateLog(ctx, nil, LogActionBookmarkExport, LogOutcomeSuccess, &successMsg)

	return content, nil
}

// ImportWorkbook returns how many rows were created and how many were
// skipped for failing validation.
func (s *TransferService) ImportWorkbook(ctx context.Context, content []byte) (int, int, error) {
	if s == nil {
		return 0, 0, errors.New("transfer service is nil")
	}
	if s.bookmarks == nil {
		return 0, 0, errors.New("bookmark service is nil")
	}
	if s.workbook == nil {
		return 0, 0, errors.New("xlsx service is nil")
	}
	if s.logService == nil {
		return 0, 0, errors.New("log service is nil")
	}
	if len(content) == 0 {
		return 0, 0, errors.New("workbook bytes are empty")
	}

	bookmarks, skipped, err := s.workbook.Import(ctx, content)
	if err != nil {
		failMsg := fmt.Sprintf("import: %v", err)
		_ = s.logService.CreateLog(ctx, nil, LogActionBookmarkImport, LogOutcomeFail, &failMsg)
		return 0, 0, fmt.Errorf("import workbook: %w", err)
	}

	imported := 0
	for _, bookmark := range bookmarks {
		if _, err := s.bookmarks.Create(ctx, bookmark); err != nil {
			if errors.Is(err, ErrValidation) {
				skipped++
				continue
			}
			failMsg := fmt.Sprintf("import title=%q: %v", bookmark.Title, err)
			_ = s.logService.CreateLog(ctx, nil, LogActionBookmarkImport, LogOutcomeFail, &failMsg)
			return imported, skipped, fmt.Errorf("import workbook: %w", err)
		}
		imported++
	}

	successMsg := fmt.Sprintf("imported rows=%d skipped=%d", imported, skipped)
	_ = s.logService.CreateLog(ctx, nil, LogActionBookmarkImport, LogOutcomeSuccess, &successMsg)

	return imported, skipped, nil
}
