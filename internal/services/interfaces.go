package services

import (
	"context"

	"github.com/eliox01/bookMarking/internal/models"
)

// BookmarkStore is the row-level contract of the remote spreadsheet.
type BookmarkStore interface {
	List(ctx context.Context) ([]models.Bookmark, error)
	Create(ctx context.Context, bookmark models.Bookmark) (string, error)
	Update(ctx context.Context, id string, patch models.BookmarkPatch) error
	Delete(ctx context.Context, id string) error
}

type LogWriter interface {
	CreateLog(ctx context.Context, bookmarkID *string, action string, outcome string, message *string) error
}

// BookmarkManager is the validated bookmark surface the transfer flow
// drives, so imports go through the same checks as the dashboard.
type BookmarkManager interface {
	List(ctx context.Context, query string, category string) ([]models.Bookmark, error)
	Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
}

type WorkbookCodec interface {
	Export(ctx context.Context, bookmarks []models.Bookmark) ([]byte, error)
	Import(ctx context.Context, content []byte) ([]models.Bookmark, int, error)
}
