package services

import (
	"context"
	"fmt"

	"github.com/eliox01/bookMarking/internal/models"
	"github.com/eliox01/bookMarking/internal/sheets"
)

type loggedEntry struct {
	bookmarkID *string
	action     string
	outcome    string
	message    *string
}

type stubLogWriter struct {
	entries []loggedEntry
}

func (s *stubLogWriter) CreateLog(ctx context.Context, bookmarkID *string, action string, outcome string, message *string) error {
	var copiedID *string
	if bookmarkID != nil {
		value := *bookmarkID
		copiedID = &value
	}
	var copiedMsg *string
	if message != nil {
		value := *message
		copiedMsg = &value
	}

	s.entries = append(s.entries, loggedEntry{
		bookmarkID: copiedID,
		action:     action,
		outcome:    outcome,
		message:    copiedMsg,
	})
	return nil
}

// fakeBookmarkStore is an in-memory stand-in for the sheet, applying
// patches the same way the real client does.
type fakeBookmarkStore struct {
	bookmarks   []models.Bookmark
	nextID      int
	createCalls int
	updateCalls int
	deleteCalls int
	listErr     error
	createErr   error
}

func (s *fakeBookmarkStore) List(ctx context.Context) ([]models.Bookmark, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	copied := make([]models.Bookmark, len(s.bookmarks))
	copy(copied, s.bookmarks)
	return copied, nil
}

func (s *fakeBookmarkStore) Create(ctx context.Context, bookmark models.Bookmark) (string, error) {
	s.createCalls++
	if s.createErr != nil {
		return "", s.createErr
	}

	s.nextID++
	bookmark.ID = fmt.Sprintf("fake-%d", s.nextID)
	s.bookmarks = append(s.bookmarks, bookmark)
	return bookmark.ID, nil
}

func (s *fakeBookmarkStore) Update(ctx context.Context, id string, patch models.BookmarkPatch) error {
	s.updateCalls++

	for i := range s.bookmarks {
		if s.bookmarks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.bookmarks[i].Title = *patch.Title
		}
		if patch.URL != nil {
			s.bookmarks[i].URL = *patch.URL
		}
		if patch.Category != nil {
			s.bookmarks[i].Category = *patch.Category
		}
		if patch.Tags != nil {
			s.bookmarks[i].Tags = *patch.Tags
		}
		if patch.Notes != nil {
			s.bookmarks[i].Notes = *patch.Notes
		}
		return nil
	}

	return fmt.Errorf("bookmark %s: %w", id, sheets.ErrNotFound)
}

func (s *fakeBookmarkStore) Delete(ctx context.Context, id string) error {
	s.deleteCalls++

	for i := range s.bookmarks {
		if s.bookmarks[i].ID == id {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("bookmark %s: %w", id, sheets.ErrNotFound)
}
