package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/eliox01/bookMarking/internal/models"
)

var ErrValidation = errors.New("validation failed")

type BookmarkService struct {
	store      BookmarkStore
	logService LogWriter
}

type DuplicateGroup struct {
	URL       string            `json:"url"`
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

func NewBookmarkService(store BookmarkStore, logService LogWriter) (*BookmarkService, error) {
	if store == nil {
		return nil, errors.New("bookmark store is nil")
	}
	if logService == nil {
		return nil, errors.New("log service is nil")
	}

	return &BookmarkService{
		store:      store,
		logService: logService,
	}, nil
}

// List fetches the catalog fresh from the sheet and applies the dashboard
// filters: case-insensitive substring over title/tags/category, exact
// category match, newest first.
func (s *BookmarkService) List(ctx context.Context, query string, category string) ([]models.Bookmark, error) {
	if s == nil {
		return nil, errors.New("bookmark service is nil")
	}
	if s.store == nil {
		return nil, errors.New("bookmark store is nil")
	}

	bookmarks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	query = strings.TrimSpace(query)
	category = strings.TrimSpace(category)

	filtered := make([]models.Bookmark, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		if category != "" && bookmark.Category != category {
			continue
		}
		if !matchesQuery(bookmark, query) {
			continue
		}
		filtered = append(filtered, bookmark)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// Create validates before any remote call is made.
func (s *BookmarkService) Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	if s == nil {
		return models.Bookmark{}, errors.New("bookmark service is nil")
	}
	if s.store == nil {
		return models.Bookmark{}, errors.New("bookmark store is nil")
	}
	if s.logService == nil {
		return models.Bookmark{}, errors.New("log service is nil")
	}

	if err := validateBookmark(bookmark); err != nil {
		return models.Bookmark{}, err
	}

	bookmark.Title = strings.TrimSpace(bookmark.Title)
	bookmark.URL = strings.TrimSpace(bookmark.URL)
	bookmark.CreatedAt = time.Now().UTC()

	id, err := s.store.Create(ctx, bookmark)
	if err != nil {
		failMsg := fmt.Sprintf("create title=%q: %v", bookmark.Title, err)
		_ = s.logService.CreateLog(ctx, nil, LogActionBookmarkCreate, LogOutcomeFail, &failMsg)
		return models.Bookmark{}, fmt.Errorf("create bookmark: %w", err)
	}

	bookmark.ID = id
	successMsg := fmt.Sprintf("created title=%q url=%s", bookmark.Title, bookmark.URL)
	_ = s.logService.CreateLog(ctx, &id, LogActionBookmarkCreate, LogOutcomeSuccess, &successMsg)

	return bookmark, nil
}

func (s *BookmarkService) Update(ctx context.Context, id string, patch models.BookmarkPatch) error {
	if s == nil {
		return errors.New("bookmark service is nil")
	}
	if s.store == nil {
		return errors.New("bookmark store is nil")
	}
	if s.logService == nil {
		return errors.New("log service is nil")
	}

	if err := validatePatch(patch); err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, patch); err != nil {
		failMsg := fmt.Sprintf("update id=%s: %v", id, err)
		_ = s.logService.CreateLog(ctx, &id, LogActionBookmarkUpdate, LogOutcomeFail, &failMsg)
		return fmt.Errorf("update bookmark: %w", err)
	}

	successMsg := fmt.Sprintf("updated id=%s", id)
	_ = s.logService.CreateLog(ctx, &id, LogActionBookmarkUpdate, LogOutcomeSuccess, &successMsg)

	return nil
}

func (s *BookmarkService) Delete(ctx context.Context, id string) error {
	if s == nil {
		return errors.New("bookmark service is nil")
	}
	if s.store == nil {
		return errors.New("bookmark store is nil")
	}
	if s.logService == nil {
		return errors.New("log service is nil")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		failMsg := fmt.Sprintf("delete id=%s: %v", id, err)
		_ = s.logService.CreateLog(ctx, &id, LogActionBookmarkDelete, LogOutcomeFail, &failMsg)
		return fmt.Errorf("delete bookmark: %w", err)
	}

	successMsg := fmt.Sprintf("deleted id=%s", id)
	_ = s.logService.CreateLog(ctx, &id, LogActionBookmarkDelete, LogOutcomeSuccess, &successMsg)

	return nil
}

// Duplicates groups bookmarks sharing a normalized URL, first-seen order,
// groups of two or more only.
func (s *BookmarkService) Duplicates(ctx context.Context) ([]DuplicateGroup, error) {
	if s == nil {
		return nil, errors.New("bookmark service is nil")
	}
	if s.store == nil {
		return nil, errors.New("bookmark store is nil")
	}

	bookmarks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	grouped := make(map[string][]models.Bookmark)
	var order []string
	for _, bookmark := range bookmarks {
		key := strings.ToLower(strings.TrimSpace(bookmark.URL))
		if key == "" {
			continue
		}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], bookmark)
	}

	var groups []DuplicateGroup
	for _, key := range order {
		members := grouped[key]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{URL: key, Bookmarks: members})
	}

	return groups, nil
}

func matchesQuery(bookmark models.Bookmark, query string) bool {
	if query == "" {
		return true
	}

	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(bookmark.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(bookmark.Category), needle) {
		return true
	}
	for _, tag := range bookmark.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}

	return false
}

func validateBookmark(bookmark models.Bookmark) error {
	if strings.TrimSpace(bookmark.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(bookmark.URL) == "" {
		return fmt.Errorf("%w: url is required", ErrValidation)
	}
	if !validURL(bookmark.URL) {
		return fmt.Errorf("%w: url must include scheme and host", ErrValidation)
	}
	return nil
}

func validatePatch(patch models.BookmarkPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if patch.URL != nil {
		if strings.TrimSpace(*patch.URL) == "" {
			return fmt.Errorf("%w: url is required", ErrValidation)
		}
		if !validURL(*patch.URL) {
			return fmt.Errorf("%w: url must include scheme and host", ErrValidation)
		}
	}
	return nil
}

func validURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
