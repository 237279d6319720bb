package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eliox01/bookMarking/internal/models"
	"github.com/eliox01/bookMarking/internal/services"
	"github.com/eliox01/bookMarking/internal/sheets"

	"github.com/gin-gonic/gin"
)

type stubBookmarkProvider struct {
	bookmarks []models.Bookmark
	groups    []services.DuplicateGroup

	listErr       error
	createErr     error
	updateErr     error
	deleteErr     error
	duplicatesErr error

	createdBookmark models.Bookmark
	updatedID       string
	updatedPatch    models.BookmarkPatch
	deletedID       string
}

func (s *stubBookmarkProvider) List(ctx context.Context, query string, category string) ([]models.Bookmark, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.bookmarks, nil
}

func (s *stubBookmarkProvider) Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	if s.createErr != nil {
		return models.Bookmark{}, s.createErr
	}
	bookmark.ID = "new-id"
	s.createdBookmark = bookmark
	return bookmark, nil
}

func (s *stubBookmarkProvider) Update(ctx context.Context, id string, patch models.BookmarkPatch) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedID = id
	s.updatedPatch = patch
	return nil
}

func (s *stubBookmarkProvider) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedID = id
	return nil
}

func (s *stubBookmarkProvider) Duplicates(ctx context.Context) ([]services.DuplicateGroup, error) {
	if s.duplicatesErr != nil {
		return nil, s.duplicatesErr
	}
	return s.groups, nil
}

func newBookmarksRouter(t *testing.T, provider *stubBookmarkProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller, err := NewBookmarksController(provider)
	if err != nil {
		t.Fatalf("create controller: %v", err)
	}

	router := gin.New()
	if err := controller.RegisterRoutes(router); err != nil {
		t.Fatalf("register routes: %v", err)
	}
	return router
}

func TestNewBookmarksControllerNilService(t *testing.T) {
	if _, err := NewBookmarksController(nil); err == nil {
		t.Fatal("expected error for nil service")
	}
}

func TestListBookmarks(t *testing.T) {
	provider := &stubBookmarkProvider{
		bookmarks: []models.Bookmark{
			{
				ID:        "b-1",
				CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
				Title:     "Cybersecurity Tools",
				URL:       "https://tools.example.com",
				Category:  "Offensive Security",
				Tags:      []string{"c2", "redteam"},
			},
		},
	}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/bookmarks?q=cyber", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var response BookmarksResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(response.Bookmarks))
	}
	if response.Bookmarks[0].Title != "Cybersecurity Tools" {
		t.Fatalf("unexpected title %q", response.Bookmarks[0].Title)
	}
}

func TestListBookmarksConnectionError(t *testing.T) {
	provider := &stubBookmarkProvider{listErr: sheets.ErrConnection}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", recorder.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Error != "remote store unreachable, try again" {
		t.Fatalf("unexpected error message %q", response.Error)
	}
}

func TestCreateBookmark(t *testing.T) {
	provider := &stubBookmarkProvider{}
	router := newBookmarksRouter(t, provider)

	body, err := json.Marshal(CreateBookmarkRequest{
		Title:    "Mortgage Calculator",
		URL:      "https://calc.example.com",
		Category: "Real Estate",
		Tags:     []string{"mortgage"},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/bookmarks", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", recorder.Code)
	}

	var created models.Bookmark
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID != "new-id" {
		t.Fatalf("expected assigned id, got %q", created.ID)
	}
	if provider.createdBookmark.Title != "Mortgage Calculator" {
		t.Fatalf("unexpected stored title %q", provider.createdBookmark.Title)
	}
}

func TestCreateBookmarkValidationError(t *testing.T) {
	provider := &stubBookmarkProvider{
		createErr: fmt.Errorf("%w: url is required", services.ErrValidation),
	}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/bookmarks", bytes.NewReader([]byte(`{"title":"No URL"}`)))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
}

func TestCreateBookmarkInvalidBody(t *testing.T) {
	provider := &stubBookmarkProvider{}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/bookmarks", bytes.NewReader([]byte("not json")))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
	if provider.createdBookmark.Title != "" {
		t.Fatal("service should not be called for an invalid body")
	}
}

func TestUpdateBookmark(t *testing.T) {
	provider := &stubBookmarkProvider{}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/bookmarks/b-1", bytes.NewReader([]byte(`{"title":"Renamed"}`)))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", recorder.Code)
	}
	if provider.updatedID != "b-1" {
		t.Fatalf("expected update for b-1, got %q", provider.updatedID)
	}
	if provider.updatedPatch.Title == nil || *provider.updatedPatch.Title != "Renamed" {
		t.Fatal("expected title patch to reach the service")
	}
}

func TestUpdateBookmarkNotFound(t *testing.T) {
	provider := &stubBookmarkProvider{updateErr: sheets.ErrNotFound}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/bookmarks/gone", bytes.NewReader([]byte(`{"title":"Renamed"}`)))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Error != "record no longer exists" {
		t.Fatalf("unexpected error message %q", response.Error)
	}
}

func TestDeleteBookmark(t *testing.T) {
	provider := &stubBookmarkProvider{}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/bookmarks/b-2", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", recorder.Code)
	}
	if provider.deletedID != "b-2" {
		t.Fatalf("expected delete for b-2, got %q", provider.deletedID)
	}
}

func TestDeleteBookmarkAuthError(t *testing.T) {
	provider := &stubBookmarkProvider{deleteErr: sheets.ErrAuth}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/bookmarks/b-2", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", recorder.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Error != "remote store rejected credentials" {
		t.Fatalf("unexpected error message %q", response.Error)
	}
}

func TestListDuplicates(t *testing.T) {
	provider := &stubBookmarkProvider{
		groups: []services.DuplicateGroup{
			{
				URL: "https://tools.example.com",
				Bookmarks: []models.Bookmark{
					{ID: "b-1", Title: "Cybersecurity Tools", URL: "https://tools.example.com"},
					{ID: "b-3", Title: "Tools again", URL: "HTTPS://tools.example.com"},
				},
			},
		},
	}
	router := newBookmarksRouter(t, provider)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/duplicates", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var response DuplicatesResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(response.Groups))
	}
	if len(response.Groups[0].Bookmarks) != 2 {
		t.Fatalf("expected 2 bookmarks in group, got %d", len(response.Groups[0].Bookmarks))
	}
}

func TestStatusForErrorUnknown(t *testing.T) {
	status, message := statusForError(errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", status)
	}
	if message != "internal error" {
		t.Fatalf("unexpected message %q", message)
	}
}
