package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/eliox01/bookMarking/internal/models"
	"github.com/eliox01/bookMarking/internal/services"
	"github.com/eliox01/bookMarking/internal/sheets"

	"github.com/gin-gonic/gin"
)

type BookmarkProvider interface {
	List(ctx context.Context, query string, category string) ([]models.Bookmark, error)
	Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	Update(ctx context.Context, id string, patch models.BookmarkPatch) error
	Delete(ctx context.Context, id string) error
	Duplicates(ctx context.Context) ([]services.DuplicateGroup, error)
}

type BookmarksController struct {
	service BookmarkProvider
}

type BookmarksResponse struct {
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

type DuplicatesResponse struct {
	Groups []services.DuplicateGroup `json:"groups"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateBookmarkRequest struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Notes    string   `json:"notes"`
}

func NewBookmarksController(service BookmarkProvider) (*BookmarksController, error) {
	if service == nil {
		return nil, errors.New("bookmark service is nil")
	}

	return &BookmarksController{service: service}, nil
}

func (c *BookmarksController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("bookmarks controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.GET("/bookmarks", c.listBookmarks)
	router.POST("/bookmarks", c.createBookmark)
	router.PUT("/bookmarks/:id", c.updateBookmark)
	router.DELETE("/bookmarks/:id", c.deleteBookmark)
	router.GET("/duplicates", c.listDuplicates)
	return nil
}

func (c *BookmarksController) listBookmarks(ctx *gin.Context) {
	query := ctx.Query("q")
	category := ctx.Query("category")

	bookmarks, err := c.service.List(ctx.Request.Context(), query, category)
	if err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}

	ctx.JSON(http.StatusOK, BookmarksResponse{Bookmarks: bookmarks})
}

func (c *BookmarksController) createBookmark(ctx *gin.Context) {
	var req CreateBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := c.service.Create(ctx.Request.Context(), models.Bookmark{
		Title:    req.Title,
		URL:      req.URL,
		Category: req.Category,
		Tags:     req.Tags,
		Notes:    req.Notes,
	})
	if err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (c *BookmarksController) updateBookmark(ctx *gin.Context) {
	var patch models.BookmarkPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), patch); err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *BookmarksController) deleteBookmark(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *BookmarksController) listDuplicates(ctx *gin.Context) {
	groups, err := c.service.Duplicates(ctx.Request.Context())
	if err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}

	ctx.JSON(http.StatusOK, DuplicatesResponse{Groups: groups})
}

// statusForError maps the service sentinels onto HTTP statuses and the
// messages the dashboard shows.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, sheets.ErrNotFound):
		return http.StatusNotFound, "record no longer exists"
	case errors.Is(err, sheets.ErrAuth):
		return http.StatusBadGateway, "remote store rejected credentials"
	case errors.Is(err, sheets.ErrConnection):
		return http.StatusBadGateway, "remote store unreachable, try again"
	}
	return http.StatusInternalServerError, "internal error"
}
