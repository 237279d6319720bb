package controllers

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/eliox01/bookMarking/internal/models"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

type DashboardController struct {
	service BookmarkProvider
}

type dashboardBookmark struct {
	ID       string
	Title    string
	URL      string
	Category string
	Tags     string
	Notes    string
	Created  string
}

type dashboardData struct {
	Query      string
	Category   string
	Categories []string
	Bookmarks  []dashboardBookmark
	Error      string
}

func NewDashboardController(service BookmarkProvider) (*DashboardController, error) {
	if service == nil {
		return nil, errors.New("bookmark service is nil")
	}

	return &DashboardController{service: service}, nil
}

func (c *DashboardController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("dashboard controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/", c.index)
	router.POST("/bookmarks/form", c.addFromForm)
	router.POST("/bookmarks/:id/delete", c.deleteFromForm)
	return nil
}

func (c *DashboardController) index(ctx *gin.Context) {
	data := dashboardData{
		Query:      ctx.Query("q"),
		Category:   ctx.Query("category"),
		Categories: models.DefaultCategories,
		Error:      ctx.Query("error"),
	}

	bookmarks, err := c.service.List(ctx.Request.Context(), data.Query, data.Category)
	if err != nil {
		// The page still renders; the banner carries the retry hint.
		_, data.Error = statusForError(err)
		ctx.HTML(http.StatusOK, "dashboard.html", data)
		return
	}

	data.Bookmarks = make([]dashboardBookmark, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		created := ""
		if !bookmark.CreatedAt.IsZero() {
			created = bookmark.CreatedAt.Format("2006-01-02 15:04")
		}
		data.Bookmarks = append(data.Bookmarks, dashboardBookmark{
			ID:       bookmark.ID,
			Title:    bookmark.Title,
			URL:      bookmark.URL,
			Category: bookmark.Category,
			Tags:     models.JoinTags(bookmark.Tags),
			Notes:    bookmark.Notes,
			Created:  created,
		})
	}

	ctx.HTML(http.StatusOK, "dashboard.html", data)
}

func (c *DashboardController) addFromForm(ctx *gin.Context) {
	bookmark := models.Bookmark{
		Title:    ctx.PostForm("title"),
		URL:      ctx.PostForm("url"),
		Category: ctx.PostForm("category"),
		Tags:     models.SplitTags(ctx.PostForm("tags")),
		Notes:    ctx.PostForm("notes"),
	}

	if _, err := c.service.Create(ctx.Request.Context(), bookmark); err != nil {
		_, message := statusForError(err)
		ctx.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(message))
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/")
}

func (c *DashboardController) deleteFromForm(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		_, message := statusForError(err)
		ctx.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(message))
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/")
}
