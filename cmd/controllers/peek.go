package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageTitler interface {
	Title(ctx context.Context, pageURL string) (string, error)
}

type PeekController struct {
	service PageTitler
}

type PeekResponse struct {
	Title string `json:"title"`
}

func NewPeekController(service PageTitler) (*PeekController, error) {
	if service == nil {
		return nil, errors.New("page service is nil")
	}

	return &PeekController{service: service}, nil
}

func (c *PeekController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("peek controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.GET("/peek", c.peek)
	return nil
}

func (c *PeekController) peek(ctx *gin.Context) {
	pageURL := ctx.Query("url")
	if pageURL == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "url is required"})
		return
	}

	title, err := c.service.Title(ctx.Request.Context(), pageURL)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch page title"})
		return
	}

	ctx.JSON(http.StatusOK, PeekResponse{Title: title})
}
