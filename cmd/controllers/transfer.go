package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TransferProvider interface {
	ExportWorkbook(ctx context.Context) ([]byte, error)
	ImportWorkbook(ctx context.Context, content []byte) (int, int, error)
}

type TransferController struct {
	service TransferProvider
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func NewTransferController(service TransferProvider) (*TransferController, error) {
	if service == nil {
		return nil, errors.New("transfer service is nil")
	}

	return &TransferController{service: service}, nil
}

func (c *TransferController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("transfer controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.GET("/export", c.exportWorkbook)
	router.POST("/import", c.importWorkbook)
	return nil
}

func (c *TransferController) exportWorkbook(ctx *gin.Context) {
	content, err := c.service.ExportWorkbook(ctx.Request.Context())
	if err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="bookmarks.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, content)
}

func (c *TransferController) importWorkbook(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "workbook file is required"})
		return
	}

	opened, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open workbook file"})
		return
	}

	content, readErr := io.ReadAll(opened)
	closeErr := opened.Close()
	if readErr != nil || closeErr != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read workbook file"})
		return
	}

	imported, skipped, err := c.service.ImportWorkbook(ctx.Request.Context(), content)
	if err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}

	ctx.JSON(http.StatusOK, ImportResponse{Imported: imported, Skipped: skipped})
}
