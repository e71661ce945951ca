package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	uc *usecase.UploadUsecase
}

func NewUploadHandler(uc *usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	admin := e.Group("/api/admin", guard)

	admin.POST("/upload-image", h.upload)
}

func (h *UploadHandler) upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No image file provided"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Upload failed"})
	}
	defer src.Close()

	out, err := h.uc.SaveImage(fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, UploadResponse{
		Message:  "Image uploaded successfully",
		ImageURL: out.ImageURL,
		Filename: out.Filename,
	})
}
