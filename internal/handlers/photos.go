package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/services"
)

type PhotosHandler struct {
	feed      *services.FeedService
	downloads *services.DownloadService
	previews  *services.PreviewService
}

func NewPhotosHandler(feed *services.FeedService, downloads *services.DownloadService, previews *services.PreviewService) *PhotosHandler {
	return &PhotosHandler{
		feed:      feed,
		downloads: downloads,
		previews:  previews,
	}
}

// ListPhotos godoc
// @Summary     Public photo feed
// @Description Lists approved public photos, newest first, optionally filtered by title or tag.
// @Tags        photos
// @Produce     json
// @Param       page query int false "Zero-based page number"
// @Param       q    query string false "Search term"
// @Success     200 {object} models.FeedResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /photos [get]
func (h *PhotosHandler) ListPhotos(c *gin.Context) {
	page := 0
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "invalid page")
			return
		}
		page = n
	}

	feed, err := h.feed.ListPhotos(c.Request.Context(), page, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Download godoc
// @Summary     Download original
// @Description Returns a short-lived signed URL for the full resolution original. Only the owner or a buyer with an approved purchase may download.
// @Tags        photos
// @Produce     json
// @Security    Bearer
// @Param       photo_id path string true "Photo ID"
// @Success     200 {object} models.DownloadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /photos/{photo_id}/download [get]
func (h *PhotosHandler) Download(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	resp, err := h.downloads.SignedDownloadURL(c.Request.Context(), caller, c.Param("photo_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GeneratePreview godoc
// @Summary     Generate preview
// @Description Renders a resized, watermarked preview of the caller's photo and publishes it to the public bucket.
// @Tags        photos
// @Produce     json
// @Security    Bearer
// @Param       photo_id path string true "Photo ID"
// @Success     200 {object} models.PreviewResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /photos/{photo_id}/preview [post]
func (h *PhotosHandler) GeneratePreview(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	resp, err := h.previews.GeneratePreview(c.Request.Context(), caller, c.Param("photo_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPurchases godoc
// @Summary     List purchases
// @Description Lists the caller's approved purchases, newest first.
// @Tags        photos
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.PurchasesResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /purchases [get]
func (h *PhotosHandler) ListPurchases(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	purchases, err := h.downloads.ListPurchases(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PurchasesResponse{Purchases: purchases})
}
