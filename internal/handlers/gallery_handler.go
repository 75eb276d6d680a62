package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/gallery"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/objectstore"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

// maxImageSize caps gallery uploads at 10 MiB.
const maxImageSize = 10 << 20

type GalleryHandler struct {
	galleryRepo postgres.GalleryRepository
	store       *objectstore.Store
	publicURL   string
	log         *log.Logger
}

func NewGalleryHandler(galleryRepo postgres.GalleryRepository, store *objectstore.Store, publicURL string) *GalleryHandler {
	return &GalleryHandler{
		galleryRepo: galleryRepo,
		store:       store,
		publicURL:   publicURL,
		log:         logger.Handler("gallery"),
	}
}

type imageResponse struct {
	*gallery.Image
	URL string `json:"url"`
}

func (h *GalleryHandler) withURL(img *gallery.Image) imageResponse {
	return imageResponse{Image: img, URL: img.PublicURL(h.publicURL)}
}

// List handles GET /api/gallery
func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.galleryRepo.GetAll()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve gallery")
		return
	}

	out := make([]imageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, h.withURL(img))
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"images": out,
		"count":  len(out),
	})
}

// Upload handles POST /api/admin/gallery. The request is multipart: an
// "image" file part plus title/caption/category form fields.
func (h *GalleryHandler) Upload(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		response.BadRequestError(c, "title is required")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequestError(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequestError(c, "image exceeds the 10MB limit")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.BadRequestError(c, "only image uploads are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}
	defer file.Close()

	key, err := h.store.Put(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		h.log.Error("failed to store image binary", "filename", fileHeader.Filename, "error", err)
		response.InternalServerError(c, "Failed to store image")
		return
	}

	img := &gallery.Image{
		Title:       title,
		Caption:     strings.TrimSpace(c.PostForm("caption")),
		Category:    strings.TrimSpace(c.PostForm("category")),
		ObjectKey:   key,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
	}

	if err := h.galleryRepo.Create(img); err != nil {
		// Orphaned binaries are worse than a failed upload; best effort cleanup.
		h.log.Error("failed to save image metadata, removing object", "object_key", key, "error", err)
		_ = h.store.Remove(c.Request.Context(), key)
		response.InternalServerError(c, "Failed to save image metadata")
		return
	}

	h.log.Info("image uploaded", "image_id", img.ID, "object_key", key)
	response.SuccessResponse(c, http.StatusCreated, "Image uploaded", h.withURL(img))
}

// Delete handles DELETE /api/admin/gallery/:id. The database row goes
// first; the object is removed afterwards so a store failure never leaves
// a dangling public listing.
func (h *GalleryHandler) Delete(c *gin.Context) {
	img, err := h.galleryRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Image not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve image")
		return
	}

	if err := h.galleryRepo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Image not found")
			return
		}
		response.InternalServerError(c, "Failed to delete image")
		return
	}

	_ = h.store.Remove(c.Request.Context(), img.ObjectKey)

	response.SuccessResponse(c, http.StatusOK, "Image deleted", nil)
}
