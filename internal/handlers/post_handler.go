package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/post"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type PostHandler struct {
	postRepo postgres.PostRepository
}

func NewPostHandler(postRepo postgres.PostRepository) *PostHandler {
	return &PostHandler{postRepo: postRepo}
}

type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Body       string   `json:"body" binding:"required"`
	AuthorName string   `json:"author_name"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

type UpdatePostRequest struct {
	Title      *string  `json:"title"`
	Slug       *string  `json:"slug"`
	Excerpt    *string  `json:"excerpt"`
	Body       *string  `json:"body"`
	AuthorName *string  `json:"author_name"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
}

// GetPublished handles GET /api/posts
func (h *PostHandler) GetPublished(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequestError(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	posts, err := h.postRepo.GetPublished(limit)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve posts")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetBySlug handles GET /api/posts/:slug. Unpublished posts are not
// reachable through the public route.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.postRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve post")
		return
	}
	if !p.Published {
		response.NotFoundError(c, "Post not found")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", p)
}

// List handles GET /api/admin/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postRepo.GetAll()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve posts")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// Create handles POST /api/admin/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	p := &post.Post{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		AuthorName: req.AuthorName,
		Tags:       pq.StringArray(req.Tags),
	}
	if req.Published {
		p.Publish(time.Now())
	}

	if err := h.postRepo.Create(p); err != nil {
		response.InternalServerError(c, "Failed to create post")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Post created", p)
}

// Update handles PUT /api/admin/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	p, err := h.postRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve post")
		return
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = post.Slugify(*req.Slug)
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		p.Body = *req.Body
	}
	if req.AuthorName != nil {
		p.AuthorName = *req.AuthorName
	}
	if req.Tags != nil {
		p.Tags = pq.StringArray(req.Tags)
	}
	if req.Published != nil {
		if *req.Published {
			p.Publish(time.Now())
		} else {
			p.Unpublish()
		}
	}

	if err := h.postRepo.Update(p); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to update post")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Post updated", p)
}

// Delete handles DELETE /api/admin/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postRepo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to delete post")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Post deleted", nil)
}
