package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/post"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresPostRepository implements PostRepository using GORM
type PostgresPostRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresPostRepository creates a new PostgreSQL post repository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{
		db:  db,
		log: logger.Repository("post"),
	}
}

func (r *PostgresPostRepository) Create(p *post.Post) error {
	r.log.Debug("creating new post", "title", p.Title)

	if err := p.Validate(); err != nil {
		r.log.Error("post validation failed", "error", err)
		return fmt.Errorf("post validation failed: %w", err)
	}

	if err := r.db.Create(p).Error; err != nil {
		r.log.Error("failed to create post", "error", err, "title", p.Title)
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.log.Info("post created successfully", "post_id", p.ID, "slug", p.Slug)
	return nil
}

func (r *PostgresPostRepository) GetByID(id string) (*post.Post, error) {
	r.log.Debug("retrieving post by ID", "post_id", id)

	postID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid post ID format", "post_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid post ID", ErrNotFound)
	}

	var p post.Post
	if err := r.db.First(&p, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve post", "post_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}

	return &p, nil
}

func (r *PostgresPostRepository) GetBySlug(slug string) (*post.Post, error) {
	r.log.Debug("retrieving post by slug", "slug", slug)

	var p post.Post
	if err := r.db.First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve post by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to retrieve post by slug: %w", err)
	}

	return &p, nil
}

func (r *PostgresPostRepository) GetAll() ([]*post.Post, error) {
	r.log.Debug("retrieving all posts")

	var posts []*post.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		r.log.Error("failed to retrieve posts", "error", err)
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}

	return posts, nil
}

func (r *PostgresPostRepository) GetPublished(limit int) ([]*post.Post, error) {
	r.log.Debug("retrieving published posts", "limit", limit)

	query := r.db.Where("published = ?", true).Order("published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var posts []*post.Post
	if err := query.Find(&posts).Error; err != nil {
		r.log.Error("failed to retrieve published posts", "error", err)
		return nil, fmt.Errorf("failed to retrieve published posts: %w", err)
	}

	return posts, nil
}

func (r *PostgresPostRepository) Update(p *post.Post) error {
	r.log.Debug("updating post", "post_id", p.ID)

	if err := p.Validate(); err != nil {
		r.log.Error("post validation failed", "error", err, "post_id", p.ID)
		return fmt.Errorf("post validation failed: %w", err)
	}

	result := r.db.Model(&post.Post{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":        p.Title,
		"slug":         p.Slug,
		"excerpt":      p.Excerpt,
		"body":         p.Body,
		"author_name":  p.AuthorName,
		"tags":         p.Tags,
		"published":    p.Published,
		"published_at": p.PublishedAt,
	})
	if result.Error != nil {
		r.log.Error("failed to update post", "post_id", p.ID, "error", result.Error)
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("post updated successfully", "post_id", p.ID)
	return nil
}

func (r *PostgresPostRepository) Delete(id string) error {
	r.log.Debug("deleting post", "post_id", id)

	postID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid post ID format", "post_id", id, "error", err)
		return fmt.Errorf("%w: invalid post ID", ErrNotFound)
	}

	result := r.db.Delete(&post.Post{}, "id = ?", postID)
	if result.Error != nil {
		r.log.Error("failed to delete post", "post_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("post deleted successfully", "post_id", id)
	return nil
}
