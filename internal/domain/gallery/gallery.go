package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image represents one gallery picture. The binary lives in the object
// store under ObjectKey; this record holds the display metadata.
type Image struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string    `json:"title" gorm:"not null"`
	Caption     string    `json:"caption"`
	Category    string    `json:"category"`
	ObjectKey   string    `json:"object_key" gorm:"not null;uniqueIndex"`
	ContentType string    `json:"content_type" gorm:"not null"`
	SizeBytes   int64     `json:"size_bytes" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Image) TableName() string {
	return "gallery_images"
}

// BeforeCreate sets a UUID before creating the record
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Validate checks if the image metadata is valid
func (i *Image) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if i.ObjectKey == "" {
		return fmt.Errorf("object_key is required")
	}
	if i.SizeBytes <= 0 {
		return fmt.Errorf("size_bytes must be positive")
	}
	return nil
}

// PublicURL joins the gallery base URL with the image's object key
func (i *Image) PublicURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + i.ObjectKey
}
