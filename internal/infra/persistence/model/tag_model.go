package model

import (
	"time"

	"github.com/google/uuid"
)

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(50);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// PostToTagModel mirrors the 'post_to_tag' join table.
type PostToTagModel struct {
	PostID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (PostToTagModel) TableName() string {
	return "post_to_tag"
}
