package dbmysql

import (
	"encoding/json"
	"time"
)

// Post is a unit of user-generated content. Tags are stored as a JSON array
// blob in a text column; a malformed blob reads back as an empty set, never
// an error.
type Post struct {
	PostID        uint64    `gorm:"primaryKey;column:post_id;autoIncrement" json:"id"`
	AuthorID      uint64    `gorm:"column:author_id;not null;index" json:"author_id"`
	Content       string    `gorm:"column:content;type:text" json:"content"`
	MediaURL      *string   `gorm:"column:media_url;size:255" json:"media_url"`
	MediaType     *string   `gorm:"column:media_type;size:50" json:"media_type"`
	Category      string    `gorm:"column:category;size:100" json:"category"`
	Tags          *string   `gorm:"column:tags;type:text" json:"-"`
	Visibility    string    `gorm:"column:visibility;size:20;default:'public'" json:"visibility"`
	LikesCount    int       `gorm:"column:likes_count;default:0" json:"likes_count"`
	ViewsCount    int       `gorm:"column:views_count;default:0" json:"views_count"`
	CommentsCount int       `gorm:"column:comments_count;default:0" json:"comments_count"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// GetTags parses the stored blob into a tag list. Degrades to empty on
// missing or malformed data.
func (p *Post) GetTags() []string {
	if p.Tags == nil || *p.Tags == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(*p.Tags), &tags); err != nil {
		return []string{}
	}
	return tags
}

// SetTags serializes the list into the blob column. Empty list stores NULL.
func (p *Post) SetTags(tags []string) {
	if len(tags) == 0 {
		p.Tags = nil
		return
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		p.Tags = nil
		return
	}
	s := string(raw)
	p.Tags = &s
}

// MarshalJSON exposes tags as a parsed list instead of the raw blob.
func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	return json.Marshal(struct {
		alias
		Tags []string `json:"tags"`
	}{
		alias: alias(p),
		Tags:  p.GetTags(),
	})
}
