package feed

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"pronet/internal/dbmysql"
)

// ListOptions carries the feed query parameters after normalization.
type ListOptions struct {
	Search     string
	Category   string
	Visibility string
	Tags       []string // post must contain ALL of these
	SortBy     string
	SortOrder  string
	Page       int
	PerPage    int
}

const (
	defaultPerPage = 10
	maxPerPage     = 50
)

// sortColumns whitelists the attributes a caller may order by. Anything else
// falls back to created_at.
var sortColumns = map[string]string{
	"created_at":     "created_at",
	"updated_at":     "updated_at",
	"likes_count":    "likes_count",
	"views_count":    "views_count",
	"comments_count": "comments_count",
}

// Normalize clamps and defaults the options in place.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PerPage < 1 {
		o.PerPage = defaultPerPage
	}
	if o.PerPage > maxPerPage {
		o.PerPage = maxPerPage
	}
	if _, ok := sortColumns[o.SortBy]; !ok {
		o.SortBy = "created_at"
	}
	if o.SortOrder != "asc" {
		o.SortOrder = "desc"
	}
}

type PostRepository interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	GetPostByID(ctx context.Context, postID uint64) (*dbmysql.Post, error)
	UpdatePost(ctx context.Context, post *dbmysql.Post) error
	ListPosts(ctx context.Context, opts ListOptions) ([]dbmysql.Post, int64, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListTaggedPosts(ctx context.Context) ([]dbmysql.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, postID uint64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).First(&post, "post_id = ?", postID).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// ListPosts composes the filter, search, sort and pagination predicates into
// one query. opts is assumed normalized.
func (r *postRepository) ListPosts(ctx context.Context, opts ListOptions) ([]dbmysql.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&dbmysql.Post{})

	if opts.Search != "" {
		needle := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where("LOWER(content) LIKE ? OR LOWER(category) LIKE ?", needle, needle)
	}

	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}

	if opts.Visibility != "" {
		query = query.Where("visibility = ?", opts.Visibility)
	}

	// AND across tags: every tag must appear in the serialized blob. The
	// surrounding quotes keep "go" from matching "golang".
	for _, tag := range opts.Tags {
		query = query.Where("tags LIKE ?", `%"`+tag+`"%`)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []dbmysql.Post
	err := query.
		Order(sortColumns[opts.SortBy] + " " + strings.ToUpper(opts.SortOrder)).
		Offset((opts.Page - 1) * opts.PerPage).
		Limit(opts.PerPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *postRepository) ListTaggedPosts(ctx context.Context) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Where("tags IS NOT NULL AND tags <> ''").
		Order("post_id ASC").
		Find(&posts).Error
	return posts, err
}
