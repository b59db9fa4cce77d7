package feed

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"pronet/internal/apperror"
	"pronet/internal/common"
	"pronet/internal/dbmysql"
)

// media helper to build the URL a stored blob is served under
var MediaBaseURL = "/media/"

func GetMediaURL(fileID string) string {
	return MediaBaseURL + fileID
}

// BlobStorage is the external collaborator holding media bytes. The feed
// only ever stores the returned reference; it never reads the bytes back.
type BlobStorage interface {
	UploadFile(ctx context.Context, filename, mediaType string, uploaderID uint64, data []byte) (string, error)
}

// Pagination is the metadata returned alongside a feed page.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

type FeedUsecase interface {
	CreatePost(ctx context.Context, authorID uint64, content string, fileData []byte, fileName, category string, tags []string, visibility string) (*dbmysql.Post, error)
	ListPosts(ctx context.Context, opts ListOptions) ([]dbmysql.Post, Pagination, error)
	LikePost(ctx context.Context, postID uint64) (int, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetPopularTags(ctx context.Context) ([]string, error)
}

type FeedService struct {
	postRepo PostRepository
	blobs    BlobStorage
	cache    *AggregateCache
}

func NewFeedService(postRepo PostRepository, blobs BlobStorage, cache *AggregateCache) *FeedService {
	return &FeedService{
		postRepo: postRepo,
		blobs:    blobs,
		cache:    cache,
	}
}

// CreatePost validates and persists a new post, uploading media if supplied,
// then invalidates the aggregate cache before returning.
func (s *FeedService) CreatePost(ctx context.Context, authorID uint64, content string, fileData []byte, fileName, category string, tags []string, visibility string) (*dbmysql.Post, error) {
	content = strings.TrimSpace(content)

	if content == "" && len(fileData) == 0 {
		return nil, apperror.New(apperror.ErrEmptyPost, "Post must have text or media.")
	}

	switch visibility {
	case "":
		visibility = "public"
	case "public", "private", "friends":
	default:
		return nil, apperror.Validation("visibility must be public, private or friends")
	}

	post := &dbmysql.Post{
		AuthorID:   authorID,
		Content:    content,
		Category:   strings.TrimSpace(category),
		Visibility: visibility,
	}
	post.SetTags(tags)

	if len(fileData) > 0 {
		mediaType, ok := common.DetectMediaType(fileName)
		if !ok {
			return nil, apperror.New(apperror.ErrInvalidMediaType, "Invalid media type.")
		}
		if len(fileData) > common.MaxMediaSize {
			return nil, apperror.New(apperror.ErrMediaTooLarge, "File too large. Max 10MB.")
		}

		fileID, err := s.blobs.UploadFile(ctx, fileName, mediaType.String(), authorID, fileData)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		url := GetMediaURL(fileID)
		mt := mediaType.String()
		post.MediaURL = &url
		post.MediaType = &mt
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, apperror.Storage(err)
	}

	// synchronous, before returning: the next aggregate read must see this post
	s.cache.Invalidate()

	return post, nil
}

func (s *FeedService) ListPosts(ctx context.Context, opts ListOptions) ([]dbmysql.Post, Pagination, error) {
	opts.Normalize()

	posts, total, err := s.postRepo.ListPosts(ctx, opts)
	if err != nil {
		return nil, Pagination{}, apperror.Storage(err)
	}
	if posts == nil {
		posts = []dbmysql.Post{}
	}

	pages := int((total + int64(opts.PerPage) - 1) / int64(opts.PerPage))
	meta := Pagination{
		Page:    opts.Page,
		PerPage: opts.PerPage,
		Total:   total,
		Pages:   pages,
		HasNext: int64(opts.Page)*int64(opts.PerPage) < total,
		HasPrev: opts.Page > 1,
	}

	return posts, meta, nil
}

// LikePost bumps the like counter by one. This is a plain read-increment-save:
// two truly concurrent likes on the same post can lose one update. Accepted
// tradeoff; an atomic increment at the storage layer is the upgrade path if
// exact counts ever matter.
func (s *FeedService) LikePost(ctx context.Context, postID uint64) (int, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.NotFound("post")
		}
		return 0, apperror.Storage(err)
	}

	post.LikesCount++
	if err := s.postRepo.UpdatePost(ctx, post); err != nil {
		return 0, apperror.Storage(err)
	}

	return post.LikesCount, nil
}

func (s *FeedService) GetCategories(ctx context.Context) ([]string, error) {
	categories, err := s.cache.GetCategories(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return categories, nil
}

func (s *FeedService) GetPopularTags(ctx context.Context) ([]string, error) {
	tags, err := s.cache.GetPopularTags(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return tags, nil
}
