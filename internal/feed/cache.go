package feed

import (
	"context"
	"sort"
	"sync"
	"time"

	"pronet/internal/dbmysql"
)

const topTagsLimit = 20

// AggregateSource is the slice of the post store the cache derives from.
type AggregateSource interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListTaggedPosts(ctx context.Context) ([]dbmysql.Post, error)
}

// AggregateCache holds two derived views over all posts: the distinct
// categories and the top tags by frequency. Entries live at most one
// freshness window and are cleared outright whenever a post is created.
//
// Recomputation runs outside the lock. Each entry is guarded by a version
// counter captured before the scan: if an Invalidate lands while a recompute
// is in flight, the stale result is returned to that one caller but never
// stored, so the invalidation cannot be lost.
type AggregateCache struct {
	source AggregateSource
	window time.Duration

	mu            sync.Mutex
	version       uint64
	categories    []string
	categoriesAt  time.Time
	popularTags   []string
	popularTagsAt time.Time
}

func NewAggregateCache(source AggregateSource, window time.Duration) *AggregateCache {
	return &AggregateCache{source: source, window: window}
}

// Invalidate clears both entries. Called once per successful post creation
// and by nothing else; reads never invalidate.
func (c *AggregateCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	c.categories = nil
	c.popularTags = nil
}

func (c *AggregateCache) GetCategories(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	if c.categories != nil && time.Since(c.categoriesAt) <= c.window {
		cached := append([]string(nil), c.categories...)
		c.mu.Unlock()
		return cached, nil
	}
	startVersion := c.version
	c.mu.Unlock()

	categories, err := c.source.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}

	c.mu.Lock()
	if c.version == startVersion {
		c.categories = categories
		c.categoriesAt = time.Now()
	}
	c.mu.Unlock()

	return categories, nil
}

func (c *AggregateCache) GetPopularTags(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	if c.popularTags != nil && time.Since(c.popularTagsAt) <= c.window {
		cached := append([]string(nil), c.popularTags...)
		c.mu.Unlock()
		return cached, nil
	}
	startVersion := c.version
	c.mu.Unlock()

	tags, err := c.computePopularTags(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.version == startVersion {
		c.popularTags = tags
		c.popularTagsAt = time.Now()
	}
	c.mu.Unlock()

	return tags, nil
}

// computePopularTags ranks tags by occurrence count across all posts.
// Ties break by first occurrence in scan order, which together with the
// stable sort makes the ranking deterministic for a fixed post set.
func (c *AggregateCache) computePopularTags(ctx context.Context) ([]string, error) {
	posts, err := c.source.ListTaggedPosts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var firstSeen []string
	for _, post := range posts {
		for _, tag := range post.GetTags() {
			if _, seen := counts[tag]; !seen {
				firstSeen = append(firstSeen, tag)
			}
			counts[tag]++
		}
	}

	ranked := append([]string(nil), firstSeen...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if len(ranked) > topTagsLimit {
		ranked = ranked[:topTagsLimit]
	}
	if ranked == nil {
		ranked = []string{}
	}
	return ranked, nil
}
