package feed

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"pronet/internal/apperror"
	"pronet/internal/common"
)

// Handler wires the feed HTTP endpoints to the feed service.
type Handler struct {
	feed FeedUsecase
}

func NewHandler(feed FeedUsecase) *Handler {
	return &Handler{feed: feed}
}

type createPostRequest struct {
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Visibility string   `json:"visibility"`
}

// CreatePost accepts either a JSON body or a multipart form with a "media"
// file part.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteMessage(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createPostRequest
	var fileData []byte
	var fileName string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// one extra MB of headroom; the service enforces the real cap
		if err := r.ParseMultipartForm(common.MaxMediaSize + 1<<20); err != nil {
			common.WriteError(w, apperror.New(apperror.ErrMediaTooLarge, "File too large. Max 10MB."))
			return
		}
		req.Content = r.FormValue("content")
		req.Category = r.FormValue("category")
		req.Visibility = r.FormValue("visibility")
		// tags arrive as a JSON array string; malformed degrades to none
		if raw := r.FormValue("tags"); raw != "" {
			_ = json.Unmarshal([]byte(raw), &req.Tags)
		}

		if file, header, err := r.FormFile("media"); err == nil {
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				common.WriteError(w, apperror.Storage(err))
				return
			}
			fileData = data
			fileName = header.Filename
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(w, apperror.Validation("invalid request body"))
			return
		}
	}

	post, err := h.feed.CreatePost(r.Context(), authorID, req.Content, fileData, fileName, req.Category, req.Tags, req.Visibility)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"post":    post,
	})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := ListOptions{
		Search:     strings.TrimSpace(q.Get("search")),
		Category:   strings.TrimSpace(q.Get("category")),
		Visibility: strings.TrimSpace(q.Get("visibility")),
		SortBy:     q.Get("sort_by"),
		SortOrder:  q.Get("sort_order"),
		Page:       intParam(q.Get("page"), 1),
		PerPage:    intParam(q.Get("per_page"), defaultPerPage),
	}
	if tags := strings.TrimSpace(q.Get("tags")); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.Tags = append(opts.Tags, tag)
			}
		}
	}

	posts, meta, err := h.feed.ListPosts(r.Context(), opts)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"posts":      posts,
		"pagination": meta,
	})
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, apperror.Validation("invalid post id"))
		return
	}

	likes, err := h.feed.LikePost(r.Context(), postID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"likes_count": likes,
	})
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.feed.GetCategories(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

func (h *Handler) GetPopularTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.feed.GetPopularTags(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tags":    tags,
	})
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
