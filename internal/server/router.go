package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"pronet/internal/common"
	"pronet/internal/feed"
	"pronet/internal/media"
	"pronet/internal/user"
)

// NewRouter assembles the HTTP surface. Bearer auth is enforced per route:
// signup, login, the feed reads and media serving are public, everything
// else requires a valid session token.
func NewRouter(users *user.Handler, posts *feed.Handler, files *media.Handler, tokens *common.TokenService) *mux.Router {
	router := mux.NewRouter()
	authed := common.AuthMiddleware(tokens)

	router.HandleFunc("/api/auth/signup", users.Signup).Methods("POST")
	router.HandleFunc("/api/auth/login", users.Login).Methods("POST")
	router.Handle("/api/auth/profile", authed(http.HandlerFunc(users.Profile))).Methods("GET")

	router.Handle("/api/posts", authed(http.HandlerFunc(posts.CreatePost))).Methods("POST")
	router.HandleFunc("/api/posts", posts.ListPosts).Methods("GET")
	router.HandleFunc("/api/posts/categories", posts.GetCategories).Methods("GET")
	router.HandleFunc("/api/posts/popular-tags", posts.GetPopularTags).Methods("GET")
	router.Handle("/api/posts/{id}/like", authed(http.HandlerFunc(posts.LikePost))).Methods("POST")

	router.HandleFunc("/media/{fileId}", files.ServeFile).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "status": "ok"})
	}).Methods("GET")

	return router
}
