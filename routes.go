package forgegate

import (
	"github.com/gorilla/mux"
	"github.com/writeas/web-core/log"
)

// InitRoutes adds the broker's routes to the given router.
func InitRoutes(app *app, r *mux.Router) *mux.Router {
	handler := NewHandler(app)

	log.Info("Adding %s routes...", app.oauthClient.GetProvider())
	r.HandleFunc("/authorize/{user}/{repo}", handler.OAuth(handleAuthorize)).Methods("GET")
	r.HandleFunc("/callback", handler.OAuth(handleOAuthCallback)).Methods("GET")
	r.HandleFunc("/token/{user}/{repo}", handler.OAuth(handleVerifyToken)).Methods("GET")
	r.HandleFunc("/token/{user}/{repo}", handler.OAuth(handleExchangeToken)).Methods("POST")

	r.HandleFunc("/health", handler.LogHandlerFunc(handleViewHealth)).Methods("GET")
	r.HandleFunc("/", handler.LogHandlerFunc(handleViewHealth)).Methods("GET")
	return r
}
