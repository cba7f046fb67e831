// Package handlers serve.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/4cecoder/arena/game"
)

// HandleRoot serves the client entry page from the static directory.
func HandleRoot(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, staticDir+"/index.html")
	}
}

// HandleHealthz reports liveness plus the current tick count.
func HandleHealthz(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","tick":%d}`, engine.Tick())
	}
}
