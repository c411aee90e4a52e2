package api

import (
	"net/http"

	_ "github.com/AlexZinkM/paper-wallet/docs"
	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/handler"
	"github.com/AlexZinkM/paper-wallet/internal/session"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(e engine.Engine) http.Handler {
	paperHandler := handler.NewPaperHandler(session.NewStore(e), e)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Session endpoints
	mux.HandleFunc("/sessions", paperHandler.CreateSession)
	mux.HandleFunc("/sessions/{id}", paperHandler.DeleteSession)
	mux.HandleFunc("/sessions/{id}/pointer", paperHandler.Pointer)
	mux.HandleFunc("/sessions/{id}/key", paperHandler.Key)
	mux.HandleFunc("/sessions/{id}/progress", paperHandler.Progress)
	mux.HandleFunc("/sessions/{id}/show", paperHandler.Show)
	mux.HandleFunc("/sessions/{id}/confirm", paperHandler.Confirm)
	mux.HandleFunc("/sessions/{id}/clear", paperHandler.Clear)
	mux.HandleFunc("/sessions/{id}/wallet", paperHandler.Wallet)

	mux.HandleFunc("/greet", paperHandler.Greet)

	return mux
}
