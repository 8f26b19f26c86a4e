// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/visionary-ai/medassist/internal/config"
	"github.com/visionary-ai/medassist/internal/domain"
	"github.com/visionary-ai/medassist/internal/handlers"
	"github.com/visionary-ai/medassist/internal/middleware"
	chatrepo "github.com/visionary-ai/medassist/internal/repository/chat"
	messagerepo "github.com/visionary-ai/medassist/internal/repository/message"
	userrepo "github.com/visionary-ai/medassist/internal/repository/user"
	"github.com/visionary-ai/medassist/internal/services"
	"github.com/visionary-ai/medassist/internal/services/ai"
	"github.com/visionary-ai/medassist/internal/services/directory"
	"github.com/visionary-ai/medassist/internal/services/geocode"
	"github.com/visionary-ai/medassist/internal/services/location"
	"github.com/visionary-ai/medassist/internal/services/provider"
	"github.com/visionary-ai/medassist/internal/services/summary"
	"github.com/visionary-ai/medassist/internal/services/taxonomy"
)

// serverLocator stands in for the device positioning collaborator on the
// HTTP surface, where no device position exists. Callers without a stored
// postal code are asked for a manual ZIP.
type serverLocator struct{}

func (serverLocator) CurrentLocation(ctx context.Context) (domain.Coordinates, error) {
	return domain.Coordinates{}, location.ErrPermissionDenied
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-User-ID")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.Message{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	userRepo := userrepo.NewUserRepository(db)
	chatRepo := chatrepo.NewChatRepository(db)
	messageRepo := messagerepo.NewMessageRepository(db)

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.LLMAPIKey
	aiConfig.BaseURL = cfg.LLMBaseURL
	aiConfig.Model = cfg.LLMModel
	aiProvider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}

	geoConfig := geocode.DefaultConfig()
	geoConfig.BaseURL = cfg.GeocoderBaseURL
	geocoder, err := geocode.NewClient(geoConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize geocoding client: %v", err)
	}

	dirConfig := directory.DefaultConfig()
	dirConfig.BaseURL = cfg.DirectoryBaseURL
	dirClient, err := directory.NewClient(dirConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize directory client: %v", err)
	}

	// An unresolvable category default is a deployment error, caught here
	// rather than on a user's care search.
	matcher, err := taxonomy.NewMatcher(taxonomy.Build(taxonomy.DefaultRecords()), map[string]string{
		domain.ChatCategorySkin: "Dermatology",
		domain.ChatCategoryOral: "General Practice",
	})
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	discoveryConfig := provider.DefaultConfig()
	discoveryConfig.DefaultStateCode = cfg.DefaultStateCode
	discovery, err := provider.NewDiscovery(dirClient, geocoder, discoveryConfig, services.NewLogger("provider"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize provider discovery: %v", err)
	}

	resolver := location.NewResolver(userRepo, serverLocator{}, geocoder, services.NewLogger("location"))

	summaryConfig := summary.DefaultConfig()
	summaryConfig.Model = cfg.LLMModel

	assistantService, err := services.NewAssistantService(
		chatRepo,
		messageRepo,
		aiProvider,
		matcher,
		discovery,
		resolver,
		summaryConfig,
		services.NewLogger("assistant"),
	)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize assistant service: %v", err)
	}

	// --- Handlers ---
	assistantHandler, err := handlers.NewAssistantHandler(assistantService)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize assistant handler: %v", err)
	}

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireUser)
	api.HandleFunc("/chats", assistantHandler.GetUserChats).Methods("GET")
	api.HandleFunc("/chats", assistantHandler.CreateChat).Methods("POST")
	api.HandleFunc("/chats/{id}", assistantHandler.DeleteChat).Methods("DELETE")
	api.HandleFunc("/chats/{id}/messages", assistantHandler.GetChatMessages).Methods("GET")
	api.HandleFunc("/chats/{id}/messages", assistantHandler.PostMessage).Methods("POST")
	api.HandleFunc("/chats/{id}/assistant-messages", assistantHandler.PostAssistantMessage).Methods("POST")
	api.HandleFunc("/chats/{id}/summary", assistantHandler.GetSummary).Methods("GET")
	api.HandleFunc("/chats/{id}/care", assistantHandler.FindCare).Methods("GET")
	api.HandleFunc("/profile/postal-code", assistantHandler.UpdatePostalCode).Methods("PUT")

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	log.Printf("Assistant core starting on port %s", cfg.ServerPort)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")
	assistantService.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
