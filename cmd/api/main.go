package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/cors"

	"blogboard/auth"
	"blogboard/cmd/api/router"
	"blogboard/internal/logger"
	"blogboard/config"
	"blogboard/db"
	_ "blogboard/docs" // swag will generate this package
	"blogboard/eventbus"
	"blogboard/repositories"
	"blogboard/services"
)

// @title           Blogboard API
// @version         1.0
// @description     API for authoring and browsing blog posts
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	// Kafka is optional for the API: without brokers, lifecycle events are
	// simply not published.
	var bus eventbus.EventBus
	if brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); brokers != "" {
		kafkaBus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			log.Fatal(err)
		}
		defer kafkaBus.Close()
		bus = kafkaBus
	}

	cfg := config.GetConfig()
	database := db.Database()

	postRepo := repositories.NewPostRepository(database)
	userRepo := repositories.NewUserRepository(database)
	settingsRepo := repositories.NewSettingsRepository(database)
	newsletterRepo := repositories.NewNewsletterRepository(database)

	// Live identity feed: each successful sign-in is published here.
	sessionWatcher := auth.NewSessionWatcher()
	defer sessionWatcher.Close()
	go logSignIns(sessionWatcher)

	postSvc := services.NewPostService(postRepo, bus, cfg.PageSize())
	authSvc := services.NewAuthService(userRepo, jwtManager, sessionWatcher)
	settingsSvc := services.NewSettingsService(settingsRepo, newsletterRepo, userRepo, postRepo)
	importSvc := services.NewImportService(postSvc, cfg.FeedImport.MaxItems, cfg.FeedImport.FetchContent)

	editorSessions := services.NewEditorSessions(postSvc, 0, 0)
	defer editorSessions.Close()

	r := router.New(router.Deps{
		JWT:      jwtManager,
		Posts:    postSvc,
		Auth:     authSvc,
		Settings: settingsSvc,
		Import:   importSvc,
		Sessions: editorSessions,
	})

	// The SPA runs on another origin, so the whole engine is wrapped in a
	// CORS handler.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}).Handler(r)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	logger.Log.Infof("api listening on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// logSignIns consumes the session watcher stream so sign-in activity shows
// up in the structured log.
func logSignIns(w *auth.SessionWatcher) {
	states, cancel := w.Subscribe()
	defer cancel()
	for st := range states {
		if st.SignedIn() {
			logger.InfoWithFields("session signed in", logger.Fields{
				"user_id": st.Identity.ID,
				"email":   st.Identity.Email,
			})
		}
	}
}

func allowedOrigins() []string {
	v := os.Getenv("CORS_ALLOWED_ORIGINS")
	if v == "" {
		return []string{"http://localhost:3000"}
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
