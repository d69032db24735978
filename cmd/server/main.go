// @title           Message Board API
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /
package main

import (
	"context"
	"log"
	"net/http"
	"tablica-wiadomosci/internal/api"
	"tablica-wiadomosci/internal/config"
	"tablica-wiadomosci/internal/database"
	"tablica-wiadomosci/internal/storage"
	"tablica-wiadomosci/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "tablica-wiadomosci/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DB.Source)
	if err != nil {
		log.Fatalf("Nieprawidłowy connection string: %v", err)
	}
	poolConfig.MaxConns = cfg.DB.MaxConns

	dbpool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Nie można połączyć się z bazą danych: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Nie można pingować bazy danych: %v", err)
	}
	log.Printf("Pomyślnie połączono z bazą danych (pula: %d połączeń)", cfg.DB.MaxConns)

	var blobs storage.BlobStore
	if cfg.Storage.Provider == "s3" {
		blobs, err = storage.NewS3Storage(context.Background(),
			cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
		if err != nil {
			log.Fatalf("Nie można zainicjować klienta S3: %v", err)
		}
		log.Printf("Obrazy będą przechowywane w S3: %s", cfg.Storage.Bucket)
	} else {
		blobs, err = storage.NewLocalStorage(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Nie można zainicjować local storage: %v", err)
		}
		log.Printf("Obrazy będą przechowywane w: %s", cfg.Storage.Path)
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(dbpool)
	server := api.NewServer(cfg, store, blobs, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AppHost},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))
	r.Use(api.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Tablica wiadomości działa! Dokumentacja dostępna pod /swagger/index.html"))
	})

	r.Post("/signup", server.SignupHandler)
	r.Post("/signin", server.SigninHandler)
	r.Get("/signout", server.SignoutHandler)
	r.Get("/api/member", server.GetMemberHandler)

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(server.SessionMiddleware)
		r.Get("/board", server.BoardHandler)
		r.Post("/createMessage", server.CreateMessageHandler)
		r.Post("/deleteMessage", server.DeleteMessageHandler)
		r.Patch("/api/member", server.PatchMemberHandler)
		r.Get("/api/v1/events", server.GetEventsHandler)
	})

	log.Println("Uruchamianie serwera na porcie :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
