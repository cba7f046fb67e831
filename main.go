package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/joho/godotenv"

	"github.com/4cecoder/arena/config"
	"github.com/4cecoder/arena/game"
	"github.com/4cecoder/arena/handlers"
	"github.com/4cecoder/arena/metrics"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println(err)
	}

	srvCfg := config.LoadServer()
	worldCfg, err := config.LoadWorld(srvCfg.WorldPath)
	if err != nil {
		log.Fatal(err)
	}

	collector, err := metrics.New(nil)
	if err != nil {
		log.Fatal(err)
	}

	hub := handlers.NewHub(nil)
	engine := game.NewEngine(worldCfg, hub, collector)
	hub.SetEngine(engine)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := engine.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("simulation stopped: %v", err)
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", handlers.HandleRoot(srvCfg.StaticDir))
	r.Get("/ws", hub.HandleWebSocket)
	r.Get("/healthz", handlers.HandleHealthz(engine))
	r.Handle("/metrics", collector.Handler())

	// Serve static files
	fileServer := http.FileServer(http.Dir(srvCfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	log.Printf("Server started on :%s", srvCfg.Port)
	if err := http.ListenAndServe(":"+srvCfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
