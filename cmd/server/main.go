package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"stop-route-service/internal/adapters/repositories"
	"stop-route-service/internal/api"
	"stop-route-service/internal/config"
	"stop-route-service/internal/domain"
	"stop-route-service/internal/platform/db"
	"stop-route-service/internal/services"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQL stop repository behind its port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatal(err)
	}

	dsn := cfg.DBPath
	if cfg.DBDriver == "pgx" {
		dsn = cfg.DatabaseURL
	}

	conn, err := db.Open(cfg.DBDriver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed demo stops on startup for local runs.
	if err := initAndSeed(conn, repositories.DialectForDriver(cfg.DBDriver), cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLStopRepository(conn)
	session := services.NewRouteSession()
	router := api.NewRouter(repo, session, api.RouterConfig{
		Depot:        domain.NewStop(0, cfg.Depot.Name, cfg.Depot.Lat, cfg.Depot.Lon, 0),
		RouteCount:   cfg.RouteCount,
		AvgSpeedKmph: cfg.AvgSpeedKmph,
	})

	log.Printf("Server listening addr=:%s driver=%s routes=%d speed_kmph=%.1f",
		cfg.Port, cfg.DBDriver, cfg.RouteCount, cfg.AvgSpeedKmph)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if seedPath == "" {
		log.Println("SEED_PATH empty, skipping seed")
		return nil
	}

	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
