package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"courseapi/internal/api/v1/handler"
	"courseapi/internal/config"
	"courseapi/internal/middleware"
	"courseapi/internal/repository"
	"courseapi/internal/service"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling)
	dsn := cfg.DBConnectionString
	// In a development environment, ensure SSL is disabled for local
	// testing. In production, the connection string should carry the
	// correct SSL settings.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open DB connection")
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Msg("Failed to ping DB")
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleMins) * time.Minute)

	// 2. Initialize validator
	validate := handler.NewValidator()

	// 3. Initialize repository & service & handler
	courseRepo := repository.NewCourseRepo(db, logger)
	courseSvc := service.NewCourseService(courseRepo)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)

	// 4. Create ServeMux router
	mux := http.NewServeMux()
	courseHandler.RegisterRoutes(mux)

	// 5. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	h := middleware.RecoverMiddleware(logger)(c.Handler(mux))
	return middleware.LoggerMiddleware(logger)(h), db, nil
}
