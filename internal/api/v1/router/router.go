package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New builds the HTTP handler and opens the database connection it serves
// from. The caller owns closing the returned *sql.DB.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling)
	dsn := cfg.DatabaseURL
	// Local development typically runs Postgres without TLS; production DSNs
	// are expected to carry their own sslmode.
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

	// Ping the database to ensure connection is valid
	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Msg("Failed to ping DB")
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// Set reasonable connection pool limits
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(db)
	lessonRepo := repository.NewLessonRepository(db, logger)
	topicRepo := repository.NewTopicRepository(db, logger)
	sessionRepo := repository.NewStudySessionRepo(db)

	courseSvc := service.NewCourseService(courseRepo)
	lessonSvc := service.NewLessonService(lessonRepo, courseRepo, logger)
	topicSvc := service.NewTopicService(topicRepo, courseRepo, logger)
	sessionSvc := service.NewStudySessionService(sessionRepo)
	statsSvc := service.NewStatsService(sessionRepo, courseRepo)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	lessonHandler := handler.NewLessonHandler(lessonSvc, validate, logger)
	topicHandler := handler.NewTopicHandler(topicSvc, validate, logger)
	sessionHandler := handler.NewStudySessionHandler(sessionSvc, validate, logger)
	statsHandler := handler.NewStatsHandler(statsSvc, logger)

	// 4. Create ServeMux router with all resources mounted under /api
	apiMux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiMux)
	lessonHandler.RegisterRoutes(apiMux)
	topicHandler.RegisterRoutes(apiMux)
	sessionHandler.RegisterRoutes(apiMux)
	statsHandler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	// 5. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), db, nil
}
