package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/handler"
	"jobtrack/internal/llm"
	"jobtrack/internal/middleware"
	"jobtrack/internal/repository/blob"
	"jobtrack/internal/repository/sqlite"
	serviceDocsys "jobtrack/internal/service/docsystem"
	serviceJobs "jobtrack/internal/service/jobs"
	serviceReminders "jobtrack/internal/service/reminders"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.Environment == "prod" {
		logFile, err := config.SetupLogFile(filepath.Join(cfg.DataDir, "logs"), 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOutput = logFile
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
	)

	// Open the folder/file object store
	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.ObjectStorePath())
	if err != nil {
		log.Fatalf("Failed to open object store: %v", err)
	}
	defer db.Close()

	logger.Info("object store ready", "path", cfg.ObjectStorePath())

	// Slot store for the job and reminder collections
	slots, err := blob.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open slot store: %v", err)
	}

	// Repositories
	folderRepo := sqlite.NewFolderRepository(db)
	fileRepo := sqlite.NewFileRepository(db)
	txManager := sqlite.NewTransactionManager(db)

	// Services
	folderService := serviceDocsys.NewFolderService(folderRepo, fileRepo, txManager, logger)
	fileService := serviceDocsys.NewFileService(fileRepo, folderRepo, logger)
	viewService := serviceDocsys.NewViewService(fileService, logger)
	jobService := serviceJobs.NewService(slots, logger)
	reminderService := serviceReminders.NewService(slots, logger)

	// LLM proxy
	registry, err := llm.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load model profiles: %v", err)
	}
	llmClient := llm.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, registry, logger)

	// Handlers
	jobHandler := handler.NewJobHandler(jobService, logger)
	reminderHandler := handler.NewReminderHandler(reminderService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(jobService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	fileHandler := handler.NewFileHandler(fileService, viewService, logger)
	proxyHandler := handler.NewProxyHandler(llmClient, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Job routes
	mux.HandleFunc("GET /api/jobs", jobHandler.ListJobs)
	mux.HandleFunc("POST /api/jobs", jobHandler.CreateJob)
	mux.HandleFunc("PUT /api/jobs", jobHandler.ReplaceJobs)
	mux.HandleFunc("GET /api/jobs/{id}", jobHandler.GetJob)
	mux.HandleFunc("PUT /api/jobs/{id}", jobHandler.UpdateJob)
	mux.HandleFunc("DELETE /api/jobs/{id}", jobHandler.DeleteJob)

	// Reminder routes
	mux.HandleFunc("GET /api/reminders", reminderHandler.ListReminders)
	mux.HandleFunc("POST /api/reminders", reminderHandler.CreateReminder)
	mux.HandleFunc("DELETE /api/reminders/{id}", reminderHandler.DeleteReminder)

	// Analytics
	mux.HandleFunc("GET /api/analytics", analyticsHandler.GetAnalytics)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.RenameFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)
	mux.HandleFunc("GET /api/folders/{id}/files", fileHandler.ListFiles)
	mux.HandleFunc("POST /api/folders/{id}/files", fileHandler.UploadFiles)

	// File routes
	mux.HandleFunc("GET /api/files/{id}", fileHandler.GetFile)
	mux.HandleFunc("GET /api/files/{id}/content", fileHandler.GetFileContent)
	mux.HandleFunc("DELETE /api/files/{id}", fileHandler.DeleteFile)
	mux.HandleFunc("POST /api/files/{id}/views", fileHandler.OpenView)
	mux.HandleFunc("GET /api/views/{token}", fileHandler.GetView)
	mux.HandleFunc("DELETE /api/views/{token}", fileHandler.CloseView)

	// LLM proxy routes
	mux.HandleFunc("POST /api/generate-cover", proxyHandler.GenerateCover)
	mux.HandleFunc("POST /api/ats-score", proxyHandler.ATSScore)

	// Build middleware chain (applied in reverse: CORS → Recovery → Logging → Routes)
	var root http.Handler = mux
	root = middleware.RequestLogger(logger)(root)
	root = middleware.Recovery(logger)(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
