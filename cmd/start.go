/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tieubaoca/eduinsights-be/config"
	"github.com/tieubaoca/eduinsights-be/handler"
	"github.com/tieubaoca/eduinsights-be/middleware"
	"github.com/tieubaoca/eduinsights-be/service"
	"github.com/tieubaoca/eduinsights-be/types"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document analysis server",
	Long:  `Starts a server that accepts PDF uploads and generates study materials`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config-file")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		pdfService := service.NewPDFService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.MaxChunkSize,
		})
		sessionService := service.NewSessionService(time.Duration(cfg.SessionTTLHours) * time.Hour)
		sessionService.StartSweeper(10*time.Minute, make(chan struct{}))

		aiService, err := buildAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
		analysisService := service.NewAnalysisService(aiService)
		fileService := service.NewFileService(cfg.UploadDir, pdfService, sessionService)
		wsService := service.NewWebSocketService(analysisService, sessionService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(fileService)
		analysisHandler := handler.NewAnalysisHandler(analysisService, sessionService)
		documentHandler := handler.NewDocumentHandler(cfg.UploadDir, sessionService)

		if !cfg.HasCredential() {
			zap.S().Warnw("no API key configured, document processing is disabled until one is set",
				"provider", cfg.Provider)
		}

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		// Every document-processing route sits behind the credential
		// guard: without an API key only setup guidance is returned.
		apiV1 := router.Group("/api/v1")
		apiV1.Use(middleware.RequireCredential(cfg))
		{
			apiV1.POST("/upload", uploadHandler.UploadDocumentHandler)
			apiV1.POST("/analyze", analysisHandler.HandleAnalyze)
			apiV1.POST("/ask", analysisHandler.HandleAsk)
			apiV1.GET("/document", documentHandler.HandleStats)
			apiV1.GET("/pdf", documentHandler.ServeDocument)
			apiV1.GET("/ws/ask", func(c *gin.Context) {
				wsService.HandleAsk(c.Writer, c.Request)
			})
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// buildAIService selects the completion provider from config. When no
// credential is configured the returned service is never reached; the
// credential guard answers every processing route first.
func buildAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if !cfg.HasCredential() {
			return service.NewOpenAIService(cfg.AIEndpoint, "", cfg.Model, cfg.MaxTokens, cfg.Temperature), nil
		}
		return service.NewGeminiService(cfg.GeminiKeys(), cfg.Model, cfg.MaxTokens, cfg.Temperature)
	default:
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model, cfg.MaxTokens, cfg.Temperature), nil
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config-file", "c", "config/config.yaml", "config file")
}
