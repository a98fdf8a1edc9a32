/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/eduinsights-be/config"
	"github.com/tieubaoca/eduinsights-be/middleware"
	"github.com/tieubaoca/eduinsights-be/service"
	"github.com/tieubaoca/eduinsights-be/types"
	"github.com/tieubaoca/eduinsights-be/utils"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a local PDF from the terminal",
	Long: `Extracts the text of a local PDF and runs one analysis task against
it, printing the generated material to stdout. For example:

eduinsights-be analyze --file lecture.pdf --task summary --role student
eduinsights-be analyze --file lecture.pdf --task qa --question "What is entropy?"`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config-file")
		filePath, _ := cmd.Flags().GetString("file")
		task, _ := cmd.Flags().GetString("task")
		role, _ := cmd.Flags().GetString("role")
		question, _ := cmd.Flags().GetString("question")

		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, middleware.SetupGuidance)
			os.Exit(1)
		}

		// Keep CLI runs and HTTP uploads under the same directory layout.
		storedPath, err := utils.CopyFileWithTimestamp(filePath, cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to store file: %v", err)
		}

		data, err := os.ReadFile(storedPath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		pdfService := service.NewPDFService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.MaxChunkSize,
		})
		doc, err := pdfService.ExtractDocument(data)
		if err != nil {
			log.Fatalf("Could not extract text from the PDF, try a different file: %v", err)
		}
		fmt.Printf("Extracted %d words (%d characters, %d pages, %d chunks)\n\n",
			doc.WordCount, doc.CharCount, doc.Pages, len(doc.Chunks))

		aiService, err := buildAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
		analysisService := service.NewAnalysisService(aiService)

		result, err := analysisService.Analyze(context.Background(), types.TaskRequest{
			Kind:     types.TaskKind(task),
			Role:     types.UserRole(role),
			Text:     doc.Text,
			Question: question,
		})
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}

		fmt.Println(result.Text)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "Path to the PDF file to analyze")
	analyzeCmd.Flags().StringP("task", "t", string(types.TaskSummary), "Task to run: summary, key_points, study_questions, qa, teaching_notes")
	analyzeCmd.Flags().StringP("role", "r", string(types.RoleStudent), "User role: student, teacher, researcher")
	analyzeCmd.Flags().StringP("question", "q", "", "Question for the qa task")
	analyzeCmd.Flags().StringP("config-file", "c", "config/config.yaml", "config file")
}
