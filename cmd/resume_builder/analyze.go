package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/ai"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Get an AI review of a resume against a job description",
	Long:  "Send a structured resume and a job description to the generative AI service for a qualitative review. Requires GEMINI_API_KEY.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJDFile     string
	analyzeOutFile    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to structured resume JSON (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Output JSON path (default: stdout)")

	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	resume, err := loadResumeJSON(analyzeResumeFile)
	if err != nil {
		return err
	}

	jd, err := os.ReadFile(analyzeJDFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	client, err := ai.NewGeminiClient(cmd.Context(), nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	defer func() { _ = client.Close() }()

	analysis, err := ai.AnalyzeResume(cmd.Context(), client, resume, string(jd))
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return writeOutput(analyzeOutFile, out)
}
