package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a structured resume against a job description",
	Long:  "Score a structured resume JSON file against a job description text file and write the analysis as JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJDFile     string
	scoreOutFile    string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to structured resume JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreJDFile, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVarP(&scoreOutFile, "out", "o", "", "Output JSON path (default: stdout)")

	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	resume, err := loadResumeJSON(scoreResumeFile)
	if err != nil {
		return err
	}

	jobDescription := ""
	if scoreJDFile != "" {
		jd, err := os.ReadFile(scoreJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(jd)
	}

	result := scoring.Score(resume, jobDescription)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateAnalysis(out); err != nil {
		return fmt.Errorf("analysis failed schema validation: %w", err)
	}

	return writeOutput(scoreOutFile, out)
}

// loadResumeJSON reads, unmarshals, and schema-validates a resume JSON file
func loadResumeJSON(path string) (*types.StructuredResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume JSON: %w", err)
	}
	if err := schemas.ValidateResume(data); err != nil {
		return nil, fmt.Errorf("resume failed schema validation: %w", err)
	}

	var resume types.StructuredResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	resume.EnsureDefaults()
	return &resume, nil
}
