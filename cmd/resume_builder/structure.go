package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/structuring"
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Parse a resume file into a structured JSON document",
	Long:  "Extract text from a resume file (.txt, .docx, or .pdf), parse it into the structured resume format, validate it against the schema, and write it as JSON.",
	RunE:  runStructure,
}

var (
	structureInFile  string
	structureOutFile string
)

func init() {
	structureCmd.Flags().StringVarP(&structureInFile, "in", "i", "", "Path to resume file (required)")
	structureCmd.Flags().StringVarP(&structureOutFile, "out", "o", "", "Output JSON path (default: stdout)")

	_ = structureCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(structureInFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	doc, err := extraction.ExtractText(structureInFile, data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	resume, err := structuring.StructureResume(doc.Text)
	if err != nil {
		return fmt.Errorf("failed to structure resume: %w", err)
	}

	out, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	if err := schemas.ValidateResume(out); err != nil {
		return fmt.Errorf("structured resume failed schema validation: %w", err)
	}

	return writeOutput(structureOutFile, out)
}

// writeOutput writes JSON to a file, or stdout when path is empty
func writeOutput(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
