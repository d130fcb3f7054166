package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/letters"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a cover letter from a structured resume",
	Long:  "Fill a cover letter template with fields from a structured resume JSON file. Tones: professional, conversational, impact.",
	RunE:  runCoverLetter,
}

var (
	letterResumeFile string
	letterCompany    string
	letterTitle      string
	letterManager    string
	letterTone       string
	letterOutFile    string
)

func init() {
	coverLetterCmd.Flags().StringVarP(&letterResumeFile, "resume", "r", "", "Path to structured resume JSON (required)")
	coverLetterCmd.Flags().StringVarP(&letterCompany, "company", "c", "", "Company name")
	coverLetterCmd.Flags().StringVarP(&letterTitle, "title", "t", "", "Position title")
	coverLetterCmd.Flags().StringVarP(&letterManager, "manager", "m", "", "Hiring manager name")
	coverLetterCmd.Flags().StringVar(&letterTone, "tone", string(letters.ToneProfessional), "Letter tone")
	coverLetterCmd.Flags().StringVarP(&letterOutFile, "out", "o", "", "Output path (default: stdout)")

	_ = coverLetterCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, args []string) error {
	resume, err := loadResumeJSON(letterResumeFile)
	if err != nil {
		return err
	}

	job := letters.Job{
		Company:       letterCompany,
		Title:         letterTitle,
		HiringManager: letterManager,
	}

	letter, err := letters.Generate(resume, job, letters.Tone(letterTone))
	if err != nil {
		return fmt.Errorf("failed to generate cover letter: %w", err)
	}

	if letterOutFile == "" {
		fmt.Println(letter)
		return nil
	}
	if err := os.WriteFile(letterOutFile, []byte(letter), 0o644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}
	fmt.Printf("Wrote %s\n", letterOutFile)
	return nil
}
