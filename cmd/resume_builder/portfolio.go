package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/portfolio"
	"github.com/jonathan/resume-builder/internal/publish"
	"github.com/jonathan/resume-builder/internal/render"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Build and publish a portfolio site from a structured resume",
	Long:  "Generate a single-page portfolio site from a structured resume JSON file, publish it to a local directory, and optionally print it to PDF. Themes: minimal, modern, classic.",
	RunE:  runPortfolio,
}

var (
	portfolioResumeFile string
	portfolioTheme      string
	portfolioOutDir     string
	portfolioPDFFile    string
)

func init() {
	portfolioCmd.Flags().StringVarP(&portfolioResumeFile, "resume", "r", "", "Path to structured resume JSON (required)")
	portfolioCmd.Flags().StringVarP(&portfolioTheme, "theme", "t", string(portfolio.ThemeMinimal), "Site theme")
	portfolioCmd.Flags().StringVarP(&portfolioOutDir, "out", "o", "", "Output directory (required)")
	portfolioCmd.Flags().StringVar(&portfolioPDFFile, "pdf", "", "Also print the page to PDF at this path (requires Chrome)")

	_ = portfolioCmd.MarkFlagRequired("resume")
	_ = portfolioCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	resume, err := loadResumeJSON(portfolioResumeFile)
	if err != nil {
		return err
	}

	site, err := portfolio.BuildSite(resume, portfolio.Theme(portfolioTheme))
	if err != nil {
		return fmt.Errorf("failed to build portfolio site: %w", err)
	}

	publisher := publish.NewDirPublisher(portfolioOutDir)
	url, err := publisher.Publish(cmd.Context(), site)
	if err != nil {
		return fmt.Errorf("failed to publish site: %w", err)
	}
	fmt.Printf("Published portfolio: %s\n", url)

	if portfolioPDFFile != "" {
		renderer := render.NewChromeRenderer()
		pdfBytes, err := renderer.RenderPDF(cmd.Context(), site.HTML)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		if err := os.WriteFile(portfolioPDFFile, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("Wrote %s\n", portfolioPDFFile)
	}
	return nil
}
