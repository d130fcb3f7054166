package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeAnalysis is the structured output of the AI resume review. It
// complements the deterministic scorer with qualitative feedback; nothing in
// the scoring pipeline depends on it.
type ResumeAnalysis struct {
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Suggestions  []string `json:"suggestions"`
	FitSummary   string   `json:"fit_summary"`
	RewrittenSum string   `json:"rewritten_summary,omitempty"`
}

const analyzePromptTemplate = `You are a resume reviewer. Given a resume and a
job description, return a JSON object with these keys:
  "strengths": array of strings, the resume's strongest points for this job
  "weaknesses": array of strings, gaps relative to the job description
  "suggestions": array of strings, concrete edits the candidate should make
  "fit_summary": one paragraph on overall fit
  "rewritten_summary": an improved professional summary, or "" if the current one is fine

Return only the JSON object.

RESUME:
%s

JOB DESCRIPTION:
%s`

// AnalyzeResume asks the model for a qualitative review of the resume against
// a job description. Uses TierStandard; the call is a single round trip.
func AnalyzeResume(ctx context.Context, client Client, resume *types.StructuredResume, jobDescription string) (*ResumeAnalysis, error) {
	prompt := fmt.Sprintf(analyzePromptTemplate, resume.FullText(), strings.TrimSpace(jobDescription))

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, err
	}

	var analysis ResumeAnalysis
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &analysis); err != nil {
		return nil, &ParseError{Content: raw, Cause: err}
	}
	return &analysis, nil
}
