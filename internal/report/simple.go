package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/short-int-ali/PageLens/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables per-page classification detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with per-page details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
func (w *SimpleWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writeClaims(&sb, report)
	w.writeDetections(&sb, report)
	w.writeFindings(&sb, report)
	w.writeLimitations(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                     WEBSITE ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "URL:            %s\n", report.Meta.URL)
	fmt.Fprintf(sb, "Analyzed At:    %s\n", report.Meta.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Pages Crawled:  %d\n", report.Crawl.PagesCrawled)

	if report.ErrorMessage != "" {
		fmt.Fprintf(sb, "Status:         ERROR - %s\n", report.ErrorMessage)
	} else {
		sb.WriteString("Status:         Complete\n")
	}

	sb.WriteString("\n")
}

// writeSummary writes the reconciliation summary.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.AnalysisReport) {
	w.section(sb, "SUMMARY")
	sb.WriteString(report.Comparison.Summary)
	sb.WriteString("\n\n")
}

// writeClaims writes the homepage claims section.
func (w *SimpleWriter) writeClaims(sb *strings.Builder, report *model.AnalysisReport) {
	w.section(sb, "HOMEPAGE CLAIMS")

	if report.Claims.Description != "" {
		fmt.Fprintf(sb, "Description: %s\n\n", report.Claims.Description)
	}

	if len(report.Claims.Claims) == 0 {
		sb.WriteString("No feature claims were extracted.\n\n")
		return
	}

	for _, c := range report.Claims.Claims {
		fmt.Fprintf(sb, "  [%3d] %-22s %s\n", c.Confidence, c.Label, strings.Join(c.Evidence, ", "))
	}
	if len(report.Claims.CTAActions) > 0 {
		fmt.Fprintf(sb, "\nCalls to action: %s\n", strings.Join(report.Claims.CTAActions, ", "))
	}
	sb.WriteString("\n")
}

// writeDetections writes the aggregated features section.
func (w *SimpleWriter) writeDetections(sb *strings.Builder, report *model.AnalysisReport) {
	w.section(sb, "DETECTED FEATURES")

	features := report.Detection.AggregatedFeatures
	if len(features) == 0 {
		sb.WriteString("No functional patterns were detected.\n\n")
		return
	}

	for _, f := range features {
		fmt.Fprintf(sb, "  [%3d] %-22s on %d page(s)\n", f.MaxConfidence, f.PatternName, f.TotalOccurrences)
	}
	sb.WriteString("\n")

	if w.verbose {
		w.writePageDetail(sb, report)
	}
}

// writePageDetail writes per-page classification detail.
func (w *SimpleWriter) writePageDetail(sb *strings.Builder, report *model.AnalysisReport) {
	w.section(sb, "PER-PAGE CLASSIFICATIONS")
	for _, page := range report.Detection.PageClassifications {
		fmt.Fprintf(sb, "%s\n", page.URL)
		if len(page.Classifications) == 0 {
			sb.WriteString("  (no patterns matched)\n")
		}
		for _, m := range page.Classifications {
			fmt.Fprintf(sb, "  [%3d] %s\n", m.Confidence, m.PatternName)
		}
	}
	sb.WriteString("\n")
}

// writeFindings writes the findings section.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, report *model.AnalysisReport) {
	w.section(sb, "FINDINGS")

	findings := report.Comparison.Findings
	if len(findings) == 0 {
		sb.WriteString("No discrepancies between claims and detections.\n\n")
		return
	}

	for _, f := range findings {
		fmt.Fprintf(sb, "[%s] %s\n", strings.ToUpper(string(f.Type)), f.Feature)
		fmt.Fprintf(sb, "  %s\n", f.Explanation)
		for _, u := range f.EvidencePages {
			fmt.Fprintf(sb, "  - %s\n", u)
		}
	}
	sb.WriteString("\n")
}

// writeLimitations writes the interpretive bounds.
func (w *SimpleWriter) writeLimitations(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.Reasoning.Limitations) == 0 {
		return
	}
	w.section(sb, "LIMITATIONS")
	for _, l := range report.Reasoning.Limitations {
		fmt.Fprintf(sb, "  - %s\n", l)
	}
	sb.WriteString("\n")
}

// section writes a section divider.
func (w *SimpleWriter) section(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
}
