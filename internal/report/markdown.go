package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/short-int-ali/PageLens/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeClaims(md, report)
	w.writeDetections(md, report)
	w.writeFindings(md, report)
	w.writeLimitations(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("Website Analysis Report")
	md.PlainText("")

	status := "✅ Complete"
	if report.ErrorMessage != "" {
		status = "❌ Error - " + report.ErrorMessage
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.Meta.URL + "`"},
			{"Analyzed At", report.Meta.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", fmt.Sprintf("%dms", report.Meta.DurationMS)},
			{"Pages Crawled", strconv.Itoa(report.Crawl.PagesCrawled)},
			{"Status", status},
		},
	})
	md.PlainText("")
}

// writeSummary writes the reconciliation summary and counts.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Summary")
	md.PlainText("")
	md.PlainText(report.Comparison.Summary)
	md.PlainText("")

	a := report.Comparison.Analysis
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Claimed features", strconv.Itoa(a.ClaimedCount)},
			{"Matched", strconv.Itoa(a.MatchedCount)},
			{"Missing", strconv.Itoa(a.MissingCount)},
			{"Weak", strconv.Itoa(a.WeakCount)},
			{"Unclaimed", strconv.Itoa(a.UnclaimedCount)},
			{"Match rate", fmt.Sprintf("%.0f%%", a.MatchRate*100)},
		},
	})
	md.PlainText("")
}

// writeClaims writes the homepage claims section.
func (w *MarkdownWriter) writeClaims(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Homepage Claims")
	md.PlainText("")

	if report.Claims.Description != "" {
		md.Blockquote(report.Claims.Description)
		md.PlainText("")
	}

	if len(report.Claims.Claims) == 0 {
		md.PlainText("No feature claims were extracted.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Claims.Claims))
	for _, c := range report.Claims.Claims {
		rows = append(rows, []string{
			c.Label,
			strconv.Itoa(c.Confidence),
			strings.Join(c.Evidence, ", "),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Claim", "Confidence", "Evidence"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(report.Claims.CTAActions) > 0 {
		md.H3("Calls to Action")
		md.BulletList(report.Claims.CTAActions...)
		md.PlainText("")
	}
}

// writeDetections writes the aggregated feature section.
func (w *MarkdownWriter) writeDetections(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Detected Features")
	md.PlainText("")

	features := report.Detection.AggregatedFeatures
	if len(features) == 0 {
		md.PlainText("No functional patterns were detected on any crawled page.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{
			f.PatternName,
			strconv.Itoa(f.MaxConfidence),
			strconv.Itoa(f.TotalOccurrences),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Feature", "Max Confidence", "Pages"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFindings writes the findings section, already sorted by severity.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Findings")
	md.PlainText("")

	findings := report.Comparison.Findings
	if len(findings) == 0 {
		md.PlainText("No discrepancies between claims and detections.")
		md.PlainText("")
		return
	}

	for _, f := range findings {
		md.H3(fmt.Sprintf("%s %s", findingBadge(f.Type), f.Feature))
		md.PlainText(f.Explanation)
		if len(f.EvidencePages) > 0 {
			md.PlainText("")
			md.BulletList(f.EvidencePages...)
		}
		md.PlainText("")
	}
}

// findingBadge maps a finding type to a display marker.
func findingBadge(t model.FindingType) string {
	switch t {
	case model.FindingClaimedNotDetected:
		return "🔴"
	case model.FindingWeakDetection:
		return "🟡"
	case model.FindingDetectedNotClaimed:
		return "🔵"
	default:
		return "⚪"
	}
}

// writeLimitations writes the interpretive bounds of the report.
func (w *MarkdownWriter) writeLimitations(md *markdown.Markdown, report *model.AnalysisReport) {
	if len(report.Reasoning.Limitations) == 0 {
		return
	}
	md.H2("Limitations")
	md.BulletList(report.Reasoning.Limitations...)
	md.PlainText("")
}
