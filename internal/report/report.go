// Package report renders learning progress as markdown, with optional PDF export.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/dmpolyakov/vocabtrainer/internal/stats"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

// Generator builds per-user learning reports from the repositories.
type Generator struct {
	words word.Repository
	stats stats.Repository
}

// NewGenerator creates a Generator.
func NewGenerator(words word.Repository, statsRepo stats.Repository) *Generator {
	return &Generator{words: words, stats: statsRepo}
}

// Generate returns a markdown report for the user: pool overview, personal
// vocabulary, and per-word answer statistics.
func (g *Generator) Generate(ctx context.Context, userID int64) (string, error) {
	pool, err := g.words.PoolStats(ctx)
	if err != nil {
		return "", fmt.Errorf("load pool stats: %w", err)
	}
	personal, err := g.words.ListPersonal(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("list personal words: %w", err)
	}
	summary, err := g.stats.SummaryByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load learning summary: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Learning report for user %d\n\n", userID)
	fmt.Fprintf(&b, "## Word pool\n\n")
	fmt.Fprintf(&b, "- Common words: %d\n", pool.CommonWords)
	fmt.Fprintf(&b, "- Personal words (all users): %d\n", pool.PersonalWords)
	fmt.Fprintf(&b, "- Users: %d\n\n", pool.Users)

	fmt.Fprintf(&b, "## Personal vocabulary (%d)\n\n", len(personal))
	for _, w := range personal {
		fmt.Fprintf(&b, "- %s -> %s\n", w.English, w.Translation)
	}
	if len(personal) == 0 {
		b.WriteString("_none_\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Answer statistics\n\n")
	if len(summary) == 0 {
		b.WriteString("_no answers recorded yet_\n")
		return b.String(), nil
	}
	b.WriteString("| Word | Translation | Pool | Correct | Wrong | Last practiced |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, row := range summary {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %d | %s |\n",
			row.English, row.Translation, row.WordType,
			row.CorrectCount, row.WrongCount,
			row.LastPracticed.Format("2006-01-02 15:04"))
	}
	return b.String(), nil
}

// WriteMarkdown writes the report to path, creating parent directories.
func WriteMarkdown(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ConvertMarkdownToPDF converts a markdown file to PDF next to it and
// returns the PDF path.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("read markdown report: %w", err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
