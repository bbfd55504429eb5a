package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmpolyakov/vocabtrainer/internal/database"
	"github.com/dmpolyakov/vocabtrainer/internal/report"
	"github.com/dmpolyakov/vocabtrainer/internal/stats"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

type reportFormat string

const (
	formatMarkdown reportFormat = "markdown"
	formatPDF      reportFormat = "pdf"
)

var allReportFormats = []reportFormat{formatMarkdown, formatPDF}

func (f *reportFormat) Set(val string) error {
	for _, format := range allReportFormats {
		if string(format) == val {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q. Supported formats: %s", val, joinFormats())
}

func (f *reportFormat) String() string {
	return string(*f)
}

func (f *reportFormat) Type() string {
	return "format"
}

var _ pflag.Value = (*reportFormat)(nil)

func joinFormats() string {
	names := make([]string, 0, len(allReportFormats))
	for _, format := range allReportFormats {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}

func newReportCommand() *cobra.Command {
	var (
		userID  int64
		outPath string
		format  = formatMarkdown
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a learning progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == formatPDF && outPath == "" {
				return fmt.Errorf("--format pdf requires --out")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			gen := report.NewGenerator(word.NewDBRepository(db), stats.NewDBRepository(db))
			markdown, err := gen.Generate(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), markdown)
				return nil
			}

			if err := report.WriteMarkdown(outPath, markdown); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", color.GreenString(outPath))

			if format == formatPDF {
				pdfPath, err := report.ConvertMarkdownToPDF(outPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", color.GreenString(pdfPath))
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user ID to report on")
	cmd.Flags().StringVar(&outPath, "out", "", "write the report to this markdown file instead of stdout")
	cmd.Flags().Var(&format, "format", fmt.Sprintf("output format (%s)", joinFormats()))
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	return cmd
}
