package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/application/usecase"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/internal/infrastructure/config"
	"github.com/pymecredit/creditrisk/internal/infrastructure/messaging"
	"github.com/pymecredit/creditrisk/internal/infrastructure/render"
	"github.com/pymecredit/creditrisk/internal/infrastructure/storage"
	"github.com/pymecredit/creditrisk/pkg/money"
	"github.com/pymecredit/creditrisk/pkg/observability"
)

type evaluateOptions struct {
	input        string
	profile      model.CompanyProfile
	indicators   indicatorsInput
	documents    []string
	format       string
	out          string
	seed         uint64
	perturbation int
	delay        time.Duration
	maxFiles     int
	upload       bool
	logLevel     string
}

func newEvaluateCmd() *cobra.Command {
	opts := &evaluateOptions{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a company and export its credit report",
		Long: `Score a company from declared indicators and supporting documents,
then export the report.

Examples:
  creditrisk evaluate --input acme.yaml --format pdf --out reports/
  creditrisk evaluate --company Acme --sales 85 --liquidity 68 --doc q1.csv
  creditrisk evaluate --input acme.yaml --upload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "YAML file with company, indicators and documents")
	f.StringVar(&opts.profile.Name, "company", "", "Company name")
	f.StringVar(&opts.profile.TaxID, "tax-id", "", "Tax identifier")
	f.StringVar(&opts.profile.Industry, "industry", "", "Industry")
	f.StringVar(&opts.profile.SocialMediaURL, "social", "", "Social media link")
	f.IntVar(&opts.indicators.Sales, "sales", 0, "Sales indicator (0-100)")
	f.IntVar(&opts.indicators.Liquidity, "liquidity", 0, "Liquidity indicator (0-100)")
	f.IntVar(&opts.indicators.Profitability, "profitability", 0, "Profitability indicator (0-100)")
	f.IntVar(&opts.indicators.Reputation, "reputation", 0, "Digital reputation indicator (0-100)")
	f.StringSliceVarP(&opts.documents, "doc", "d", nil, "Supporting document path (repeatable)")
	f.StringVarP(&opts.format, "format", "f", "text", "Output format (text, json, pdf)")
	f.StringVarP(&opts.out, "out", "o", "", "Output file or directory (default stdout; pdf defaults to the report file name)")
	f.Uint64Var(&opts.seed, "seed", 0, "Seed for the score perturbation (0 uses the clock)")
	f.IntVar(&opts.perturbation, "perturbation", -1, "Fixed score perturbation in [0,9]; negative draws from --seed")
	f.DurationVar(&opts.delay, "delay", 0, "Simulated analysis delay")
	f.IntVar(&opts.maxFiles, "max-files", 10, "Maximum number of documents")
	f.BoolVar(&opts.upload, "upload", false, "Upload documents to object storage (STORAGE_* environment)")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level")
	return cmd
}

func runEvaluate(cmd *cobra.Command, opts *evaluateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stderr := cmd.ErrOrStderr()
	logger := observability.InitLogger(observability.LogConfig{Level: opts.logLevel, Format: "text", Output: stderr})

	if err := mergeInput(cmd, opts); err != nil {
		return err
	}

	files, err := candidateFiles(opts.documents)
	if err != nil {
		return err
	}

	printSummary(stderr, service.ComposeSummary(opts.profile, len(files)))

	publisher := messaging.NewLogPublisher(logger, slog.LevelDebug)
	evaluateOpts := []usecase.EvaluateOption{
		usecase.WithAnalysisDelay(opts.delay),
		usecase.WithMaxFiles(opts.maxFiles),
	}
	if opts.upload {
		stager, err := newStager(logger, publisher)
		if err != nil {
			return err
		}
		evaluateOpts = append(evaluateOpts, usecase.WithStager(stager))
	}

	evaluate := usecase.NewEvaluateCompanyUseCase(
		service.NewScoreEngine(perturbation(opts)),
		service.NewRecommendationPolicy(money.USD),
		service.NewWhatIfSimulator(),
		publisher,
		evaluateOpts...,
	)
	composer := service.NewReportComposer()
	export := usecase.NewExportReportUseCase(composer,
		render.NewPDFRenderer(),
		render.NewJSONRenderer(),
		render.NewTextRenderer(),
	)

	resp, err := evaluate.Execute(ctx, dto.EvaluateCompanyRequest{
		CompanyName:    opts.profile.Name,
		TaxID:          opts.profile.TaxID,
		Industry:       opts.profile.Industry,
		SocialMediaURL: opts.profile.SocialMediaURL,
		Sales:          opts.indicators.Sales,
		Liquidity:      opts.indicators.Liquidity,
		Profitability:  opts.indicators.Profitability,
		Reputation:     opts.indicators.Reputation,
		Files:          files,
		StageDocuments: opts.upload,
	})
	printNotices(stderr, resp.Notices)
	if err != nil {
		return err
	}

	report, err := export.Execute(ctx, dto.ExportReportRequest{Report: resp.Report, Format: opts.format})
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), stderr, opts.out, report)
}

// mergeInput loads --input and lets explicitly set flags override it.
func mergeInput(cmd *cobra.Command, opts *evaluateOptions) error {
	if opts.input == "" {
		return nil
	}
	in, err := readInput(opts.input)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if !f.Changed(name) {
			*dst = v
		}
	}
	setInt := func(name string, dst *int, v int) {
		if !f.Changed(name) {
			*dst = v
		}
	}
	set("company", &opts.profile.Name, in.Company.Name)
	set("tax-id", &opts.profile.TaxID, in.Company.TaxID)
	set("industry", &opts.profile.Industry, in.Company.Industry)
	set("social", &opts.profile.SocialMediaURL, in.Company.SocialMediaURL)
	setInt("sales", &opts.indicators.Sales, in.Indicators.Sales)
	setInt("liquidity", &opts.indicators.Liquidity, in.Indicators.Liquidity)
	setInt("profitability", &opts.indicators.Profitability, in.Indicators.Profitability)
	setInt("reputation", &opts.indicators.Reputation, in.Indicators.Reputation)

	// Document paths in the file are relative to it.
	if !f.Changed("doc") {
		base := filepath.Dir(opts.input)
		opts.documents = opts.documents[:0]
		for _, d := range in.Documents {
			if !filepath.IsAbs(d) {
				d = filepath.Join(base, d)
			}
			opts.documents = append(opts.documents, d)
		}
	}
	return nil
}

func candidateFiles(paths []string) ([]model.CandidateFile, error) {
	files := make([]model.CandidateFile, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("document %s is a directory", p)
		}
		path := p
		files = append(files, model.CandidateFile{
			Name:      filepath.Base(p),
			SizeBytes: uint64(info.Size()),
			Open: func() (io.ReadCloser, error) {
				return os.Open(path)
			},
		})
	}
	return files, nil
}

func perturbation(opts *evaluateOptions) service.Perturbation {
	if opts.perturbation >= 0 {
		return service.FixedPerturbation(opts.perturbation)
	}
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return service.SeededPerturbation(seed)
}

func newStager(logger *slog.Logger, publisher port.EventPublisher) (*usecase.StageDocumentsUseCase, error) {
	cfg := config.Load()
	if !cfg.Storage.Enabled() {
		return nil, fmt.Errorf("--upload needs STORAGE_ENDPOINT to be set")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("storage configuration: %w", err)
	}
	store, err := storage.NewS3ObjectStore(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewStageDocumentsUseCase(store, nil, publisher, nil), nil
}

func writeReport(stdout, stderr io.Writer, out string, report dto.ExportedReport) error {
	if out == "" && report.ContentType == "application/pdf" {
		out = report.FileName
	}
	if out == "" {
		_, err := stdout.Write(report.Content)
		return err
	}

	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, report.FileName)
	}
	if err := os.WriteFile(out, report.Content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(stderr, "Report written to %s\n", out)
	return nil
}

func printSummary(w io.Writer, fields []model.Field) {
	fmt.Fprintln(w, "Data summary")
	for _, f := range fields {
		fmt.Fprintf(w, "  %-14s %s\n", f.Label+":", f.Value)
	}
}

func printNotices(w io.Writer, notices []valueobject.Notice) {
	for _, n := range notices {
		fmt.Fprintf(w, "[%s] %s: %s\n", n.Severity, n.Title, n.Message)
	}
}
