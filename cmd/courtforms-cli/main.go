package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/documents"
	"github.com/goliatone/go-courtforms/pkg/pipeline"
	"github.com/goliatone/go-courtforms/pkg/wizard"
)

func main() {
	answersPath := flag.String("answers", "", "answer record JSON file (interactive wizard if empty)")
	documentsPath := flag.String("documents", "", "uploaded documents JSON file")
	format := flag.String("format", "pdf", "output format: pdf or transcript")
	outDir := flag.String("out", ".", "directory for generated forms")
	locale := flag.String("locale", "en", "message and label locale (en or fr)")
	validateOnly := flag.Bool("validate", false, "validate the submission without generating forms")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	ctx := context.Background()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
		defer logger.Sync()
	}

	record, err := loadAnswers(ctx, *answersPath)
	if err != nil {
		log.Fatalf("Failed to load answers: %v", err)
	}

	p, err := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithLocale(*locale),
		pipeline.WithOutputFormat(*format),
	)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	uploaded, err := loadDocuments(*documentsPath)
	if err != nil {
		log.Fatalf("Failed to load documents: %v", err)
	}

	result := p.ValidateSubmission(record, uploaded)
	if !result.Valid {
		for path, message := range result.FieldErrors {
			fmt.Fprintf(os.Stderr, "field %s: %s\n", path, message)
		}
		for _, missing := range result.Documents.Missing {
			fmt.Fprintln(os.Stderr, missing.Message)
		}
		for key, message := range result.Documents.Errors {
			fmt.Fprintf(os.Stderr, "document %s: %s\n", key, message)
		}
		for _, issue := range result.Documents.Quality {
			fmt.Fprintln(os.Stderr, issue.Message)
		}
		os.Exit(1)
	}
	if *validateOnly {
		fmt.Println("Submission is valid.")
		return
	}

	generated, err := p.GenerateForms(ctx, record)
	if err != nil {
		log.Fatalf("Failed to generate forms: %v", err)
	}

	ext := ".pdf"
	if *format == "transcript" {
		ext = ".txt"
	}
	for _, form := range generated {
		path := filepath.Join(*outDir, "form-"+form.FormID+ext)
		if err := os.WriteFile(path, form.Data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("Form %s (%s) written to %s\n", form.FormID, form.Title, path)
	}
}

func loadAnswers(ctx context.Context, path string) (answers.Record, error) {
	if path == "" {
		return wizard.New().Run(ctx)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var record answers.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return record, nil
}

func loadDocuments(path string) ([]documents.Uploaded, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var uploaded []documents.Uploaded
	if err := json.Unmarshal(raw, &uploaded); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return uploaded, nil
}
