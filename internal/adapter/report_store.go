package adapter

import (
	"bytes"
	"context"
	"fmt"

	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// ReportStore persists the record of a run.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, path m.Path) (m.RunReport, error)
}

// LocalReportStore writes run reports as YAML files.
type LocalReportStore struct {
	fs afs.Service
}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{fs: afs.New()}
}

type reportYAML struct {
	RunID  string           `yaml:"run_id"`
	DryRun bool             `yaml:"dry_run"`
	Total  int              `yaml:"total"`
	Counts map[string]int   `yaml:"counts"`
	Files  []fileReportYAML `yaml:"files"`
}

type fileReportYAML struct {
	Path    string `yaml:"path"`
	Outcome string `yaml:"outcome"`
	Diff    string `yaml:"diff,omitempty"`
}

// SaveReport writes report to path, replacing any previous report.
func (rs *LocalReportStore) SaveReport(ctx context.Context, path m.Path, report m.RunReport) error {
	doc := reportYAML{
		RunID:  report.RunID,
		DryRun: report.DryRun,
		Total:  report.Summary.Total,
		Counts: make(map[string]int, len(report.Summary.Counts)),
		Files:  make([]fileReportYAML, 0, len(report.Summary.Files)),
	}

	for outcome, count := range report.Summary.Counts {
		doc.Counts[string(outcome)] = count
	}

	for _, file := range report.Summary.Files {
		doc.Files = append(doc.Files, fileReportYAML{
			Path:    string(file.Path),
			Outcome: string(file.Outcome),
			Diff:    file.Diff,
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	location, err := absLocation(path)
	if err != nil {
		return err
	}

	if err := rs.fs.Upload(ctx, location, defaultFileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (rs *LocalReportStore) LoadReport(ctx context.Context, path m.Path) (m.RunReport, error) {
	location, err := absLocation(path)
	if err != nil {
		return m.RunReport{}, err
	}

	data, err := rs.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var doc reportYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.RunReport{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	summary := m.NewSummary()
	for _, file := range doc.Files {
		summary.Add(m.FileReport{
			Path:    m.Path(file.Path),
			Outcome: m.Outcome(file.Outcome),
			Diff:    file.Diff,
		})
	}

	return m.RunReport{RunID: doc.RunID, DryRun: doc.DryRun, Summary: summary}, nil
}
