package application

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/issuecheck/issuecheck/internal/domain/check"
)

// VerifyService orchestrates a verification run:
// load config -> discover case files -> load cases -> check -> record.
type VerifyService struct {
	config  domain.ConfigLoader
	cases   domain.CaseSource
	git     domain.GitInfo
	history domain.RunHistory
	log     *slog.Logger
	now     func() time.Time
}

func NewVerifyService(
	config domain.ConfigLoader,
	cases domain.CaseSource,
	git domain.GitInfo,
	history domain.RunHistory,
	log *slog.Logger,
) *VerifyService {
	return &VerifyService{
		config:  config,
		cases:   cases,
		git:     git,
		history: history,
		log:     log,
		now:     time.Now,
	}
}

// Config returns the project configuration the service would use.
func (s *VerifyService) Config(projectPath string) (domain.ProjectConfig, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Verify checks every case file the project configuration selects.
func (s *VerifyService) Verify(projectPath string) (*domain.RunReport, error) {
	cfg, err := s.Config(projectPath)
	if err != nil {
		return nil, err
	}

	files, err := s.cases.Discover(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("discovering case files: %w", err)
	}
	s.log.Debug("discovered case files", "count", len(files), "patterns", cfg.CasePatterns())

	report, err := s.run(projectPath, files)
	if err != nil {
		return nil, err
	}

	if cfg.RecordHistory && s.history != nil {
		if err := s.history.Save(projectPath, report.Entry()); err != nil {
			return nil, fmt.Errorf("saving history: %w", err)
		}
	}

	return report, nil
}

// VerifyFile checks the cases of a single file, given relative to projectPath.
// History is not recorded for single-file runs.
func (s *VerifyService) VerifyFile(projectPath, file string) (*domain.RunReport, error) {
	return s.run(projectPath, []string{filepath.ToSlash(file)})
}

func (s *VerifyService) run(projectPath string, files []string) (*domain.RunReport, error) {
	report := &domain.RunReport{
		ProjectPath: projectPath,
		Timestamp:   s.now().UTC(),
		Files:       files,
		Results:     []domain.CaseResult{},
	}

	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		} else {
			s.log.Debug("no commit hash", "error", err)
		}
	}

	for _, file := range files {
		cases, err := s.cases.Load(filepath.Join(projectPath, filepath.FromSlash(file)))
		if err != nil {
			return nil, fmt.Errorf("loading cases: %w", err)
		}
		s.log.Debug("loaded case file", "file", file, "cases", len(cases))

		for _, c := range cases {
			c.File = file
			report.Results = append(report.Results, RunCase(c))
		}
	}

	report.Tally()
	s.log.Info("verification finished", "passed", report.Passed, "failed", report.Failed)
	return report, nil
}

// RunCase checks one case and converts the outcome into a result.
func RunCase(c domain.Case) domain.CaseResult {
	res := domain.CaseResult{Name: c.Name, File: c.File, Passed: true, Issue: c.Actual}

	err := check.Check(c.Actual, c.Expected)
	if err == nil {
		return res
	}

	res.Passed = false
	res.Message = err.Error()
	if m, ok := check.AsMismatch(err); ok {
		res.Field = m.Field
		res.Expected = m.Expected
		res.Actual = m.Actual
	}
	return res
}
