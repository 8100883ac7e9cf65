// Package seed fills the record store at startup from bundled samples and
// the CSV datasets in the configured data directory.
package seed

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/services"
)

const (
	SourceQuestions      = "sample_questions"
	SourceColleges       = "colleges"
	SourceScholarships   = "scholarships"
	SourceCareerPaths    = "career_paths"
	SourceStudyMaterials = "sample_study_materials"
)

type Config struct {
	DataDir          string
	CollegesFile     string
	ScholarshipsFile string
	CoursesFile      string
	// DeadlineYear is appended to scholarship lastDate values, which carry no year.
	DeadlineYear int
}

func (c Config) withDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.CollegesFile == "" {
		c.CollegesFile = "colleges_dataset.csv"
	}
	if c.ScholarshipsFile == "" {
		c.ScholarshipsFile = "scholarships_dataset.csv"
	}
	if c.CoursesFile == "" {
		c.CoursesFile = "courses_dataset.csv"
	}
	if c.DeadlineYear == 0 {
		c.DeadlineYear = DefaultDeadlineYear
	}
	return c
}

// Services are the write paths the loader inserts through.
type Services struct {
	Questions      services.QuestionService
	Colleges       services.CollegeService
	Scholarships   services.ScholarshipService
	StudyMaterials services.StudyMaterialService
	CareerPaths    services.CareerPathService
}

type SourceResult struct {
	Source string
	// Loaded is the number of records inserted.
	Loaded int
	// Skipped counts blank lines in a CSV source.
	Skipped int
	Err     error
}

type Report struct {
	Results []SourceResult
}

func (r Report) Failed() []SourceResult {
	var out []SourceResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

func (r Report) Result(source string) (SourceResult, bool) {
	for _, res := range r.Results {
		if res.Source == source {
			return res, true
		}
	}
	return SourceResult{}, false
}

type Loader struct {
	log *logger.Logger
	svc Services
	cfg Config
	fs  fs.FS
}

func NewLoader(log *logger.Logger, svc Services, cfg Config) *Loader {
	cfg = cfg.withDefaults()
	return NewLoaderFS(log, svc, cfg, os.DirFS(cfg.DataDir))
}

// NewLoaderFS reads the CSV files from fsys instead of cfg.DataDir.
func NewLoaderFS(log *logger.Logger, svc Services, cfg Config, fsys fs.FS) *Loader {
	return &Loader{
		log: log.With("component", "SeedLoader"),
		svc: svc,
		cfg: cfg.withDefaults(),
		fs:  fsys,
	}
}

// Run loads every source in order. A failing source never stops the ones
// after it, and nothing from a failed CSV file is inserted.
func (l *Loader) Run(ctx context.Context) Report {
	var rep Report
	record := func(res SourceResult) {
		if res.Err != nil {
			l.log.Warn("seed source not loaded", "source", res.Source, "loaded", res.Loaded, "error", res.Err)
		} else {
			l.log.Info("seed source loaded", "source", res.Source, "loaded", res.Loaded, "skipped", res.Skipped)
		}
		rep.Results = append(rep.Results, res)
	}

	smp, sampleErr := loadSamples()

	if sampleErr != nil {
		record(SourceResult{Source: SourceQuestions, Err: sampleErr})
	} else {
		record(insertAll(ctx, SourceQuestions, smp.Questions, 0, l.svc.Questions.Create))
	}

	record(l.loadCSV(ctx, SourceColleges, l.cfg.CollegesFile, collegeColumns, func(ctx context.Context, rows []row, blanks int) SourceResult {
		return insertAll(ctx, SourceColleges, buildColleges(rows), blanks, l.svc.Colleges.Create)
	}))
	record(l.loadCSV(ctx, SourceScholarships, l.cfg.ScholarshipsFile, scholarshipColumns, func(ctx context.Context, rows []row, blanks int) SourceResult {
		return insertAll(ctx, SourceScholarships, buildScholarships(rows, l.cfg.DeadlineYear), blanks, l.svc.Scholarships.Create)
	}))
	record(l.loadCSV(ctx, SourceCareerPaths, l.cfg.CoursesFile, courseColumns, func(ctx context.Context, rows []row, blanks int) SourceResult {
		return insertAll(ctx, SourceCareerPaths, buildCareerPaths(rows), blanks, l.svc.CareerPaths.Create)
	}))

	if sampleErr != nil {
		record(SourceResult{Source: SourceStudyMaterials, Err: sampleErr})
	} else {
		record(insertAll(ctx, SourceStudyMaterials, smp.StudyMaterials, 0, l.svc.StudyMaterials.Create))
	}
	return rep
}

type csvInserter func(ctx context.Context, rows []row, blanks int) SourceResult

func (l *Loader) loadCSV(ctx context.Context, source, name string, minCols int, insert csvInserter) SourceResult {
	content, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return SourceResult{Source: source, Err: fmt.Errorf("read %s: %w", name, err)}
	}
	rows, blanks, err := parseRows(string(content), minCols)
	if err != nil {
		return SourceResult{Source: source, Skipped: blanks, Err: fmt.Errorf("parse %s: %w", name, err)}
	}
	return insert(ctx, rows, blanks)
}

// insertAll validates every record before inserting the first one.
func insertAll[In any, Out any](ctx context.Context, source string, recs []In, blanks int, create func(context.Context, In) (Out, error)) SourceResult {
	res := SourceResult{Source: source, Skipped: blanks}
	for i, rec := range recs {
		if err := services.Validate(rec); err != nil {
			res.Err = fmt.Errorf("record %d: %w", i+1, err)
			return res
		}
	}
	for i, rec := range recs {
		if _, err := create(ctx, rec); err != nil {
			res.Err = fmt.Errorf("insert record %d: %w", i+1, err)
			return res
		}
		res.Loaded++
	}
	return res
}
