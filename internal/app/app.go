// Package app wires the scraper together: it loads the task table, fetches
// each task's pages, routes the markup to the right parser, and persists one
// output file per task. One failing URL or task never aborts the batch.
package app

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/HuskyLLM/husky-scraper/internal/course"
	"github.com/HuskyLLM/husky-scraper/internal/fetch"
	"github.com/HuskyLLM/husky-scraper/internal/page"
	"github.com/HuskyLLM/husky-scraper/internal/store"
)

// ErrNoTasks is returned when the configuration names no scraping tasks.
var ErrNoTasks = errors.New("no scraping tasks configured")

// App runs a configured set of scraping tasks.
type App struct {
	cfg     Config
	fetcher *fetch.Client
}

func New(cfg Config) *App {
	return &App{
		cfg: cfg,
		fetcher: &fetch.Client{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		},
	}
}

// Run executes every configured task in name order. Task failures are logged
// and summarized; only an empty task table is an error.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Tasks) == 0 {
		return ErrNoTasks
	}

	names := make([]string, 0, len(a.cfg.Tasks))
	for name := range a.cfg.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	var summaries []TaskSummary
	for _, name := range names {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		task := a.cfg.Tasks[name]
		log.Info().Str("task", name).Str("type", task.Type).Int("urls", len(task.URLs)).
			Msg("starting scraping task")

		summary, err := a.runTask(ctx, name, task)
		if err != nil {
			log.Error().Err(err).Str("task", name).Msg("task failed")
			continue
		}
		summaries = append(summaries, summary)
		log.Info().Str("task", name).Str("output", task.OutputFile).Int("records", summary.Records).
			Msg("task complete")
	}

	if a.cfg.ReportPDF != "" {
		if err := writeDigestPDF(a.cfg.ReportPDF, summaries); err != nil {
			log.Error().Err(err).Str("file", a.cfg.ReportPDF).Msg("write digest report failed")
		}
	}
	return nil
}

func (a *App) runTask(ctx context.Context, name string, task Task) (TaskSummary, error) {
	switch task.Type {
	case TaskCourses:
		return a.runCourses(ctx, name, task)
	case TaskFaculty:
		return a.runFaculty(ctx, name, task)
	case TaskAccreditation:
		return a.runAccreditation(ctx, name, task)
	case TaskPages:
		return a.runPages(ctx, name, task)
	default:
		return TaskSummary{}, errors.New("unknown task type: " + task.Type)
	}
}

// fetchEach fetches every URL, invoking parse on each body. Fetch and parse
// failures are logged per URL and that page's contribution is dropped.
func (a *App) fetchEach(ctx context.Context, urls []string, parse func(url string, body []byte) error) {
	for _, u := range urls {
		if ctx.Err() != nil {
			return
		}
		log.Debug().Str("url", u).Msg("fetching")
		body, err := a.fetcher.Get(ctx, u)
		if err != nil {
			log.Error().Err(err).Str("url", u).Msg("fetch failed; skipping page")
			continue
		}
		if err := parse(u, body); err != nil {
			log.Error().Err(err).Str("url", u).Msg("parse failed; skipping page")
		}
	}
}

func (a *App) runCourses(ctx context.Context, name string, task Task) (TaskSummary, error) {
	urls := task.URLs
	if task.IndexURL != "" {
		body, err := a.fetcher.Get(ctx, task.IndexURL)
		if err != nil {
			log.Error().Err(err).Str("url", task.IndexURL).Msg("index fetch failed; using configured urls only")
		} else if links, err := page.CourseLinks(body, task.IndexURL); err == nil {
			urls = append(append([]string{}, urls...), links...)
			log.Info().Int("departments", len(links)).Msg("discovered department pages")
		}
	}

	courses := []course.Course{}
	a.fetchEach(ctx, urls, func(_ string, body []byte) error {
		parsed, err := page.ParseCourses(body)
		if err != nil {
			return err
		}
		courses = append(courses, parsed...)
		return nil
	})
	return a.save(name, task, courses, len(courses))
}

func (a *App) runFaculty(ctx context.Context, name string, task Task) (TaskSummary, error) {
	roster := []page.Faculty{}
	a.fetchEach(ctx, task.URLs, func(_ string, body []byte) error {
		parsed, err := page.ParseFaculty(body)
		if err != nil {
			return err
		}
		roster = append(roster, parsed...)
		return nil
	})
	return a.save(name, task, roster, len(roster))
}

func (a *App) runAccreditation(ctx context.Context, name string, task Task) (TaskSummary, error) {
	rows := []page.Accreditation{}
	a.fetchEach(ctx, task.URLs, func(_ string, body []byte) error {
		parsed, err := page.ParseAccreditation(body)
		if err != nil {
			return err
		}
		rows = append(rows, parsed...)
		return nil
	})
	return a.save(name, task, rows, len(rows))
}

func (a *App) runPages(ctx context.Context, name string, task Task) (TaskSummary, error) {
	regions := task.Regions
	if len(regions) == 0 {
		regions = page.DefaultRegions
	}

	// Keyed by normalized page title; a later page with the same title
	// replaces the earlier one.
	pages := map[string]page.Body{}
	a.fetchEach(ctx, task.URLs, func(u string, body []byte) error {
		rec, err := page.Assemble(body, regions, u)
		if err != nil {
			return err
		}
		if _, ok := pages[rec.Title]; ok {
			log.Warn().Str("title", rec.Title).Str("url", u).Msg("duplicate page title; replacing earlier page")
		}
		pages[rec.Title] = rec.Body
		return nil
	})
	return a.save(name, task, pages, len(pages))
}

func (a *App) save(name string, task Task, data any, records int) (TaskSummary, error) {
	if err := store.Save(data, task.OutputFile); err != nil {
		return TaskSummary{}, err
	}
	return TaskSummary{Name: name, Type: task.Type, OutputFile: task.OutputFile, Records: records}, nil
}
