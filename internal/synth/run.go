package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/HuskyLLM/husky-scraper/internal/store"
)

// Run walks inputDir for scraped .json files and writes one JSONL dataset
// per file under outputDir, mirroring the input tree. A file that fails to
// load, generate, or write is recorded in the returned error list; the walk
// continues. Only a walk-level failure aborts the run.
func (b *Builder) Run(ctx context.Context, inputDir, outputDir string) ([]string, error) {
	var errFiles []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		var data any
		if err := store.Load(path, &data); err != nil {
			log.Error().Err(err).Str("file", path).Msg("load scraped file failed")
			errFiles = append(errFiles, path)
			return nil
		}

		ds, cached, err := b.Generate(ctx, data)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("dataset generation failed")
			errFiles = append(errFiles, path)
			return nil
		}
		if !cached {
			b.wait()
		}

		outPath, err := outputPath(inputDir, outputDir, path)
		if err != nil {
			errFiles = append(errFiles, path)
			return nil
		}
		if err := writeJSONL(ds, outPath); err != nil {
			log.Error().Err(err).Str("file", outPath).Msg("write dataset failed")
			errFiles = append(errFiles, path)
			return nil
		}
		log.Info().Str("file", path).Str("output", outPath).Int("pairs", len(ds.Dataset)).
			Bool("cached", cached).Msg("dataset written")
		return nil
	})
	if err != nil {
		return errFiles, fmt.Errorf("walk %s: %w", inputDir, err)
	}
	return errFiles, nil
}

func outputPath(inputDir, outputDir, path string) (string, error) {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", path, err)
	}
	return filepath.Join(outputDir, strings.TrimSuffix(rel, ".json")+".jsonl"), nil
}

// writeJSONL writes one pair per line, the shape fine-tuning pipelines expect.
func writeJSONL(ds Dataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	var sb strings.Builder
	for _, p := range ds.Dataset {
		line, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal pair: %w", err)
		}
		sb.Write(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
