// Package wordimport bulk-loads words from JSON files through the dictionary
// service, skipping words that already exist.
package wordimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/dictionary"
)

type wordCreator interface {
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
}

type existingLookup interface {
	ExistingEn(ctx context.Context, texts []string) (map[string]int64, error)
}

type categoryLister interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// Deps are the collaborators of Run.
type Deps struct {
	Words      wordCreator
	Existing   existingLookup
	Categories categoryLister
}

// Result holds import statistics.
type Result struct {
	FilesProcessed int
	Inserted       int
	Skipped        int
	Errors         int
}

type parsedEntry struct {
	path  string
	key   string
	entry Entry
}

// Run scans cfg.Dir for *.json files and creates every valid entry whose en
// is not already stored. Duplicates inside the batch keep the first entry.
// Per-entry failures are counted and logged; only lookup failures and context
// cancellation abort the run.
func Run(ctx context.Context, cfg *Config, deps Deps, log *slog.Logger) (Result, error) {
	files, err := filepath.Glob(filepath.Join(cfg.Dir, "*.json"))
	if err != nil {
		return Result{}, fmt.Errorf("glob import dir: %w", err)
	}

	var (
		result Result
		parsed []parsedEntry
		seen   = make(map[string]bool)
	)

	for _, path := range files {
		result.FilesProcessed++

		entries, err := readFile(path)
		if err != nil {
			log.Error("read import file", slog.String("path", path), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		for _, e := range entries {
			if err := Validate(e); err != nil {
				log.Error("invalid entry", slog.String("path", path), slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			key := domain.NormalizeSearch(e.En)
			if seen[key] {
				result.Skipped++
				continue
			}
			seen[key] = true
			parsed = append(parsed, parsedEntry{path: path, key: key, entry: e})
		}
	}

	if len(parsed) == 0 {
		log.Info("no valid entries to import")
		return result, nil
	}

	keys := make([]string, len(parsed))
	for i, p := range parsed {
		keys[i] = p.key
	}
	existing, err := deps.Existing.ExistingEn(ctx, keys)
	if err != nil {
		return result, fmt.Errorf("lookup existing words: %w", err)
	}

	categories, err := categoryIndex(ctx, deps.Categories)
	if err != nil {
		return result, err
	}

	for _, p := range parsed {
		if _, ok := existing[p.key]; ok {
			result.Skipped++
			continue
		}

		input, err := toCreateInput(p.entry, categories)
		if err != nil {
			log.Error("map entry", slog.String("path", p.path), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		if cfg.DryRun {
			result.Inserted++
			continue
		}

		if _, err := deps.Words.CreateWord(ctx, input); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result, err
			}
			log.Error("create word", slog.String("en", p.entry.En), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Inserted++
	}

	log.Info("word import complete",
		slog.Int("files", result.FilesProcessed),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors),
		slog.Bool("dry_run", cfg.DryRun),
	)
	return result, nil
}

func readFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return entries, nil
}

// categoryIndex maps lower-cased category names to ids.
func categoryIndex(ctx context.Context, lister categoryLister) (map[string]int64, error) {
	cats, err := lister.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	idx := make(map[string]int64, len(cats))
	for _, c := range cats {
		idx[strings.ToLower(c.Name)] = c.ID
	}
	return idx, nil
}

func toCreateInput(e Entry, categories map[string]int64) (dictionary.CreateWordInput, error) {
	input := dictionary.CreateWordInput{
		En:        e.En,
		Ja:        e.Ja,
		Example:   e.Example,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
	if name := strings.TrimSpace(e.Category); name != "" {
		id, ok := categories[strings.ToLower(name)]
		if !ok {
			return input, fmt.Errorf("unknown category %q for %q", name, e.En)
		}
		input.CategoryID = &id
	}
	return input, nil
}
