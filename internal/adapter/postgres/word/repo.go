// Package word implements the Word repository using PostgreSQL.
// Filtered listing and partial updates are built with squirrel; fixed
// queries use raw SQL.
package word

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/vocab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const wordColumns = `id, en, ja, example, notes, category_id, review_count, correct_count, mastery_level, last_reviewed_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1`

const randomSQL = `
SELECT ` + wordColumns + `
FROM words
ORDER BY random()
LIMIT $1`

const updateCountersSQL = `
UPDATE words
SET review_count = $3, correct_count = $4, mastery_level = $5, last_reviewed_at = $6
WHERE id = $1 AND review_count = $2`

const deleteSQL = `DELETE FROM words WHERE id = $1`

const existingEnSQL = `
SELECT lower(en), id
FROM words
WHERE lower(en) = ANY($1)`

const histogramSQL = `
SELECT mastery_level, count(*)
FROM words
GROUP BY mastery_level`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	w, err := scanWord(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return w, nil
}

// List returns words matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	q := psql.Select(wordColumns).From("words")

	if filter.Search != nil && *filter.Search != "" {
		term := "%" + *filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"en": term},
			squirrel.ILike{"ja": term},
		})
	}
	if filter.CategoryID != nil {
		q = q.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}
	if filter.MasteryLevel != nil {
		q = q.Where(squirrel.Eq{"mastery_level": *filter.MasteryLevel})
	}
	q = q.OrderBy("created_at DESC", "id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	return collectWords(rows)
}

// Random returns up to limit words in random order.
func (r *Repo) Random(ctx context.Context, limit int) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, randomSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("random words: %w", err)
	}
	defer rows.Close()

	return collectWords(rows)
}

// ExistingEn returns ids of words whose lower-cased en is in texts, keyed by
// the lower-cased text. texts must already be lower-cased.
func (r *Repo) ExistingEn(ctx context.Context, texts []string) (map[string]int64, error) {
	out := make(map[string]int64, len(texts))
	if len(texts) == 0 {
		return out, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, existingEnSQL, texts)
	if err != nil {
		return nil, fmt.Errorf("lookup existing words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			en string
			id int64
		)
		if err := rows.Scan(&en, &id); err != nil {
			return nil, fmt.Errorf("scan existing word: %w", err)
		}
		out[en] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate existing words: %w", err)
	}

	return out, nil
}

// MasteryHistogram returns the number of words per mastery level.
// Levels without words are absent from the map.
func (r *Repo) MasteryHistogram(ctx context.Context) (map[int]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, histogramSQL)
	if err != nil {
		return nil, fmt.Errorf("mastery histogram: %w", err)
	}
	defer rows.Close()

	hist := make(map[int]int)
	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("scan mastery histogram: %w", err)
		}
		hist[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mastery histogram rows: %w", err)
	}

	return hist, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word with zeroed review counters.
// Returns domain.ErrNotFound if the referenced category does not exist.
func (r *Repo) Create(ctx context.Context, f domain.WordFields) (*domain.Word, error) {
	columns := []string{"en", "ja", "example", "notes", "category_id"}
	values := []any{f.En, f.Ja, f.Example, f.Notes, f.CategoryID}
	if f.CreatedAt != nil {
		columns = append(columns, "created_at")
		values = append(values, *f.CreatedAt)
	}

	sql, args, err := psql.Insert("words").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + wordColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create word query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	w, err := scanWord(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", 0)
	}

	return w, nil
}

// Update applies a partial update and refreshes updated_at.
// Returns domain.ErrNotFound if the word (or a referenced category) does not exist.
func (r *Repo) Update(ctx context.Context, id int64, u domain.WordUpdate) (*domain.Word, error) {
	q := psql.Update("words")

	if u.En != nil {
		q = q.Set("en", *u.En)
	}
	if u.Ja != nil {
		q = q.Set("ja", *u.Ja)
	}
	if u.Example != nil {
		q = q.Set("example", *u.Example)
	}
	if u.Notes != nil {
		q = q.Set("notes", *u.Notes)
	}
	if u.CategoryID != nil {
		q = q.Set("category_id", *u.CategoryID)
	}
	if u.CreatedAt != nil {
		q = q.Set("created_at", *u.CreatedAt)
	}

	sql, args, err := q.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + wordColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	w, err := scanWord(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return w, nil
}

// UpdateCounters writes new review counters if the stored review_count
// still equals expectedReviewCount. Returns domain.ErrConflict when the
// row changed (or vanished) since it was read.
func (r *Repo) UpdateCounters(ctx context.Context, id int64, expectedReviewCount int, c domain.MasteryCounters) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, updateCountersSQL,
		id, expectedReviewCount, c.ReviewCount, c.CorrectCount, c.MasteryLevel, c.LastReviewedAt,
	)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %d: review_count changed: %w", id, domain.ErrConflict)
	}

	return nil
}

// Delete removes a word; its study sessions go with it.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.Word, error) {
	var w domain.Word

	err := row.Scan(
		&w.ID, &w.En, &w.Ja, &w.Example, &w.Notes, &w.CategoryID,
		&w.ReviewCount, &w.CorrectCount, &w.MasteryLevel, &w.LastReviewedAt,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

func collectWords(rows pgx.Rows) ([]domain.Word, error) {
	words := make([]domain.Word, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("word rows: %w", err)
	}
	return words, nil
}
