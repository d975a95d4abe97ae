package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creative-hub/internal/core/domain"
)

// CreativeRepository implements port.CreativeRepository using pgxpool for
// PostgreSQL. URL bundle, tags and metrics are stored as JSONB.
type CreativeRepository struct {
	pool *pgxpool.Pool
}

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

const creativeColumns = `id, format, name, urls, tags, version, networks, status, metrics,
    parent_id, generated_from, is_variation, created_at, updated_at`

const upsertCreative = `
INSERT INTO creatives (` + creativeColumns + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
ON CONFLICT (id) DO UPDATE SET
    format = EXCLUDED.format,
    name = EXCLUDED.name,
    urls = EXCLUDED.urls,
    tags = EXCLUDED.tags,
    version = EXCLUDED.version,
    networks = EXCLUDED.networks,
    status = EXCLUDED.status,
    metrics = EXCLUDED.metrics,
    parent_id = EXCLUDED.parent_id,
    generated_from = EXCLUDED.generated_from,
    is_variation = EXCLUDED.is_variation,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at`

// ListCreatives returns all creatives, newest first.
func (r *CreativeRepository) ListCreatives(ctx context.Context) ([]domain.Creative, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+creativeColumns+` FROM creatives ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCreative)
}

// UpsertCreative inserts c or overwrites the row with the same id.
func (r *CreativeRepository) UpsertCreative(ctx context.Context, c domain.Creative) error {
	args, err := creativeArgs(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, upsertCreative, args...)
	return err
}

// ReplaceCreatives deletes every row and inserts all in one transaction.
func (r *CreativeRepository) ReplaceCreatives(ctx context.Context, all []domain.Creative) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM creatives`); err != nil {
		return err
	}
	batch := &pgx.Batch{}
	for _, c := range all {
		args, argErr := creativeArgs(c)
		if argErr != nil {
			err = argErr
			return err
		}
		batch.Queue(upsertCreative, args...)
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}

// DeleteCreative removes the creative with id. Unknown ids are not an error.
func (r *CreativeRepository) DeleteCreative(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM creatives WHERE id = $1`, id)
	return err
}

func creativeArgs(c domain.Creative) ([]any, error) {
	urls, err := json.Marshal(c.URLs)
	if err != nil {
		return nil, fmt.Errorf("marshal urls: %w", err)
	}
	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	var metrics []byte
	if c.Metrics != nil {
		if metrics, err = json.Marshal(c.Metrics); err != nil {
			return nil, fmt.Errorf("marshal metrics: %w", err)
		}
	}
	return []any{
		c.ID, string(c.Format), c.Name, urls, tags, c.Version, c.Networks, string(c.Status), metrics,
		c.ParentID, c.GeneratedFrom, c.IsVariation, c.CreatedAt, c.UpdatedAt,
	}, nil
}

func scanCreative(row pgx.CollectableRow) (domain.Creative, error) {
	var (
		c                   domain.Creative
		format, status      string
		urls, tags, metrics []byte
	)
	err := row.Scan(
		&c.ID,
		&format,
		&c.Name,
		&urls,
		&tags,
		&c.Version,
		&c.Networks,
		&status,
		&metrics,
		&c.ParentID,
		&c.GeneratedFrom,
		&c.IsVariation,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Format = domain.Format(format)
	c.Status = domain.Status(status)
	if err = json.Unmarshal(urls, &c.URLs); err != nil {
		return c, fmt.Errorf("creative %s urls: %w", c.ID, err)
	}
	if err = json.Unmarshal(tags, &c.Tags); err != nil {
		return c, fmt.Errorf("creative %s tags: %w", c.ID, err)
	}
	if metrics != nil {
		c.Metrics = &domain.Metrics{}
		if err = json.Unmarshal(metrics, c.Metrics); err != nil {
			return c, fmt.Errorf("creative %s metrics: %w", c.ID, err)
		}
	}
	return c, nil
}
