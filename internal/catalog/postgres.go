package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luooka/casebot/internal/domain"
)

// Repository persists the catalog between restarts.
type Repository interface {
	// Save replaces the stored catalog wholesale.
	Save(ctx context.Context, containers []*domain.Container) error

	// Load reads the full stored catalog.
	Load(ctx context.Context) ([]*domain.Container, error)
}

// postgresRepository implements Repository using PostgreSQL
type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a catalog store with a Postgres backend.
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

// Save replaces the whole catalog in one transaction. A failed sync rolls
// back and leaves the previous catalog untouched.
func (r *postgresRepository) Save(ctx context.Context, containers []*domain.Container) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, SQLDeleteAllItems); err != nil {
		return fmt.Errorf(ErrMsgSaveCatalogFailed, err)
	}
	if _, err := tx.Exec(ctx, SQLDeleteAllContainers); err != nil {
		return fmt.Errorf(ErrMsgSaveCatalogFailed, err)
	}

	for _, c := range containers {
		if _, err := tx.Exec(ctx, SQLInsertContainer, c.Name, c.ImageURL, string(c.Type)); err != nil {
			return fmt.Errorf(ErrMsgSaveCatalogFailed, err)
		}
		for _, it := range c.Items {
			if _, err := tx.Exec(ctx, SQLInsertItem, c.Name, it.ShortName, string(it.Tier), it.ImageURL); err != nil {
				return fmt.Errorf(ErrMsgSaveCatalogFailed, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

// Load reads the stored catalog, preserving per-container item order.
func (r *postgresRepository) Load(ctx context.Context) ([]*domain.Container, error) {
	rows, err := r.db.Query(ctx, SQLSelectContainers)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}
	defer rows.Close()

	var order []string
	byName := make(map[string]*domain.Container)
	for rows.Next() {
		c := &domain.Container{}
		var ctype string
		if err := rows.Scan(&c.Name, &c.ImageURL, &ctype); err != nil {
			return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
		}
		c.Type = domain.ContainerType(ctype)
		byName[c.Name] = c
		order = append(order, c.Name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	items, err := r.db.Query(ctx, SQLSelectItems)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}
	defer items.Close()
	for items.Next() {
		var containerName, shortName, tier, img string
		if err := items.Scan(&containerName, &shortName, &tier, &img); err != nil {
			return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
		}
		if c, ok := byName[containerName]; ok {
			c.Items = append(c.Items, domain.CatalogItem{
				ShortName: shortName,
				Tier:      domain.Tier(tier),
				ImageURL:  img,
			})
		}
	}
	if err := items.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	out := make([]*domain.Container, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out, nil
}
