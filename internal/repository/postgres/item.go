package postgres

import (
	"context"
	"database/sql"
	"time"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/repository"

	"github.com/lib/pq"
)

type itemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) repository.ItemRepository {
	return &itemRepository{db: db}
}

// tableFor maps an item type to its table and occurred-date column. Lost and
// found items live in separate tables with otherwise identical shapes.
func tableFor(t domain.ItemType) (table, dateCol string) {
	if t == domain.ItemTypeLost {
		return "lost_items", "date_lost"
	}
	return "found_items", "date_found"
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	table, dateCol := tableFor(item.Type)
	query := `INSERT INTO ` + table + ` (user_id, name, category, description, location, ` + dateCol + `, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING item_id, created_at`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query,
		item.OwnerID, item.Name, nullStr(item.Category), item.Description,
		nullStr(item.Location), item.OccurredDate, item.Status,
	).Scan(&item.ID, &createdOn)
	if err != nil {
		return err
	}
	item.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, itemType domain.ItemType, id int32) (*domain.Item, error) {
	return r.get(ctx, itemType, id, false)
}

func (r *itemRepository) GetForUpdate(ctx context.Context, itemType domain.ItemType, id int32) (*domain.Item, error) {
	return r.get(ctx, itemType, id, true)
}

func (r *itemRepository) get(ctx context.Context, itemType domain.ItemType, id int32, forUpdate bool) (*domain.Item, error) {
	table, dateCol := tableFor(itemType)
	query := `SELECT item_id, user_id, name, COALESCE(category, ''), description, COALESCE(location, ''), ` +
		dateCol + `, status, created_at FROM ` + table + ` WHERE item_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	item := &domain.Item{Type: itemType}
	var occurred sql.NullTime
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Category, &item.Description,
		&item.Location, &occurred, &item.Status, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	if occurred.Valid {
		d := occurred.Time.Format("2006-01-02")
		item.OccurredDate = &d
	}
	item.CreatedOn = createdOn.Format(time.RFC3339)
	return item, nil
}

func (r *itemRepository) UpdateStatus(ctx context.Context, itemType domain.ItemType, id int32, status domain.ItemStatus) error {
	table, _ := tableFor(itemType)
	result, err := r.db.ExecContext(ctx, `UPDATE `+table+` SET status = $1 WHERE item_id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int32) (lost, found []domain.Item, err error) {
	lost, err = r.listByOwner(ctx, domain.ItemTypeLost, ownerID)
	if err != nil {
		return nil, nil, err
	}
	found, err = r.listByOwner(ctx, domain.ItemTypeFound, ownerID)
	if err != nil {
		return nil, nil, err
	}
	return lost, found, nil
}

func (r *itemRepository) listByOwner(ctx context.Context, itemType domain.ItemType, ownerID int32) ([]domain.Item, error) {
	table, dateCol := tableFor(itemType)
	query := `SELECT item_id, user_id, name, COALESCE(category, ''), description, COALESCE(location, ''), ` +
		dateCol + `, status, created_at FROM ` + table + ` WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows, itemType)
}

// SearchOpen runs a plain filtered read over both tables, restricted to
// items still in their open status.
func (r *itemRepository) SearchOpen(ctx context.Context, query, category, location string, limit int32) ([]domain.Item, error) {
	sqlQuery := `
		SELECT 'lost', item_id, user_id, name, COALESCE(category, ''), description, COALESCE(location, ''), date_lost, status, created_at
		FROM lost_items
		WHERE (name ILIKE $1 OR description ILIKE $1 OR $1 IS NULL)
		  AND ($2::text IS NULL OR category = $2)
		  AND ($3::text IS NULL OR location ILIKE $3)
		  AND status = 'active'
		UNION ALL
		SELECT 'found', item_id, user_id, name, COALESCE(category, ''), description, COALESCE(location, ''), date_found, status, created_at
		FROM found_items
		WHERE (name ILIKE $1 OR description ILIKE $1 OR $1 IS NULL)
		  AND ($2::text IS NULL OR category = $2)
		  AND ($3::text IS NULL OR location ILIKE $3)
		  AND status = 'available'
		ORDER BY created_at DESC
		LIMIT $4`

	rows, err := r.db.QueryContext(ctx, sqlQuery,
		nullPattern(query), nullStr(category), nullPattern(location), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		var occurred sql.NullTime
		var createdOn time.Time
		if err := rows.Scan(&it.Type, &it.ID, &it.OwnerID, &it.Name, &it.Category,
			&it.Description, &it.Location, &occurred, &it.Status, &createdOn); err != nil {
			return nil, err
		}
		if occurred.Valid {
			d := occurred.Time.Format("2006-01-02")
			it.OccurredDate = &d
		}
		it.CreatedOn = createdOn.Format(time.RFC3339)
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetOpenFoundByIDs fetches still-available found items by id, used to
// hydrate advisory match results.
func (r *itemRepository) GetOpenFoundByIDs(ctx context.Context, ids []int32) ([]domain.Item, error) {
	query := `SELECT item_id, user_id, name, COALESCE(category, ''), description, COALESCE(location, ''), date_found, status, created_at
	          FROM found_items WHERE item_id = ANY($1) AND status = 'available'`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows, domain.ItemTypeFound)
}

func scanItems(rows *sql.Rows, itemType domain.ItemType) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		it := domain.Item{Type: itemType}
		var occurred sql.NullTime
		var createdOn time.Time
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Category,
			&it.Description, &it.Location, &occurred, &it.Status, &createdOn); err != nil {
			return nil, err
		}
		if occurred.Valid {
			d := occurred.Time.Format("2006-01-02")
			it.OccurredDate = &d
		}
		it.CreatedOn = createdOn.Format(time.RFC3339)
		items = append(items, it)
	}
	return items, rows.Err()
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullPattern(s string) any {
	if s == "" {
		return nil
	}
	return "%" + s + "%"
}
