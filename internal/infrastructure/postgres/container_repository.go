package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
)

var _ repository.ContainerRepository = (*ContainerRepo)(nil)

// ContainerRepo implementación del puerto ContainerRepository sobre PostgreSQL.
// Un contenedor son dos tablas: containers y container_items; toda edición
// reemplaza la lista de ítems completa dentro de una transacción.
type ContainerRepo struct {
	pool *pgxpool.Pool
}

// NewContainerRepository construye el adaptador de persistencia para contenedores.
func NewContainerRepository(pool *pgxpool.Pool) *ContainerRepo {
	return &ContainerRepo{pool: pool}
}

// Create persiste un contenedor nuevo con sus ítems.
func (r *ContainerRepo) Create(container *entity.Container) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO containers (id, company_id, name, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		container.ID, container.CompanyID, container.Name, string(container.Location),
		container.CreatedAt, container.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert container: %w", err)
	}
	if err := insertItems(ctx, tx, container); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update reemplaza metadatos y la lista completa de ítems.
func (r *ContainerRepo) Update(container *entity.Container) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
		UPDATE containers SET name = $2, location = $3, updated_at = $4
		WHERE id = $1`,
		container.ID, container.Name, string(container.Location), container.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update container: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM container_items WHERE container_id = $1`, container.ID); err != nil {
		return fmt.Errorf("delete container items: %w", err)
	}
	if err := insertItems(ctx, tx, container); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un contenedor con sus ítems; nil si no existe.
func (r *ContainerRepo) GetByID(id string) (*entity.Container, error) {
	ctx := context.Background()
	var c entity.Container
	var location string
	err := r.pool.QueryRow(ctx, `
		SELECT id, company_id, name, location, created_at, updated_at
		FROM containers WHERE id = $1`, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &location, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get container: %w", err)
	}
	c.Location = entity.Location(location)

	rows, err := r.pool.Query(ctx, `
		SELECT id, detail, quantity, cost, currency, barcode
		FROM container_items WHERE container_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list container items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, it)
	}
	return &c, rows.Err()
}

// ListByCompany lista los contenedores de la empresa con sus ítems;
// location vacío = ambas ubicaciones.
func (r *ContainerRepo) ListByCompany(companyID string, location entity.Location) ([]*entity.Container, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, name, location, created_at, updated_at
		FROM containers WHERE company_id = $1`
	args := []any{companyID}
	if location != "" {
		query += ` AND location = $2`
		args = append(args, string(location))
	}
	query += ` ORDER BY created_at, name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Container
	byID := make(map[string]*entity.Container)
	for rows.Next() {
		var c entity.Container
		var loc string
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &loc, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		c.Location = entity.Location(loc)
		list = append(list, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT i.container_id, i.id, i.detail, i.quantity, i.cost, i.currency, i.barcode
		FROM container_items i
		JOIN containers c ON c.id = i.container_id
		WHERE c.company_id = $1
		ORDER BY i.container_id, i.position`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list container items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var containerID string
		var it entity.Item
		var currency string
		if err := itemRows.Scan(&containerID, &it.ID, &it.Detail, &it.Quantity, &it.Cost, &currency, &it.Barcode); err != nil {
			return nil, fmt.Errorf("scan container item: %w", err)
		}
		it.Currency = entity.Currency(currency)
		if c, ok := byID[containerID]; ok {
			c.Items = append(c.Items, it)
		}
	}
	return list, itemRows.Err()
}

// Delete elimina un contenedor; los ítems caen por FK ON DELETE CASCADE.
func (r *ContainerRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM containers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete container: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, container *entity.Container) error {
	for pos, it := range container.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO container_items (container_id, position, id, detail, quantity, cost, currency, barcode)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			container.ID, pos, it.ID, it.Detail, it.Quantity, it.Cost, string(it.Currency), it.Barcode,
		)
		if err != nil {
			return fmt.Errorf("insert container item: %w", err)
		}
	}
	return nil
}

func scanItem(rows pgx.Rows) (entity.Item, error) {
	var it entity.Item
	var currency string
	if err := rows.Scan(&it.ID, &it.Detail, &it.Quantity, &it.Cost, &currency, &it.Barcode); err != nil {
		return entity.Item{}, fmt.Errorf("scan container item: %w", err)
	}
	it.Currency = entity.Currency(currency)
	return it, nil
}
