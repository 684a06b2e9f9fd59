package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	"github.com/jhoicas/pos-analytics/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.SellerRepository  = (*SellerRepo)(nil)
	_ repository.DebtRepository    = (*DebtRepo)(nil)
)

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRepo lectura del catálogo de productos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByStore catálogo vigente de la tienda. Los NULL numéricos se leen como cero.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string) ([]entity.ProductRecord, error) {
	const query = `
	SELECT barcode, COALESCE(name, ''), COALESCE(category, ''), COALESCE(stock, 0),
	       COALESCE(cost_price, 0), COALESCE(price, 0)
	FROM products
	WHERE store_id = $1
	ORDER BY barcode`

	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ProductRecord, error) {
		var p entity.ProductRecord
		err := row.Scan(&p.Barcode, &p.Name, &p.Category, &p.Stock, &p.CostPrice, &p.Price)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

// ── Vendedores ────────────────────────────────────────────────────────────────

// SellerRepo lectura de los usuarios de la tienda.
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador de vendedores.
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

func (r *SellerRepo) ListByStore(ctx context.Context, storeID string) ([]entity.SellerRecord, error) {
	const query = `
	SELECT id::TEXT, COALESCE(username, ''), COALESCE(name, '')
	FROM users
	WHERE store_id = $1`

	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	sellers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.SellerRecord, error) {
		var s entity.SellerRecord
		err := row.Scan(&s.ID, &s.Username, &s.Name)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return sellers, nil
}

// ── Deudas ────────────────────────────────────────────────────────────────────

// DebtRepo lectura de deudas con clientes y proveedores.
type DebtRepo struct {
	q Querier
}

// NewDebtRepository construye el adaptador de deudas.
func NewDebtRepository(q Querier) *DebtRepo {
	return &DebtRepo{q: q}
}

func (r *DebtRepo) ListByStore(ctx context.Context, storeID string) ([]entity.DebtRecord, error) {
	const query = `
	SELECT COALESCE(party_name, ''), COALESCE(party_type, ''),
	       COALESCE(amount, 0), COALESCE(paid_amount, 0)
	FROM debts
	WHERE store_id = $1`

	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	debts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.DebtRecord, error) {
		var d entity.DebtRecord
		err := row.Scan(&d.PartyName, &d.PartyType, &d.Amount, &d.PaidAmount)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan debts: %w", err)
	}
	return debts, nil
}
