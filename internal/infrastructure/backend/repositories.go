package backend

import (
	"context"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	"github.com/jhoicas/pos-analytics/internal/domain/repository"
)

var (
	_ repository.TransactionRepository = (*TransactionRepository)(nil)
	_ repository.SellerRepository      = (*SellerRepository)(nil)
	_ repository.ProductRepository     = (*ProductRepository)(nil)
	_ repository.DebtRepository        = (*DebtRepository)(nil)
)

// TransactionRepository GET /transactions?storeId=.
type TransactionRepository struct{ client *Client }

// NewTransactionRepository construye el repositorio.
func NewTransactionRepository(c *Client) *TransactionRepository {
	return &TransactionRepository{client: c}
}

// ListByStore devuelve las transacciones en el orden del backend.
func (r *TransactionRepository) ListByStore(ctx context.Context, storeID string) ([]entity.TransactionRecord, error) {
	var raw []transactionJSON
	if err := r.client.getList(ctx, pathTransactions, storeID, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.TransactionRecord, 0, len(raw))
	for _, t := range raw {
		out = append(out, t.toEntity())
	}
	return out, nil
}

// SellerRepository GET /users/store?storeId=.
type SellerRepository struct{ client *Client }

func NewSellerRepository(c *Client) *SellerRepository {
	return &SellerRepository{client: c}
}

func (r *SellerRepository) ListByStore(ctx context.Context, storeID string) ([]entity.SellerRecord, error) {
	var raw []sellerJSON
	if err := r.client.getList(ctx, pathSellers, storeID, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.SellerRecord, 0, len(raw))
	for _, s := range raw {
		out = append(out, s.toEntity())
	}
	return out, nil
}

// ProductRepository GET /products/products?storeId=.
type ProductRepository struct{ client *Client }

func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{client: c}
}

func (r *ProductRepository) ListByStore(ctx context.Context, storeID string) ([]entity.ProductRecord, error) {
	var raw []productJSON
	if err := r.client.getList(ctx, pathProducts, storeID, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.ProductRecord, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// DebtRepository GET /debts?storeId=.
type DebtRepository struct{ client *Client }

func NewDebtRepository(c *Client) *DebtRepository {
	return &DebtRepository{client: c}
}

func (r *DebtRepository) ListByStore(ctx context.Context, storeID string) ([]entity.DebtRecord, error) {
	var raw []debtJSON
	if err := r.client.getList(ctx, pathDebts, storeID, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.DebtRecord, 0, len(raw))
	for _, d := range raw {
		out = append(out, d.toEntity())
	}
	return out, nil
}
