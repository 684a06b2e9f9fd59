package backend

import (
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// ── Formato de cable del backend ──────────────────────────────────────────────

type transactionJSON struct {
	MongoID         string      `json:"_id"`
	ID              string      `json:"id"`
	Barcode         string      `json:"barcode"`
	Quantity        flexInt     `json:"quantity"`
	TransactionType string      `json:"transactionType"`
	Total           flexDecimal `json:"total"`
	Price           flexDecimal `json:"price"`
	CostPrice       optDecimal  `json:"costPrice"`
	Profit          optDecimal  `json:"profit"`
	SellerID        string      `json:"sellerId"`
	CreatedAt       flexTime    `json:"createdAt"`
}

func (t transactionJSON) toEntity() entity.TransactionRecord {
	return entity.TransactionRecord{
		ID:              firstNonEmpty(t.MongoID, t.ID),
		Barcode:         t.Barcode,
		Quantity:        int(t.Quantity),
		TransactionType: t.TransactionType,
		Total:           t.Total.Decimal,
		Price:           t.Price.Decimal,
		CostPrice:       t.CostPrice.Ptr(),
		Profit:          t.Profit.Ptr(),
		SellerID:        t.SellerID,
		CreatedAt:       t.CreatedAt.Time,
	}
}

type sellerJSON struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (s sellerJSON) toEntity() entity.SellerRecord {
	return entity.SellerRecord{
		ID:       firstNonEmpty(s.MongoID, s.ID),
		Username: s.Username,
		Name:     s.Name,
	}
}

type productJSON struct {
	Barcode   string      `json:"barcode"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Stock     flexInt     `json:"stock"`
	CostPrice flexDecimal `json:"costPrice"`
	Price     flexDecimal `json:"price"`
}

func (p productJSON) toEntity() entity.ProductRecord {
	return entity.ProductRecord{
		Barcode:   p.Barcode,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     int(p.Stock),
		CostPrice: p.CostPrice.Decimal,
		Price:     p.Price.Decimal,
	}
}

type debtJSON struct {
	PartyName  string      `json:"partyName"`
	PartyType  string      `json:"partyType"`
	Amount     flexDecimal `json:"amount"`
	PaidAmount flexDecimal `json:"paidAmount"`
}

func (d debtJSON) toEntity() entity.DebtRecord {
	return entity.DebtRecord{
		PartyName:  d.PartyName,
		PartyType:  d.PartyType,
		Amount:     d.Amount.Decimal,
		PaidAmount: d.PaidAmount.Decimal,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
