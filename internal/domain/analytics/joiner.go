package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// ProductInfo datos del catálogo que necesitan los agregadores.
type ProductInfo struct {
	Name      string
	Category  string
	Stock     int
	CostPrice decimal.Decimal
}

// Catalog lookup barcode → ProductInfo. Un Catalog nil se comporta como vacío.
type Catalog map[string]ProductInfo

// BuildCatalog indexa los productos por barcode. Si un barcode se repite gana el último.
func BuildCatalog(products []entity.ProductRecord) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.Barcode] = ProductInfo{
			Name:      p.Name,
			Category:  p.Category,
			Stock:     p.Stock,
			CostPrice: p.CostPrice,
		}
	}
	return c
}

// Lookup busca un producto; nunca falla para barcodes desconocidos.
func (c Catalog) Lookup(barcode string) (ProductInfo, bool) {
	p, ok := c[barcode]
	return p, ok
}

// Cost costo vigente del catálogo, o cero si el producto ya no existe.
func (c Catalog) Cost(barcode string) decimal.Decimal {
	if p, ok := c[barcode]; ok {
		return p.CostPrice
	}
	return decimal.Zero
}

// CategoryOf categoría del producto o fallback si no existe o no tiene categoría.
func (c Catalog) CategoryOf(barcode, fallback string) string {
	if p, ok := c[barcode]; ok && p.Category != "" {
		return p.Category
	}
	return fallback
}

// NameOf nombre del producto o el barcode crudo si no está en el catálogo.
func (c Catalog) NameOf(barcode string) string {
	if p, ok := c[barcode]; ok && p.Name != "" {
		return p.Name
	}
	return barcode
}

// SellerDirectory lookup sellerId → nombre visible.
type SellerDirectory map[string]string

// BuildSellerDirectory resuelve el nombre visible de cada vendedor: username, si no name, si no el id.
// Los registros sin id se ignoran porque ninguna transacción puede referenciarlos.
func BuildSellerDirectory(sellers []entity.SellerRecord) SellerDirectory {
	d := make(SellerDirectory, len(sellers))
	for _, s := range sellers {
		if s.ID == "" {
			continue
		}
		switch {
		case s.Username != "":
			d[s.ID] = s.Username
		case s.Name != "":
			d[s.ID] = s.Name
		default:
			d[s.ID] = s.ID
		}
	}
	return d
}

// NameOf nombre del vendedor o fallback si el id no está en el directorio.
func (d SellerDirectory) NameOf(sellerID, fallback string) string {
	if name, ok := d[sellerID]; ok && name != "" {
		return name
	}
	return fallback
}
