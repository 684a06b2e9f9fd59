package entity

// SellerRecord es un usuario vendedor de la tienda.
// Solo se usa para resolver sellerId → nombre visible.
type SellerRecord struct {
	ID       string
	Username string
	Name     string // nombre alternativo cuando no hay username
}
