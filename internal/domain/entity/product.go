package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de produto aceitos no catálogo.
const (
	TypeToner      = "TONER"
	TypeImpressora = "IMPRESSORA"
	TypeRecarga    = "RECARGA_JATO_TINTA"
	TypeTintaRefil = "TINTA_REFIL"
)

// ProductTypes lista os tipos válidos, em ordem alfabética.
var ProductTypes = []string{TypeImpressora, TypeRecarga, TypeTintaRefil, TypeToner}

// ValidProductType informa se t é um tipo de produto conhecido.
func ValidProductType(t string) bool {
	for _, v := range ProductTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Product representa um item do catálogo (suprimento ou impressora à venda).
// Price é opcional; quando presente, é >= 0. Slug é único e derivado do nome.
type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       decimal.NullDecimal
	Type        string
	BrandID     string
	CategoryID  string
	ImageURL    string
	CreatedAt   time.Time
}

// ProductListing é a projeção usada em busca e listagens públicas:
// o produto com marca e categoria já resolvidas.
type ProductListing struct {
	Product
	BrandName    string
	CategoryName string
	CategorySlug string
}
