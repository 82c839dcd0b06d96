package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Type        string           `json:"type" validate:"required"`
	BrandID     string           `json:"brand_id" validate:"required"`
	CategoryID  string           `json:"category_id" validate:"required"`
	ImageURL    string           `json:"image_url"`
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Type        *string          `json:"type"`
	BrandID     *string          `json:"brand_id"`
	CategoryID  *string          `json:"category_id"`
	ImageURL    *string          `json:"image_url"`
}

// ProductResponse saída de um produto (visão admin).
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Type        string           `json:"type"`
	BrandID     string           `json:"brand_id"`
	CategoryID  string           `json:"category_id"`
	ImageURL    string           `json:"image_url,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ProductListingResponse saída de busca/listagem pública: produto com marca
// e categoria resolvidas.
type ProductListingResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	Description  string           `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Type         string           `json:"type"`
	BrandName    string           `json:"brand_name"`
	CategoryName string           `json:"category_name"`
	CategorySlug string           `json:"category_slug"`
	ImageURL     string           `json:"image_url,omitempty"`
}

// ProductDetailResponse saída da página de produto: a projeção pública mais
// as impressoras compatíveis.
type ProductDetailResponse struct {
	ProductListingResponse
	CompatiblePrinters []PrinterResponse `json:"compatible_printers"`
}
