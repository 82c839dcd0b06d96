package dto

// CreateBrandRequest entrada para criar uma marca.
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateBrandRequest entrada para atualizar uma marca.
type UpdateBrandRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// BrandResponse saída de uma marca.
type BrandResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateCategoryRequest entrada para criar uma categoria.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ImageURL string `json:"image_url"`
	ParentID string `json:"parent_id"`
}

// UpdateCategoryRequest entrada para atualizar uma categoria.
// ParentID não-nil com valor vazio move a categoria para a raiz.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	ImageURL *string `json:"image_url"`
	ParentID *string `json:"parent_id"`
}

// CategoryResponse saída de uma categoria, com as filhas aninhadas.
type CategoryResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Slug     string             `json:"slug"`
	ImageURL string             `json:"image_url,omitempty"`
	ParentID string             `json:"parent_id,omitempty"`
	Children []CategoryResponse `json:"children,omitempty"`
}

// CreatePrinterRequest entrada para cadastrar um modelo de impressora.
type CreatePrinterRequest struct {
	ModelName string `json:"model_name" validate:"required,min=1,max=150"`
	BrandID   string `json:"brand_id" validate:"required"`
}

// PrinterResponse saída de um modelo de impressora.
type PrinterResponse struct {
	ID        string `json:"id"`
	ModelName string `json:"model_name"`
	BrandID   string `json:"brand_id"`
}

// BannerResponse saída do banner do site.
type BannerResponse struct {
	Value    string `json:"value"`
	IsActive bool   `json:"is_active"`
}

// UpdateBannerRequest entrada para definir o banner do site.
type UpdateBannerRequest struct {
	Value    string `json:"value"`
	IsActive bool   `json:"is_active"`
}
