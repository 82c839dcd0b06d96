package dto

// SearchRequest parâmetros da busca de produtos. Todos opcionais: filtros
// ausentes não restringem nada.
type SearchRequest struct {
	Query  string   `query:"q"`
	Brands []string `query:"brands"`
	Types  []string `query:"types"`
}

// BrandOption projeção id+nome para a sidebar de filtros.
type BrandOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FiltersResponse catálogo de filtros disponíveis para a UI.
type FiltersResponse struct {
	Brands []BrandOption `json:"brands"`
	Types  []string      `json:"types"`
}
