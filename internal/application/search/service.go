package search

import (
	"strings"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
)

// Service compõe a busca de produtos da loja: texto livre expandido por
// compatibilidade de impressoras, filtros exatos de marca e tipo, e o
// catálogo de filtros da sidebar. Todas as operações são leituras puras.
type Service struct {
	products repository.ProductRepository
	printers repository.PrinterRepository
	compat   repository.CompatibilityRepository
	brands   repository.BrandRepository
}

// NewService constrói o serviço de busca.
func NewService(
	products repository.ProductRepository,
	printers repository.PrinterRepository,
	compat repository.CompatibilityRepository,
	brands repository.BrandRepository,
) *Service {
	return &Service{products: products, printers: printers, compat: compat, brands: brands}
}

// ResolveCompatibleProductIDs expande uma consulta de texto livre no conjunto
// de produtos compatíveis: casa a consulta por substring (case-insensitive)
// contra os modelos de impressora e devolve, sem duplicatas, os ids de
// cartucho/toner ligados a elas. Consulta vazia devolve conjunto vazio sem
// tocar o banco.
func (s *Service) ResolveCompatibleProductIDs(query string) ([]string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	printers, err := s.printers.FindByModelNameContains(q)
	if err != nil {
		return nil, err
	}
	if len(printers) == 0 {
		return nil, nil
	}
	printerIDs := make([]string, 0, len(printers))
	for _, p := range printers {
		printerIDs = append(printerIDs, p.ID)
	}
	ids, err := s.compat.ListCartridgeIDsByPrinterIDs(printerIDs)
	if err != nil {
		return nil, err
	}
	return dedupe(ids), nil
}

// Search monta o predicado composto e executa a busca. Grupo OR de texto
// (nome, descrição, marca, ids compatíveis) AND filtro de marca AND filtro
// de tipo; filtros ausentes não restringem nada. Sem nenhum critério,
// devolve o catálogo inteiro ordenado por nome.
func (s *Service) Search(in dto.SearchRequest) ([]dto.ProductListingResponse, error) {
	pred, err := s.buildPredicate(in)
	if err != nil {
		return nil, err
	}
	list, err := s.products.Search(pred)
	if err != nil {
		return nil, err
	}
	return toListingResponses(list), nil
}

// CompatibleProducts lista os produtos compatíveis com um modelo de
// impressora, atravessando a relação no próprio predicado (RelationAny).
// Produz o mesmo conjunto que Search com a consulta igual ao modelo,
// restrito ao ramo de compatibilidade.
func (s *Service) CompatibleProducts(model string) ([]dto.ProductListingResponse, error) {
	m := strings.TrimSpace(model)
	if m == "" {
		return nil, domain.ErrInvalidInput
	}
	pred := search.RelationAny{
		Relation: search.RelationPrinters,
		Pred:     search.Contains{Field: search.FieldPrinterModel, Value: m},
	}
	list, err := s.products.Search(pred)
	if err != nil {
		return nil, err
	}
	return toListingResponses(list), nil
}

// Filters devolve o catálogo de filtros: marcas ordenadas por nome e o
// conjunto distinto de tipos presentes na tabela de produtos.
func (s *Service) Filters() (*dto.FiltersResponse, error) {
	brands, err := s.brands.ListOrderedByName()
	if err != nil {
		return nil, err
	}
	types, err := s.products.DistinctTypes()
	if err != nil {
		return nil, err
	}
	options := make([]dto.BrandOption, 0, len(brands))
	for _, b := range brands {
		options = append(options, dto.BrandOption{ID: b.ID, Name: b.Name})
	}
	return &dto.FiltersResponse{Brands: options, Types: types}, nil
}

func (s *Service) buildPredicate(in dto.SearchRequest) (search.Predicate, error) {
	brands, err := cleanFilter(in.Brands)
	if err != nil {
		return nil, err
	}
	types, err := cleanFilter(in.Types)
	if err != nil {
		return nil, err
	}

	var parts []search.Predicate
	if q := strings.TrimSpace(in.Query); q != "" {
		or := []search.Predicate{
			search.Contains{Field: search.FieldName, Value: q},
			search.Contains{Field: search.FieldDescription, Value: q},
			search.Contains{Field: search.FieldBrandName, Value: q},
		}
		ids, err := s.ResolveCompatibleProductIDs(q)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			or = append(or, search.In{Field: search.FieldID, Values: ids})
		}
		parts = append(parts, search.Or{Preds: or})
	}
	if len(brands) > 0 {
		parts = append(parts, search.In{Field: search.FieldBrandName, Values: brands})
	}
	if len(types) > 0 {
		parts = append(parts, search.In{Field: search.FieldType, Values: types})
	}
	return search.And{Preds: parts}, nil
}

// cleanFilter normaliza um filtro exato: apara espaços e rejeita entradas em
// branco antes de montar o predicado.
func cleanFilter(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, domain.ErrInvalidInput
		}
		out = append(out, v)
	}
	return out, nil
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toListingResponses(list []*entity.ProductListing) []dto.ProductListingResponse {
	items := make([]dto.ProductListingResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toListingResponse(p))
	}
	return items
}

func toListingResponse(p *entity.ProductListing) dto.ProductListingResponse {
	out := dto.ProductListingResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Type:         p.Type,
		BrandName:    p.BrandName,
		CategoryName: p.CategoryName,
		CategorySlug: p.CategorySlug,
		ImageURL:     p.ImageURL,
	}
	if p.Price.Valid {
		v := p.Price.Decimal
		out.Price = &v
	}
	return out
}
