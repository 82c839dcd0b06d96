package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/slug"
)

// maxTreeWalk limita a subida na hierarquia ao checar ciclos, como proteção
// contra dados já corrompidos no banco.
const maxTreeWalk = 32

// CategoryUseCase casos de uso CRUD para categorias. A hierarquia é uma
// adjacency list; reparentear passa por checagem de ciclo.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cria uma categoria. ParentID, se informado, deve existir.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	s := slug.Make(name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	category := &entity.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     s,
		ImageURL: in.ImageURL,
		ParentID: in.ParentID,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Tree devolve as categorias raiz com as filhas aninhadas.
func (uc *CategoryUseCase) Tree() ([]dto.CategoryResponse, error) {
	roots, err := uc.repo.ListRoots()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(roots))
	for _, root := range roots {
		node, err := uc.subtree(root, maxTreeWalk)
		if err != nil {
			return nil, err
		}
		items = append(items, *node)
	}
	return items, nil
}

func (uc *CategoryUseCase) subtree(c *entity.Category, depth int) (*dto.CategoryResponse, error) {
	node := toCategoryResponse(c)
	if depth <= 0 {
		return node, nil
	}
	children, err := uc.repo.ListByParent(c.ID)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		childNode, err := uc.subtree(child, depth-1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, *childNode)
	}
	return node, nil
}

// GetBySlug obtém uma categoria pelo slug, com as filhas diretas.
func (uc *CategoryUseCase) GetBySlug(s string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return uc.subtree(category, 1)
}

// Update atualiza uma categoria. Renomear recalcula o slug; reparentear é
// rejeitado com ErrCycle quando o novo pai é a própria categoria ou um
// descendente dela.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		s := slug.Make(name)
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		if s != category.Slug {
			existing, err := uc.repo.GetBySlug(s)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		category.Name = name
		category.Slug = s
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if in.ParentID != nil && *in.ParentID != category.ParentID {
		if err := uc.checkCycle(id, *in.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = *in.ParentID
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// checkCycle rejeita o reparenteamento se newParentID é a própria categoria
// ou está na subárvore dela (sobe a cadeia de ancestrais do candidato).
func (uc *CategoryUseCase) checkCycle(id, newParentID string) error {
	if newParentID == "" {
		return nil // mover para a raiz é sempre seguro
	}
	if newParentID == id {
		return domain.ErrCycle
	}
	current := newParentID
	for i := 0; i < maxTreeWalk; i++ {
		node, err := uc.repo.GetByID(current)
		if err != nil {
			return err
		}
		if node == nil {
			return domain.ErrInvalidInput
		}
		if node.ParentID == "" {
			return nil
		}
		if node.ParentID == id {
			return domain.ErrCycle
		}
		current = node.ParentID
	}
	return domain.ErrCycle
}

// Delete exclui uma categoria. Categoria com produtos ou filhas vira
// ErrConflict (FK no banco).
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
		ParentID: c.ParentID,
	}
}
