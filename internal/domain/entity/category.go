package entity

// Category representa uma categoria de produtos. A hierarquia é uma
// adjacency list via ParentID; na prática a loja usa até 3 níveis, mas o
// limite não é imposto aqui. Reparentear nunca pode formar ciclo.
type Category struct {
	ID       string
	Name     string
	Slug     string
	ImageURL string
	ParentID string // vazio se é raiz
}
