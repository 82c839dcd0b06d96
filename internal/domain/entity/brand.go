package entity

// Brand representa uma marca do catálogo (HP, Epson, Canon...).
// O slug é derivado do nome via pkg/slug e é único.
type Brand struct {
	ID   string
	Name string
	Slug string
}
