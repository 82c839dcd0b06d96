package search

// Field identifica um campo consultável na busca de produtos.
type Field string

const (
	FieldID           Field = "id"
	FieldName         Field = "name"
	FieldDescription  Field = "description"
	FieldType         Field = "type"
	FieldBrandName    Field = "brand_name"
	FieldCategorySlug Field = "category_slug"

	// FieldPrinterModel só é válido dentro de RelationAny(RelationPrinters, ...).
	FieldPrinterModel Field = "printer_model"
)

// Relation identifica uma relação atravessável por RelationAny.
type Relation string

// RelationPrinters percorre as impressoras compatíveis do produto
// (join printer_compatibilities -> printers).
const RelationPrinters Relation = "printers"

// Predicate é a união fechada de condições componíveis sobre produtos.
// A semântica de referência está em Matches; a tradução para SQL fica no
// adaptador de persistência. O ORM original montava esses filtros como
// objetos aninhados AND/OR; aqui a composição é explícita.
type Predicate interface {
	isPredicate()
}

// Contains casa se o valor do campo contém Value, sem diferenciar
// maiúsculas/minúsculas. Value vazio casa com qualquer linha.
type Contains struct {
	Field Field
	Value string
}

// In casa se o valor do campo é exatamente um dos Values.
// Com Values vazio não casa com nada (um filtro ausente deve ser
// simplesmente omitido do predicado, nunca representado por In vazio).
type In struct {
	Field  Field
	Values []string
}

// And casa se todos os predicados casam. Vazio casa com tudo.
type And struct {
	Preds []Predicate
}

// Or casa se ao menos um predicado casa. Vazio não casa com nada.
type Or struct {
	Preds []Predicate
}

// RelationAny casa se alguma linha da relação satisfaz o predicado interno.
type RelationAny struct {
	Relation Relation
	Pred     Predicate
}

func (Contains) isPredicate()    {}
func (In) isPredicate()          {}
func (And) isPredicate()         {}
func (Or) isPredicate()          {}
func (RelationAny) isPredicate() {}
