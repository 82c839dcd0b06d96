package search

import "strings"

// ProductView é a visão desnormalizada de um produto que o matcher avalia:
// os campos próprios mais a marca, a categoria e os modelos de impressora
// compatíveis. PrinterModel só é preenchido durante a avaliação de
// RelationAny, uma linha da relação por vez.
type ProductView struct {
	ID            string
	Name          string
	Description   string
	Type          string
	BrandName     string
	CategorySlug  string
	PrinterModels []string

	PrinterModel string
}

// Matches avalia um predicado contra uma visão de produto. É a semântica de
// referência da linguagem de predicados: o tradutor SQL do adaptador
// PostgreSQL deve produzir exatamente os mesmos conjuntos de resultados.
func Matches(p Predicate, v ProductView) bool {
	switch t := p.(type) {
	case Contains:
		return strings.Contains(strings.ToLower(fieldValue(t.Field, v)), strings.ToLower(t.Value))
	case In:
		got := fieldValue(t.Field, v)
		for _, want := range t.Values {
			if got == want {
				return true
			}
		}
		return false
	case And:
		for _, sub := range t.Preds {
			if !Matches(sub, v) {
				return false
			}
		}
		return true
	case Or:
		for _, sub := range t.Preds {
			if Matches(sub, v) {
				return true
			}
		}
		return false
	case RelationAny:
		if t.Relation != RelationPrinters {
			return false
		}
		for _, model := range v.PrinterModels {
			row := v
			row.PrinterModel = model
			if Matches(t.Pred, row) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func fieldValue(f Field, v ProductView) string {
	switch f {
	case FieldID:
		return v.ID
	case FieldName:
		return v.Name
	case FieldDescription:
		return v.Description
	case FieldType:
		return v.Type
	case FieldBrandName:
		return v.BrandName
	case FieldCategorySlug:
		return v.CategorySlug
	case FieldPrinterModel:
		return v.PrinterModel
	default:
		return ""
	}
}
