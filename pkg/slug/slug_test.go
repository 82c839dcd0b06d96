package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArthurS357/capcom-suprimentos-api/pkg/slug"
)

// slugShape: vazio ou grupos [a-z0-9]+ separados por hífen único,
// sem hífen nas pontas.
var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake_CasosConhecidos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Toner HP 85A", "toner-hp-85a"},
		{"Manutenção e Promoção de Verão", "manutencao-e-promocao-de-verao"},
		{"---Teste de URL---", "teste-de-url"},
		{"Cartucho  com   espaços", "cartucho-com-espacos"},
		{"Epson EcoTank L3250", "epson-ecotank-l3250"},
		{"Tinta & Refil (100ml)!", "tinta-refil-100ml"},
		{"ÁÉÍÓÚ àèìòù âêîôû ãõ ç Ç", "aeiou-aeiou-aeiou-ao-c-c"},
		{"   ", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, slug.Make(c.in), "slug de %q", c.in)
	}
}

func TestMake_FormatoDoResultado(t *testing.T) {
	inputs := []string{
		"Toner HP 85A", "Impressora Multifuncional Épson", "a--b__c",
		"çãõ", "123", "--", "Kit 4 Cores + Limpeza", "日本語 toner",
	}
	for _, in := range inputs {
		got := slug.Make(in)
		if got == "" {
			continue
		}
		assert.Regexp(t, slugShape, got, "slug de %q deve ter o formato canônico", in)
	}
}

func TestMake_Idempotente(t *testing.T) {
	inputs := []string{
		"", "Toner HP 85A", "Manutenção e Promoção de Verão",
		"---Teste de URL---", "çç  çç", "Epson EcoTank L3250", "!@#$",
	}
	for _, in := range inputs {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "Make deve ser idempotente para %q", in)
	}
}
