package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transformação determinística de nome -> slug de URL. A decomposição NFD
// separa os acentos em marcas combinantes (ç vira c + cedilha), que são
// removidas em seguida; sobra apenas [a-z0-9-].
var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWord       = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Make converte texto arbitrário em um slug [a-z0-9-]. Entrada vazia devolve
// string vazia. É idempotente: Make(Make(x)) == Make(x).
func Make(text string) string {
	if text == "" {
		return ""
	}
	s, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Entrada com UTF-8 inválido: segue com o texto original e deixa
		// o filtro de caracteres descartar o que não for ASCII.
		s = text
	}
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
