package helper

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Aksan (combining mark) temizleyici: NFD aç → Mn sil → NFC kapa.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText gruplama/eşleştirme anahtarı üretir:
// - Türkçe kurallarla küçük harfe çevirir (İ/I → i, ı korunur → aşağıda i olur)
// - aksanları söker (ö→o, ü→u, ş→s, ç→c, ğ→g)
// - boşlukları tek boşluğa indirger
// "Mehmet ÖZTÜRK" ve " mehmet oztürk " aynı anahtara düşer.
// Pure & total: her girdi (boş string dahil) tanımlı bir çıktı üretir, asla hata dönmez.
func NormalizeText(s string) string {
	// cases.Caser stateful olduğundan her çağrıda taze instance
	s = cases.Lower(language.Turkish).String(strings.TrimSpace(s))

	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	// 'ı' decompose edilemez, elle eşle
	s = strings.Map(func(r rune) rune {
		if r == 'ı' {
			return 'i'
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
