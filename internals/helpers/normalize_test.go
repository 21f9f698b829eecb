package helper

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mehmet ÖZTÜRK", "mehmet ozturk"},
		{" mehmet  oztürk ", "mehmet ozturk"},
		{"İSTANBUL", "istanbul"},
		{"ILGAZ", "ilgaz"}, // Türkçe: I → ı → i
		{"Işıl", "isil"},
		{"Devamsızlık", "devamsizlik"},
		{"Çağrı ŞĞÜİÖ", "cagri sguio"},
		{"", ""},
		{"   ", ""},
		{"5. Sınıf / A Şubesi", "5. sinif / a subesi"},
	}
	for _, tc := range cases {
		if got := NormalizeText(tc.in); got != tc.want {
			t.Errorf("NormalizeText(%q) = %q, beklenen %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{"Mehmet ÖZTÜRK", "Işıl ÇELİK", "a  b   c", "İİİ ııı", "Ders Başarısızlığı"}
	for _, s := range inputs {
		once := NormalizeText(s)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("idempotent değil: %q → %q → %q", s, once, twice)
		}
	}
}
