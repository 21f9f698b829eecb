package service

import (
	"encoding/csv"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

/* =========================================================
 * REPORT RENDERER — tek Report değerinden üç çıktı biçimi.
 * Yapısal (JSON) çıktı Report'un kendisidir; burada anlatı metni
 * (Telegram) ve tablo/yazdırma biçimleri üretilir. Ayrı kod yolu
 * yok: hepsi aynı Report'tan türetilir.
 * ========================================================= */

// Anlatıda ve tabloda boş not hücresi için sabit işaret.
// Hücre atlanmaz ki sütun sayısı satırlar arasında sabit kalsın.
const emptyCell = "–"

const noRecordsLine = "Bu dönemde kayıt bulunmuyor."

// Percent: count/total*100, 1 ondalık yuvarlanmış.
// total == 0 → (0, false): yüzde hiç gösterilmez, sıfıra bölme olmaz.
func Percent(count, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return math.Round(float64(count)/float64(total)*1000) / 10, true
}

func formatDate(r ReportRecord) string {
	if !r.DateValid {
		return emptyCell
	}
	return r.Date.Format("02.01.2006")
}

func kindLabel(k EventKind) string {
	switch k {
	case KindReferral:
		return "Yönlendirme"
	case KindDiscipline:
		return "Disiplin"
	case KindRAMReferral:
		return "RAM Sevk"
	case KindRiskFlag:
		return "Risk"
	case KindClassActivity:
		return "Etkinlik"
	case KindParentContact:
		return "Veli Görüşmesi"
	default:
		return string(k)
	}
}

/* =========================================================
 * ANLATI METNİ (Telegram Markdown)
 * ========================================================= */

// RenderNarrative sabit şablon üretir: başlık, kimlik satırları,
// toplamlar, varsa "en sık neden", sonra her kayıt için en yeniden
// eskiye numaralı satır, en altta üretim zamanı.
func RenderNarrative(r *Report) string {
	var b strings.Builder

	b.WriteString("📊 *Rehberlik Raporu*\n")
	b.WriteString("🗓 Dönem: " + r.Window.Label + "\n")
	if r.StudentName != "" {
		b.WriteString("👤 Öğrenci: " + r.StudentName + "\n")
	}
	if r.ClassLabel != "" {
		b.WriteString("🏫 Sınıf: " + r.ClassLabel + "\n")
	}

	b.WriteString(fmt.Sprintf("📌 Toplam Kayıt: *%d*\n", r.RecordCount))
	b.WriteString(fmt.Sprintf(
		"Yönlendirme: %d | Disiplin: %d | RAM: %d | Risk: %d | Etkinlik: %d | Veli: %d\n",
		r.ReferralsByReason.Total, r.DisciplineByType.Total, r.RAM.Total,
		r.RiskBySeverity.Total, r.ActivitiesByType.Total, r.ContactsByType.Total,
	))
	b.WriteString(fmt.Sprintf("👥 Görülen Öğrenci: %d\n", r.DistinctStudents))

	if top := r.ReferralsByReason.Top; top != nil {
		line := fmt.Sprintf("🔝 En Sık Neden: *%s* (%d", top.Name, top.Count)
		if pct, ok := Percent(top.Count, r.ReferralsByReason.Total); ok {
			line += fmt.Sprintf(", %%%s", trimFloat(pct))
		}
		b.WriteString(line + ")\n")
	}

	if len(r.FailedSources) > 0 {
		names := make([]string, 0, len(r.FailedSources))
		for _, k := range r.FailedSources {
			names = append(names, kindLabel(k))
		}
		b.WriteString("⚠️ Veri alınamayan kaynaklar: " + strings.Join(names, ", ") + "\n")
	}

	b.WriteString("\n*Kayıtlar:*\n")
	if len(r.Records) == 0 {
		b.WriteString("_" + noRecordsLine + "_\n")
	} else {
		for i, rec := range r.Records {
			line := fmt.Sprintf("%d) %s — %s", i+1, formatDate(rec), kindLabel(rec.Kind))
			if rec.Student != "" {
				line += " — " + rec.Student
			}
			if rec.Actor != "" {
				line += " — " + rec.Actor
			}
			line += " — " + rec.Category
			if rec.Note != "" {
				line += " — " + rec.Note
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n🕒 Oluşturulma: " + r.GeneratedAt.Format("02.01.2006 15:04") + "\n")
	return b.String()
}

// trimFloat: 66.0 → "66", 66.7 → "66.7"
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

/* =========================================================
 * TABLO / EXPORT
 * ========================================================= */

// RenderCSV: üstte etiket/değer başlık bloğu, boş satır, sonra sabit
// sütun düzeninde kayıt satırları (#, Tarih, Tür, Kategori, İlgili, Not).
func RenderCSV(r *Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := [][]string{
		{"Rapor", "Rehberlik Raporu"},
		{"Dönem", r.Window.Label},
	}
	if r.StudentName != "" {
		header = append(header, []string{"Öğrenci", r.StudentName})
	}
	if r.ClassLabel != "" {
		header = append(header, []string{"Sınıf", r.ClassLabel})
	}
	header = append(header,
		[]string{"Toplam Kayıt", strconv.Itoa(r.RecordCount)},
		[]string{"Oluşturulma", r.GeneratedAt.Format("02.01.2006 15:04")},
	)
	if err := w.WriteAll(header); err != nil {
		return "", err
	}
	if err := w.Write([]string{}); err != nil {
		return "", err
	}

	if err := w.Write([]string{"#", "Tarih", "Tür", "Kategori", "İlgili", "Not"}); err != nil {
		return "", err
	}
	for i, rec := range r.Records {
		row := []string{
			strconv.Itoa(i + 1),
			formatDate(rec),
			kindLabel(rec.Kind),
			rec.Category,
			orCell(firstNonEmpty(rec.Student, rec.Actor)),
			orCell(rec.Note),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return sb.String(), w.Error()
}

// RenderPrintHTML yazdırma görünümü üretir (dönem raporu çıktısı).
func RenderPrintHTML(r *Report) string {
	esc := html.EscapeString
	var b strings.Builder

	b.WriteString("<!DOCTYPE html><html lang=\"tr\"><head><meta charset=\"utf-8\">")
	b.WriteString("<title>Rehberlik Raporu</title>")
	b.WriteString("<style>body{font-family:sans-serif;margin:24px}table{border-collapse:collapse;width:100%}th,td{border:1px solid #999;padding:6px 10px;text-align:left}th{background:#eee}@media print{button{display:none}}</style>")
	b.WriteString("</head><body>")
	b.WriteString("<h1>Rehberlik Raporu</h1>")

	b.WriteString("<table><tbody>")
	writeKV := func(k, v string) {
		b.WriteString("<tr><th>" + esc(k) + "</th><td>" + esc(v) + "</td></tr>")
	}
	writeKV("Dönem", r.Window.Label)
	if r.StudentName != "" {
		writeKV("Öğrenci", r.StudentName)
	}
	if r.ClassLabel != "" {
		writeKV("Sınıf", r.ClassLabel)
	}
	writeKV("Toplam Kayıt", strconv.Itoa(r.RecordCount))
	writeKV("Görülen Öğrenci", strconv.Itoa(r.DistinctStudents))
	writeKV("Oluşturulma", r.GeneratedAt.Format("02.01.2006 15:04"))
	b.WriteString("</tbody></table>")

	b.WriteString("<h2>Kayıtlar</h2>")
	if len(r.Records) == 0 {
		b.WriteString("<p>" + esc(noRecordsLine) + "</p>")
	} else {
		b.WriteString("<table><thead><tr><th>#</th><th>Tarih</th><th>Tür</th><th>Kategori</th><th>İlgili</th><th>Not</th></tr></thead><tbody>")
		for i, rec := range r.Records {
			b.WriteString("<tr>")
			b.WriteString("<td>" + strconv.Itoa(i+1) + "</td>")
			b.WriteString("<td>" + esc(formatDate(rec)) + "</td>")
			b.WriteString("<td>" + esc(kindLabel(rec.Kind)) + "</td>")
			b.WriteString("<td>" + esc(rec.Category) + "</td>")
			b.WriteString("<td>" + esc(orCell(firstNonEmpty(rec.Student, rec.Actor))) + "</td>")
			b.WriteString("<td>" + esc(orCell(rec.Note)) + "</td>")
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	}

	b.WriteString("</body></html>")
	return b.String()
}

func orCell(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
