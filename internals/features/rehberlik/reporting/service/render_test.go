package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	referrals := &fakeSource{kind: KindReferral, events: []Event{
		referralAt("Ali Kaya", "Devamsızlık", april(3, 9)),
		referralAt("Ayşe Demir", "Devamsızlık", april(4, 9)),
		referralAt("Ali Kaya", "Ders Başarısızlığı", april(5, 11)),
	}}
	rep, err := NewBuilder(referrals).Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return rep
}

func TestPercent(t *testing.T) {
	if pct, ok := Percent(2, 3); !ok || pct != 66.7 {
		t.Errorf("Percent(2,3) = %v,%v, beklenen 66.7,true", pct, ok)
	}
	if pct, ok := Percent(3, 3); !ok || pct != 100 {
		t.Errorf("Percent(3,3) = %v,%v", pct, ok)
	}
	// Sıfıra bölme kısa devresi: yüzde hiç gösterilmez
	if _, ok := Percent(0, 0); ok {
		t.Error("Percent(_,0) false dönmeli")
	}
}

func TestRenderNarrativeTopReason(t *testing.T) {
	out := RenderNarrative(sampleReport(t))

	if !strings.Contains(out, "🗓 Dönem: Bu Ay") {
		t.Error("dönem etiketi yok")
	}
	if !strings.Contains(out, "Toplam Kayıt: *3*") {
		t.Errorf("toplam satırı hatalı:\n%s", out)
	}
	if !strings.Contains(out, "En Sık Neden: *Devamsızlık* (2, %66.7)") {
		t.Errorf("en sık neden satırı hatalı:\n%s", out)
	}
	// Kayıtlar en yeniden eskiye numaralanır
	if !strings.Contains(out, "1) 05.04.2025") {
		t.Errorf("ilk kayıt en yeni olmalı:\n%s", out)
	}
	if strings.Contains(out, noRecordsLine) {
		t.Error("kayıt varken boş-dönem satırı yazılmamalı")
	}
}

func TestRenderNarrativeEmptyWindow(t *testing.T) {
	rep, err := NewBuilder(&fakeSource{kind: KindReferral}).
		Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out := RenderNarrative(rep)
	if !strings.Contains(out, "_"+noRecordsLine+"_") {
		t.Errorf("boş pencerede sabit satır beklenirdi:\n%s", out)
	}
	if !strings.Contains(out, "Toplam Kayıt: *0*") {
		t.Error("sıfır toplam yine de yazılmalı")
	}
	if strings.Contains(out, "En Sık Neden") {
		t.Error("boş raporda en sık neden satırı olmamalı")
	}
}

func TestRenderNarrativeFailedSources(t *testing.T) {
	rep := sampleReport(t)
	rep.FailedSources = []EventKind{KindDiscipline}
	out := RenderNarrative(rep)
	if !strings.Contains(out, "⚠️ Veri alınamayan kaynaklar: Disiplin") {
		t.Errorf("düşen kaynak uyarısı yok:\n%s", out)
	}
}

// CSV'de sütun sayısı satırlar arasında sabit kalır; boş not "–" olur.
func TestRenderCSVFixedColumns(t *testing.T) {
	rep := sampleReport(t)
	out, err := RenderCSV(rep)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("csv parse: %v", err)
	}

	var dataRows [][]string
	inData := false
	for _, row := range rows {
		if len(row) == 6 && row[0] == "#" {
			inData = true
			continue
		}
		if inData {
			dataRows = append(dataRows, row)
		}
	}
	if len(dataRows) != 3 {
		t.Fatalf("veri satırı %d, beklenen 3", len(dataRows))
	}
	for i, row := range dataRows {
		if len(row) != 6 {
			t.Errorf("satır %d sütun sayısı %d, beklenen 6", i, len(row))
		}
		if row[5] != emptyCell {
			t.Errorf("boş not hücresi %q olmalı, %q", emptyCell, row[5])
		}
	}
}

func TestRenderPrintHTMLEscapes(t *testing.T) {
	rep := sampleReport(t)
	rep.Records[0].Note = `<script>alert("x")</script>`
	out := RenderPrintHTML(rep)
	if strings.Contains(out, "<script>alert") {
		t.Error("not alanı escape edilmemiş")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("escape edilmiş içerik bulunamadı")
	}
	if !strings.Contains(out, "<h1>Rehberlik Raporu</h1>") {
		t.Error("başlık yok")
	}
}

func TestFormatDateInvalid(t *testing.T) {
	rec := ReportRecord{Date: time.Time{}, DateValid: false}
	if got := formatDate(rec); got != emptyCell {
		t.Errorf("bozuk tarih %q olmalı, %q", emptyCell, got)
	}
}
