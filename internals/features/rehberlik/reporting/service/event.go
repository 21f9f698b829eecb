package service

import (
	"strings"
	"time"

	helper "rehberlik_backend/internals/helpers"
)

/* =========================================================
 * EVENT — motorun işlediği birim kayıt
 * ========================================================= */

type EventKind string

const (
	KindReferral      EventKind = "referral"
	KindDiscipline    EventKind = "discipline"
	KindRAMReferral   EventKind = "ram_referral"
	KindRiskFlag      EventKind = "risk_flag"
	KindClassActivity EventKind = "class_activity"
	KindParentContact EventKind = "parent_contact"
)

// Kategori sentinel'leri — boş kategori asla kayıt düşürmez,
// bu kovalara toplanır.
const (
	CategoryUnspecified = "Belirtilmemiş"
	CategoryOther       = "diger"
)

// Event: kaynak tablodan normalize edilmiş tek kayıt.
// StudentKey/ClassKey gruplama ve join anahtarıdır (NormalizeText çıktısı);
// ham görüntü metinleri ayrıca taşınır.
type Event struct {
	Kind        EventKind
	StudentName string
	StudentKey  string
	ClassLabel  string
	ClassKey    string
	Category    string // reason / tür; sentinel'e düşmüş hali
	TeacherName string
	Status      string
	Note        string

	// OccurredAt olayın esas zamanı (yönlendirme/disiplin = oluşturulma,
	// etkinlik/veli görüşmesi = açık tarih alanı).
	// TimeValid=false → zaman damgası çözülemedi; pencereli görünümlerden
	// düşer ama aggregation'ı asla kırmaz (fail-open).
	OccurredAt time.Time
	TimeValid  bool
}

// NewEvent anahtarları üretir ve kategoriyi sentinel'e bağlar.
func NewEvent(kind EventKind, studentName, classLabel, rawCategory string, occurredAt time.Time) Event {
	return Event{
		Kind:        kind,
		StudentName: strings.TrimSpace(studentName),
		StudentKey:  helper.NormalizeText(studentName),
		ClassLabel:  strings.TrimSpace(classLabel),
		ClassKey:    helper.NormalizeText(classLabel),
		Category:    ResolveCategory(kind, rawCategory),
		OccurredAt:  occurredAt,
		TimeValid:   !occurredAt.IsZero(),
	}
}

// ResolveCategory raw.trim() ya da tür bazlı sentinel döner.
// Pure & total: hiçbir girdi için hata üretmez.
func ResolveCategory(kind EventKind, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		return raw
	}
	switch kind {
	case KindClassActivity, KindParentContact:
		return CategoryOther
	default:
		return CategoryUnspecified
	}
}

/* =========================================================
 * DURUM ENUM'LARI — tür başına kapalı küme
 * Serbest metin durumlar burada kovalara indirgenir; tanınmayan
 * değerler sessizce yanlış sayılmak yerine fallback kovaya düşer.
 * ========================================================= */

// RAM sevk kovaları
type RAMBucket string

const (
	RAMCompleted RAMBucket = "sonuclandi"
	RAMCancelled RAMBucket = "iptal"
	RAMPending   RAMBucket = "beklemede"
)

// RAMBucketOf: "sonuclandi" = tamamlandı, "iptal" hariç geri kalan
// her şey (bilinmeyenler dahil) beklemede sayılır.
func RAMBucketOf(status string) RAMBucket {
	switch helper.NormalizeText(status) {
	case "sonuclandi":
		return RAMCompleted
	case "iptal":
		return RAMCancelled
	default:
		return RAMPending
	}
}

// IsActiveRiskStatus yalnızca risk kayıtları için anlamlıdır;
// türler arası durum yorumu yapılmaz.
func IsActiveRiskStatus(status string) bool {
	switch helper.NormalizeText(status) {
	case "active", "aktif":
		return true
	default:
		// bilinmeyen durum = aktif değil; rapora sessizce karışmaz
		return false
	}
}
