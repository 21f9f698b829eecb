package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	TelegramBotToken      string
	TelegramChatID        string
	SnapshotRetentionDays int
	AppLocation           *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env dosyası bulunamadı, sistem ENV kullanılıyor")
		} else {
			log.Println("✅ .env dosyası yüklendi")
		}
	} else {
		log.Println("🚀 Railway ortamı, sistem ENV kullanılıyor")
	}

	TelegramBotToken = GetEnv("TELEGRAM_BOT_TOKEN")
	TelegramChatID = GetEnv("TELEGRAM_CHAT_ID")

	if TelegramBotToken == "" {
		log.Println("⚠️ TELEGRAM_BOT_TOKEN ayarlanmamış — rapor gönderimi devre dışı")
	} else {
		log.Println("✅ TELEGRAM_BOT_TOKEN yüklendi")
	}

	// Snapshot saklama süresi (gün). 0 = süresiz sakla.
	SnapshotRetentionDays = 0
	if v := GetEnv("SNAPSHOT_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			SnapshotRetentionDays = n
		} else {
			log.Printf("⚠️ SNAPSHOT_RETENTION_DAYS geçersiz (%q), 0 kabul edildi", v)
		}
	}

	// Okul saat dilimi — tüm takvim aritmetiği bu dilimde yapılır.
	tz := GetEnv("TIMEZONE")
	if tz == "" {
		tz = "Europe/Istanbul"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ TIMEZONE yüklenemedi (%q), UTC kullanılıyor: %v", tz, err)
		loc = time.UTC
	}
	AppLocation = loc
	log.Printf("✅ Saat dilimi: %s", loc)
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
