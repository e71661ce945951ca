package config

import (
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // 接続文字列（あれば個別項目より優先）
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	UploadDir      string        // アップロード先（/uploads で静的配信する）
	FrontendOrigin string        // CORSで許可するフロントURL
	CookieSecure   bool          // セッションCookieのSecure属性
	SessionTTL     time.Duration // サーバー側セッションの有効期限
}

// Loadは環境変数から設定を読む。未設定はローカル開発向けのデフォルト。
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "storefront"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		FrontendOrigin: getenv("FE_URL", "http://localhost:5173"),
		CookieSecure:   getenvBool("COOKIE_SECURE", false),
		SessionTTL:     time.Duration(getenvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
