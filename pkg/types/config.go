package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Pool size, 0 keeps the pgxpool default
	DatabaseMaxConns int32 `envconfig:"DATABASE_MAX_CONNS"`

	// Language used when the request carries none we have a catalog for
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`

	// Flash cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	FlashCookieName string `envconfig:"FLASH_COOKIE_NAME" default:"flash"`
	CookieHashKey   string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey  string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Archive export
	ExportBucket string `envconfig:"EXPORT_BUCKET"`
	ExportPrefix string `envconfig:"EXPORT_PREFIX" default:"volunteering"`
}
