package storefront

import (
	"time"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/integration/database/redis"
)

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config is loaded from the environment with core/config.
type Config struct {
	API   apiclient.Config
	Redis redis.Config

	AppName   string `env:"STOREFRONT_APP_NAME" envDefault:"movistore"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Language  string `env:"STOREFRONT_LANGUAGE" envDefault:"es"`

	// DeviceID scopes every persisted key. When empty a random id is
	// generated once and kept in the store.
	DeviceID   string `env:"STOREFRONT_DEVICE_ID"`
	Storage    string `env:"STOREFRONT_STORAGE" envDefault:"memory"`
	SQLitePath string `env:"STOREFRONT_SQLITE_PATH" envDefault:"storefront.db"`

	NotificationTTL   time.Duration `env:"STOREFRONT_NOTIFICATION_TTL" envDefault:"3s"`
	SearchDebounce    time.Duration `env:"STOREFRONT_SEARCH_DEBOUNCE" envDefault:"300ms"`
	PurgeCartOnLogout bool          `env:"STOREFRONT_PURGE_CART_ON_LOGOUT" envDefault:"false"`
}
