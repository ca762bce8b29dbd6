package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string        `env:"DATABASE_URL"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeout        time.Duration `env:"HTTP_TIMEOUT" envDefault:"12s"`
	VendorRegistryPath string        `env:"VENDOR_REGISTRY_PATH"`
	RunStaleAfter      time.Duration `env:"RUN_STALE_AFTER" envDefault:"15m"`

	RabbitMQ   RabbitMQ
	Redis      Redis
	Enrichment Enrichment
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL                 string `env:"RABBITMQ_URL"`
	Exchange            string `env:"RABBITMQ_EXCHANGE" envDefault:"fop-ex"`
	Queue               string `env:"RABBITMQ_QUEUE" envDefault:"frame-order-parser.emails"`
	EmailRoutingKey     string `env:"RABBITMQ_EMAIL_ROUTING_KEY" envDefault:"emails.inbound"`
	InventoryQueue      string `env:"RABBITMQ_INVENTORY_QUEUE" envDefault:"frame-order-parser.inventory"`
	InventoryRoutingKey string `env:"RABBITMQ_INVENTORY_ROUTING_KEY" envDefault:"inventory.commands"`
	ParsedRoutingKey    string `env:"RABBITMQ_PARSED_ROUTING_KEY" envDefault:"orders.parsed"`
	ReviewRoutingKey    string `env:"RABBITMQ_REVIEW_ROUTING_KEY" envDefault:"orders.review"`
}

// Redis holds inbound message dedupe configuration. Dedupe is off without address.
type Redis struct {
	Addr      string        `env:"REDIS_ADDR"`
	DedupeTTL time.Duration `env:"DEDUPE_TTL" envDefault:"72h"`
}

// Enrichment holds enrichment configuration.
type Enrichment struct {
	BatchSize     int               `env:"ENRICHMENT_BATCH_SIZE" envDefault:"5"`
	BatchPause    time.Duration     `env:"ENRICHMENT_BATCH_PAUSE" envDefault:"500ms"`
	ItemTimeout   time.Duration     `env:"ENRICHMENT_ITEM_TIMEOUT" envDefault:"12s"`
	MinConfidence int               `env:"ENRICHMENT_MIN_CONFIDENCE" envDefault:"50"`
	RateLimit     float64           `env:"ENRICHMENT_RATE_LIMIT" envDefault:"2"`
	RetryMax      int               `env:"ENRICHMENT_RETRY_MAX" envDefault:"2"`
	APIKeys       map[string]string `env:"VENDOR_API_KEYS"`
}
