package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// validIdentifier validates SQL identifiers (table names) before they reach a query
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type Config struct {
	Database Database `json:"database" mapstructure:"database" yaml:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed" yaml:"seed"`
	Tables   Tables   `json:"tables" mapstructure:"tables" yaml:"tables"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider" yaml:"provider"`
	Host     string `json:"host" mapstructure:"host" yaml:"host"`
	Port     int    `json:"port" mapstructure:"port" yaml:"port"`
	User     string `json:"user" mapstructure:"user" yaml:"user"`
	Password string `json:"password" mapstructure:"password" yaml:"password,omitempty"`
	Name     string `json:"name" mapstructure:"name" yaml:"name"`
	SSLMode  string `json:"sslmode" mapstructure:"sslmode" yaml:"sslmode,omitempty"`
	URLEnv   string `json:"url_env" mapstructure:"url_env" yaml:"url_env"`
}

type Seed struct {
	RecordCount int   `json:"record_count" mapstructure:"record_count" yaml:"record_count"`
	BatchSize   int   `json:"batch_size" mapstructure:"batch_size" yaml:"batch_size"`
	RandSeed    int64 `json:"rand_seed" mapstructure:"rand_seed" yaml:"rand_seed,omitempty"` // 0 = seeded from the clock
	Truncate    bool  `json:"truncate" mapstructure:"truncate" yaml:"truncate,omitempty"`
}

type Tables struct {
	Products string `json:"products" mapstructure:"products" yaml:"products"`
	Images   string `json:"images" mapstructure:"images" yaml:"images"`
	Variants string `json:"variants" mapstructure:"variants" yaml:"variants"`
}

// EnvPrefix namespaces environment overrides, e.g. CLOTHSEED_TABLES_PRODUCTS.
const EnvPrefix = "CLOTHSEED"

var supportedProviders = []string{"mysql", "postgresql", "postgres", "sqlite", "sqlite3"}

// Default returns the configuration used when nothing else is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// BindEnv makes every config key readable from CLOTHSEED_* variables.
// AutomaticEnv alone only covers keys viper already knows from a file or flag.
func BindEnv() error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for _, key := range Keys() {
		if err := viper.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// Keys lists the dotted viper key of every leaf field of Config.
func Keys() []string {
	return collectKeys(reflect.TypeOf(Config{}), "")
}

func collectKeys(t reflect.Type, prefix string) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" || name == "-" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			keys = append(keys, collectKeys(field.Type, name)...)
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Provider == "" {
		c.Database.Provider = "mysql"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = c.defaultPort()
	}
	if c.Database.Name == "" {
		c.Database.Name = "Clothing_Store_DB"
		if c.IsSQLite() {
			c.Database.Name = "clothing_store.sqlite"
		}
	}
	if c.Database.SSLMode == "" && c.IsPostgres() {
		c.Database.SSLMode = "disable"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Seed.RecordCount == 0 {
		c.Seed.RecordCount = 100
	}
	if c.Seed.BatchSize == 0 {
		c.Seed.BatchSize = 100
	}
	if c.Tables.Products == "" {
		c.Tables.Products = "Products"
	}
	if c.Tables.Images == "" {
		c.Tables.Images = "Product_Images"
	}
	if c.Tables.Variants == "" {
		c.Tables.Variants = "Product_Variants"
	}
}

func (c *Config) defaultPort() int {
	switch c.Database.Provider {
	case "postgresql", "postgres":
		return 5432
	case "sqlite", "sqlite3":
		return 0
	default:
		return 3306
	}
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Seed.RecordCount < 1 {
		return fmt.Errorf("record_count must be at least 1, got %d", c.Seed.RecordCount)
	}
	if c.Seed.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1, got %d", c.Seed.BatchSize)
	}

	for _, name := range []string{c.Tables.Products, c.Tables.Images, c.Tables.Variants} {
		if !validIdentifier.MatchString(name) {
			return fmt.Errorf("invalid table name: %q", name)
		}
	}

	if c.Database.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	return nil
}

func (c *Config) IsPostgres() bool {
	return c.Database.Provider == "postgresql" || c.Database.Provider == "postgres"
}

func (c *Config) IsSQLite() bool {
	return c.Database.Provider == "sqlite" || c.Database.Provider == "sqlite3"
}

// DSN returns the driver connection string. A URL found in the environment
// variable named by Database.URLEnv takes precedence over the discrete fields.
func (c *Config) DSN() string {
	if dbURL, ok := c.EnvURL(); ok {
		return dbURL
	}
	return c.DiscreteDSN()
}

// EnvURL returns the connection URL from the variable named by Database.URLEnv.
func (c *Config) EnvURL() (string, bool) {
	if c.Database.URLEnv == "" {
		return "", false
	}
	dbURL := os.Getenv(c.Database.URLEnv)
	return dbURL, dbURL != ""
}

// DiscreteDSN builds the connection string from the database fields alone.
func (c *Config) DiscreteDSN() string {
	switch {
	case c.IsPostgres():
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.Database.User, c.Database.Password),
			Host:   net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
			Path:   "/" + c.Database.Name,
		}
		q := u.Query()
		q.Set("sslmode", c.Database.SSLMode)
		u.RawQuery = q.Encode()
		return u.String()
	case c.IsSQLite():
		return c.Database.Name
	default:
		mc := mysql.NewConfig()
		mc.User = c.Database.User
		mc.Passwd = c.Database.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
		mc.DBName = c.Database.Name
		mc.ParseTime = true
		mc.Timeout = 10 * time.Second
		return mc.FormatDSN()
	}
}
