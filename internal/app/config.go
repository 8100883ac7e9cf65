package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
	Store   StoreConfig   `mapstructure:"store"`
	Seed    SeedConfig    `mapstructure:"seed"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (h HTTPConfig) Addr() string { return fmt.Sprintf("%s:%d", h.Host, h.Port) }

type LoggingConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type SeedConfig struct {
	DataDir          string `mapstructure:"data_dir"`
	CollegesFile     string `mapstructure:"colleges_file"`
	ScholarshipsFile string `mapstructure:"scholarships_file"`
	CoursesFile      string `mapstructure:"courses_file"`
	DeadlineYear     int    `mapstructure:"deadline_year"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Exporter    string  `mapstructure:"exporter"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type LoadOptions struct {
	// ConfigPaths are searched for config.yaml; defaults to ./configs and ".".
	ConfigPaths []string
	// EnvFiles are loaded with godotenv before reading; missing files are skipped.
	EnvFiles []string
}

// LoadConfig reads config.yaml, merges config.<APP_ENVIRONMENT>.yaml when
// present, then applies environment overrides, defaults and validation.
func LoadConfig(opts LoadOptions) (Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", f, err)
			}
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	paths := opts.ConfigPaths
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENVIRONMENT"))
	if env == "" {
		env = v.GetString("app.environment")
	}
	if env != "" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("merge config.%s: %w", env, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if env != "" {
		cfg.App.Environment = env
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// bindEnv maps the short variable names operators already use.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("http.port", "HTTP_PORT", "PORT")
	_ = v.BindEnv("logging.mode", "LOG_MODE")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("store.driver", "STORE_DRIVER")
	_ = v.BindEnv("store.dsn", "STORE_DSN")
	_ = v.BindEnv("seed.data_dir", "SEED_DATA_DIR")
	_ = v.BindEnv("metrics.enabled", "METRICS_ENABLED")
	_ = v.BindEnv("tracing.enabled", "OTEL_ENABLED")
	_ = v.BindEnv("tracing.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "careerpath"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 5000
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Logging.Mode == "" {
		cfg.Logging.Mode = "development"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreMemory
	}
	if cfg.Seed.DataDir == "" {
		cfg.Seed.DataDir = "data"
	}
	if cfg.Seed.CollegesFile == "" {
		cfg.Seed.CollegesFile = "colleges_dataset.csv"
	}
	if cfg.Seed.ScholarshipsFile == "" {
		cfg.Seed.ScholarshipsFile = "scholarships_dataset.csv"
	}
	if cfg.Seed.CoursesFile == "" {
		cfg.Seed.CoursesFile = "courses_dataset.csv"
	}
	if cfg.Seed.DeadlineYear == 0 {
		cfg.Seed.DeadlineYear = 2024
	}
	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = "stdout"
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = 0.1
	}
}

func validateConfig(cfg *Config) error {
	var errs []error
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d out of range", cfg.HTTP.Port))
	}
	switch cfg.Store.Driver {
	case StoreMemory, StoreSQLite:
	default:
		errs = append(errs, fmt.Errorf("store.driver %q must be %q or %q", cfg.Store.Driver, StoreMemory, StoreSQLite))
	}
	if cfg.Seed.DeadlineYear < 1900 || cfg.Seed.DeadlineYear > 9999 {
		errs = append(errs, fmt.Errorf("seed.deadline_year %d out of range", cfg.Seed.DeadlineYear))
	}
	switch strings.ToLower(cfg.Tracing.Exporter) {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("tracing.exporter %q must be stdout or otlp", cfg.Tracing.Exporter))
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio %v must be within [0,1]", cfg.Tracing.SampleRatio))
	}
	return errors.Join(errs...)
}
