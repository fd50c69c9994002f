// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port         string        `mapstructure:"port"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
	} `mapstructure:"server"`
	Backend struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`
	Auth struct {
		Enabled   bool   `mapstructure:"enabled"`
		JWTSecret string `mapstructure:"jwt_secret"`
		Audience  string `mapstructure:"audience"`
	} `mapstructure:"auth"`
	Locale struct {
		StudentDefault string `mapstructure:"student_default"`
	} `mapstructure:"locale"`
	Exercise struct {
		PairCooldown         time.Duration `mapstructure:"pair_cooldown"`
		PairCompletionPolicy string        `mapstructure:"pair_completion_policy"`
	} `mapstructure:"exercise"`
	Notices struct {
		Sink     string `mapstructure:"sink"`
		Capacity int    `mapstructure:"capacity"`
	} `mapstructure:"notices"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env は任意。無ければ環境変数だけを使う
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_SERVER_PORT
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("auth.jwt_secret", "SUPABASE_JWT_SECRET")
	v.BindEnv("backend.base_url", "TUTOR_API_BASE_URL")
	v.BindEnv("log.level", "LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyDefaults(&cfg, v.IsSet("auth.enabled"))
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Tutor API: %s", Cfg.Backend.BaseURL)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Pair completion policy: %s", Cfg.Exercise.PairCompletionPolicy)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れます
func applyDefaults(cfg *Config, authSet bool) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Backend.BaseURL == "" {
		log.Printf("Tutor API base URL not set, using default '%s'", DefaultBackendBaseURL)
		cfg.Backend.BaseURL = DefaultBackendBaseURL
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = DefaultBackendTimeout
	}

	// 未設定なら認証は有効
	if !authSet {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	if cfg.Auth.Audience == "" {
		cfg.Auth.Audience = DefaultAuthAudience
	}
	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		log.Println("Warning: Auth is enabled but no JWT secret is configured. Every request will be rejected.")
	}

	if cfg.Locale.StudentDefault == "" {
		cfg.Locale.StudentDefault = DefaultStudentLocale
	}
	if cfg.Exercise.PairCooldown <= 0 {
		cfg.Exercise.PairCooldown = DefaultPairCooldown
	}
	if cfg.Exercise.PairCompletionPolicy == "" {
		cfg.Exercise.PairCompletionPolicy = DefaultPairCompletionPolicy
	}
	if cfg.Notices.Sink == "" {
		cfg.Notices.Sink = DefaultNoticeSink
	}
	if cfg.Notices.Capacity <= 0 {
		cfg.Notices.Capacity = DefaultNoticeCapacity
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
