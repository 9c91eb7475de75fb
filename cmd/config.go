package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "DOCTRACK"

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel  string
	LogFormat string
	LogOutput string

	StorageEndpoint          string
	StorageRegion            string
	StorageBucket            string
	StorageAccessKey         string
	StorageSecretKey         string
	StorageUsePathStyle      bool
	StoragePresignExpiration time.Duration

	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailFrom     string

	ExtractionWebhookURL      string
	ExtractionSecret          string
	ExtractionCallbackBaseURL string
	ExtractionRequestTimeout  time.Duration

	PDFRemoteURL string
	PDFTimeout   time.Duration
	PDFNoSandbox bool

	JobsStaleExtractionCron string
	JobsReminderCron        string
	JobsExtractionTimeout   time.Duration
	JobsReminderRecipients  []string
}

// LoadConfig reads, from highest to lowest priority, DOCTRACK_* environment
// variables (a .env file is loaded into the environment first when present),
// config.yaml in the working directory and built-in defaults.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort: v.GetString("http.port"),

		DBHost:     v.GetString("db.host"),
		DBPort:     v.GetString("db.port"),
		DBUser:     v.GetString("db.user"),
		DBPassword: v.GetString("db.password"),
		DBName:     v.GetString("db.name"),
		DBSslMode:  v.GetString("db.sslmode"),

		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		LogOutput: v.GetString("log.output"),

		StorageEndpoint:          v.GetString("storage.endpoint"),
		StorageRegion:            v.GetString("storage.region"),
		StorageBucket:            v.GetString("storage.bucket"),
		StorageAccessKey:         v.GetString("storage.access_key"),
		StorageSecretKey:         v.GetString("storage.secret_key"),
		StorageUsePathStyle:      v.GetBool("storage.use_path_style"),
		StoragePresignExpiration: v.GetDuration("storage.presign_expiration"),

		MailHost:     v.GetString("mail.host"),
		MailPort:     v.GetInt("mail.port"),
		MailUser:     v.GetString("mail.user"),
		MailPassword: v.GetString("mail.password"),
		MailFrom:     v.GetString("mail.from"),

		ExtractionWebhookURL:      v.GetString("extraction.webhook_url"),
		ExtractionSecret:          v.GetString("extraction.secret"),
		ExtractionCallbackBaseURL: v.GetString("extraction.callback_base_url"),
		ExtractionRequestTimeout:  v.GetDuration("extraction.timeout"),

		PDFRemoteURL: v.GetString("pdf.remote_url"),
		PDFTimeout:   v.GetDuration("pdf.timeout"),
		PDFNoSandbox: v.GetBool("pdf.no_sandbox"),

		JobsStaleExtractionCron: v.GetString("jobs.stale_extraction_cron"),
		JobsReminderCron:        v.GetString("jobs.reminder_cron"),
		JobsExtractionTimeout:   v.GetDuration("jobs.extraction_timeout"),
		JobsReminderRecipients:  splitList(v.GetString("jobs.reminder_recipients")),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.presign_expiration", 15*time.Minute)
	v.SetDefault("mail.port", 587)
	v.SetDefault("extraction.timeout", 15*time.Second)
	v.SetDefault("pdf.timeout", 30*time.Second)
	v.SetDefault("jobs.stale_extraction_cron", "*/5 * * * *")
	v.SetDefault("jobs.reminder_cron", "0 7 * * 1-5")
	v.SetDefault("jobs.extraction_timeout", 30*time.Minute)
	v.SetDefault("jobs.reminder_recipients", "")
}

// validate checks what the database connection needs; adapter specific
// settings are checked by the adapters themselves.
func (c Config) validate() error {
	var missing []string
	if c.DBUser == "" {
		missing = append(missing, "db.user")
	}
	if c.DBName == "" {
		missing = append(missing, "db.name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// CallbackURL is where the extraction engine posts its results.
func (c Config) CallbackURL() string {
	return strings.TrimRight(c.ExtractionCallbackBaseURL, "/") + "/api/v1/extractions/callback"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
