package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/and161185/clubhouse/internal/receipt"
	"gopkg.in/yaml.v3"
)

const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

type Config struct {
	RunAddress  string `yaml:"run_address"`
	DatabaseURI string `yaml:"database_uri"`
	Key         string `yaml:"key"`
	Backend     string `yaml:"backend"`
	LogFile     string `yaml:"log_file"`
	PublicURL   string `yaml:"public_url"`

	FirestoreProject     string `yaml:"firestore_project"`
	FirestoreCredentials string `yaml:"firestore_credentials"`

	// AdminEmails are always treated as full administrators.
	AdminEmails []string `yaml:"admin_emails"`

	SendGridAPIKey  string `yaml:"sendgrid_api_key"`
	MailFrom        string `yaml:"mail_from"`
	MailFromName    string `yaml:"mail_from_name"`
	NotifyWorkers   int    `yaml:"notify_workers"`
	NotifyQueueSize int    `yaml:"notify_queue_size"`

	Club receipt.Club `yaml:"club"`
}

func Default() *Config {
	return &Config{
		RunAddress:      "localhost:8080",
		Backend:         BackendPostgres,
		LogFile:         "server.log",
		PublicURL:       "http://localhost:8080",
		MailFromName:    "Club Treasury",
		NotifyWorkers:   2,
		NotifyQueueSize: 100,
		Club: receipt.Club{
			Name: "AKACHAI FC",
		},
	}
}

// NewConfig resolves configuration in order: defaults, YAML file, command line flags, environment.
func NewConfig(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("clubhouse", flag.ContinueOnError)
	configFile := fs.String("c", "", "YAML config file")
	runAddress := fs.String("a", cfg.RunAddress, "HTTP server address")
	databaseURI := fs.String("d", "", "DB connection string")
	key := fs.String("k", "", "token signing key")
	backend := fs.String("b", cfg.Backend, "storage backend: postgres or firestore")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		if err := LoadFile(*configFile, cfg); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.RunAddress = *runAddress
		case "d":
			cfg.DatabaseURI = *databaseURI
		case "k":
			cfg.Key = *key
		case "b":
			cfg.Backend = *backend
		}
	})

	if err := ReadServerEnvironment(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func ReadServerEnvironment(cfg *Config) error {
	if runAddress := os.Getenv("RUN_ADDRESS"); runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if databaseURI := os.Getenv("DATABASE_URI"); databaseURI != "" {
		cfg.DatabaseURI = databaseURI
	}

	if key := os.Getenv("CLUB_KEY"); key != "" {
		cfg.Key = key
	}

	if backend := os.Getenv("CLUB_BACKEND"); backend != "" {
		cfg.Backend = backend
	}

	if project := os.Getenv("FIRESTORE_PROJECT"); project != "" {
		cfg.FirestoreProject = project
	}

	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); creds != "" {
		cfg.FirestoreCredentials = creds
	}

	if admins := os.Getenv("ADMIN_EMAILS"); admins != "" {
		cfg.AdminEmails = splitList(admins)
	}

	if apiKey := os.Getenv("SENDGRID_API_KEY"); apiKey != "" {
		cfg.SendGridAPIKey = apiKey
	}

	if from := os.Getenv("MAIL_FROM"); from != "" {
		cfg.MailFrom = from
	}

	if fromName := os.Getenv("MAIL_FROM_NAME"); fromName != "" {
		cfg.MailFromName = fromName
	}

	if workers := os.Getenv("NOTIFY_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("NOTIFY_WORKERS must be an integer, got %q", workers)
		}
		cfg.NotifyWorkers = n
	}

	if size := os.Getenv("NOTIFY_QUEUE_SIZE"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return fmt.Errorf("NOTIFY_QUEUE_SIZE must be an integer, got %q", size)
		}
		cfg.NotifyQueueSize = n
	}

	if publicURL := os.Getenv("PUBLIC_URL"); publicURL != "" {
		cfg.PublicURL = publicURL
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendPostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("database URI is required for the postgres backend")
		}
	case BackendFirestore:
		if c.FirestoreProject == "" {
			return fmt.Errorf("firestore project is required for the firestore backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if c.Key == "" {
		return fmt.Errorf("signing key is required")
	}
	if c.NotifyWorkers < 1 {
		return fmt.Errorf("notify workers must be at least 1, got %d", c.NotifyWorkers)
	}
	if c.NotifyQueueSize < 1 {
		return fmt.Errorf("notify queue size must be at least 1, got %d", c.NotifyQueueSize)
	}
	if c.SendGridAPIKey != "" && c.MailFrom == "" {
		return fmt.Errorf("mail sender address is required when SendGrid is enabled")
	}
	return nil
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
