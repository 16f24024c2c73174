package configuration

import (
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"

	"github.com/Sakib928/synaps-server/internal/logger"
)

type Config struct {
	ServerAddress   string
	DatabaseURI     string
	AuthSecretKey   jwk.Key
	StripeSecretKey string
	AllowedOrigins  []string
	LogLevel        logger.Level
	LogToFile       bool
}

type tomlConfig struct {
	ServerAddress   string   `toml:"server_address"`
	DatabaseURI     string   `toml:"database_uri"`
	DBUser          string   `toml:"db_user"`
	DBPass          string   `toml:"db_pass"`
	DBCluster       string   `toml:"db_cluster"`
	AuthSecretKey   string   `toml:"auth_secret_key"`
	StripeSecretKey string   `toml:"stripe_secret_key"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	LogLevel        string   `toml:"log_level"`
	LogToFile       bool     `toml:"log_to_file"`
}

// GetConfig reads the TOML file at path and applies environment overrides
// for the values usually kept out of the file (DB_USER, DB_PASS, DB_CLUSTER,
// ACCESS_TOKEN_SECRET, STRIPE_SECRET_KEY, PORT). A missing file is fine as
// long as the environment supplies the secrets.
func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}

	envOverride(&tc.DBUser, "DB_USER")
	envOverride(&tc.DBPass, "DB_PASS")
	envOverride(&tc.DBCluster, "DB_CLUSTER")
	envOverride(&tc.AuthSecretKey, "ACCESS_TOKEN_SECRET")
	envOverride(&tc.StripeSecretKey, "STRIPE_SECRET_KEY")

	if port := os.Getenv("PORT"); port != "" {
		tc.ServerAddress = ":" + port
	}
	if tc.ServerAddress == "" {
		tc.ServerAddress = ":5000"
	}

	if tc.DatabaseURI == "" {
		if tc.DBUser != "" && tc.DBCluster != "" {
			tc.DatabaseURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
				url.QueryEscape(tc.DBUser), url.QueryEscape(tc.DBPass), tc.DBCluster)
		} else {
			tc.DatabaseURI = "mongodb://localhost:27017"
		}
	}

	if tc.LogLevel == "" {
		tc.LogLevel = "INFO"
	}
	logLevel, err := logger.ParseLevel(tc.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse log_level: %s", tc.LogLevel)
	}

	if tc.AuthSecretKey == "" {
		return nil, errors.New("auth_secret_key is not set")
	}
	authSecretKey, err := jwk.FromRaw([]byte(tc.AuthSecretKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create key from auth_secret_key")
	}

	if tc.StripeSecretKey == "" {
		return nil, errors.New("stripe_secret_key is not set")
	}

	return &Config{
		ServerAddress:   tc.ServerAddress,
		DatabaseURI:     tc.DatabaseURI,
		AuthSecretKey:   authSecretKey,
		StripeSecretKey: tc.StripeSecretKey,
		AllowedOrigins:  tc.AllowedOrigins,
		LogLevel:        logLevel,
		LogToFile:       tc.LogToFile,
	}, nil
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
