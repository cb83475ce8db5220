package config

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common"
	"github.com/gaze-network/block-explorer/pkg/logger"
	"github.com/gaze-network/block-explorer/pkg/logger/slogx"
	"github.com/gaze-network/block-explorer/pkg/middleware/requestlogger"
	"github.com/gaze-network/block-explorer/pkg/rpcclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "text",
		},
		Network: common.NetworkMainnet,
		BitcoinNode: rpcclient.Config{
			URL:  "http://localhost:8332",
			User: "user",
			Pass: "pass",
		},
		HTTPServer: HTTPServer{
			Host: "0.0.0.0",
			Port: 8080,
		},
	}
)

type Config struct {
	Logger      logger.Config    `mapstructure:"logger"`
	Network     common.Network   `mapstructure:"network"`
	BitcoinNode rpcclient.Config `mapstructure:"bitcoin_node"`
	HTTPServer  HTTPServer       `mapstructure:"http_server"`
}

type HTTPServer struct {
	Host   string               `mapstructure:"host"`
	Port   int                  `mapstructure:"port"`
	Logger requestlogger.Config `mapstructure:"logger"`
}

// BindPFlag binds a command line flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Failed to bind flag to configuration", slogx.String("key", key), slogx.Error(err))
	}
}

// Parse loads the configuration from the given file (falling back to
// ./config.yaml), environment variables and bound flags. Subsequent calls
// return the already-parsed configuration.
func Parse(configFile string) Config {
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}

		viper.SetEnvPrefix("EXPLORER")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.Warn("config file not found, use default value", slogx.Error(err))
			} else {
				logger.Panic("invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(config); err != nil {
			logger.Panic("failed to unmarshal config", slogx.Error(err))
		}
	})

	return *config
}

// Load returns the parsed configuration.
func Load() Config {
	return Parse("")
}
