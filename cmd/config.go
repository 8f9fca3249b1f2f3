package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/chinmay1088/explorer/api"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const (
	envPrefix      = "EXPLORER"
	defaultTimeout = 30 * time.Second
)

var (
	cfgFile string
	logger  = zerolog.Nop()
)

// boundFlags are readable through viper under their flag name.
var boundFlags = []string{"api-key", "chain", "url", "timeout", "log-level", "verbose"}

func bindFlags(cmd *cobra.Command) {
	for _, name := range boundFlags {
		if err := viper.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// initConfig loads .env, the environment and the config file, then sets up logging.
func initConfig(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".explorer")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if viper.GetBool("verbose") && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

// newClient builds an API client from the resolved configuration.
func newClient() (*api.Client, error) {
	apiKey := strings.TrimSpace(viper.GetString("api-key"))
	if apiKey == "" {
		key, err := promptAPIKey()
		if err != nil {
			return nil, err
		}
		apiKey = key
	}

	chain, err := api.ParseChain(viper.GetString("chain"))
	if err != nil {
		return nil, err
	}

	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger.Debug().
		Str("chain", chain.String()).
		Str("url", viper.GetString("url")).
		Dur("timeout", timeout).
		Msg("creating explorer client")

	return api.NewClient(api.ClientConfig{
		ChainID:    chain,
		URL:        viper.GetString("url"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}, api.WithLogger(logger))
}

func promptAPIKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: set --api-key or %s_API_KEY", api.ErrMissingAPIKey, envPrefix)
	}

	fmt.Fprint(os.Stderr, "🔑 Enter explorer API key: ")
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(string(key)), nil
}
