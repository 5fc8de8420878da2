package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/config"
	"github.com/Rshep3087/fintui/dashboard"
	"github.com/Rshep3087/fintui/session"
)

// Global variables for configuration.
var (
	cfgFile      string
	debug        bool
	token        string
	baseURL      string
	currency     string
	anthropicKey string

	settings   config.Config
	apiClient  *api.Client
	fileStore  *session.FileStore
	deps       = &cliDeps{now: time.Now}
	errNoLogin = errors.New("not logged in: run `fintui login` first")
)

// authenticator exchanges credentials for a token.
type authenticator interface {
	Login(ctx context.Context, username, password string) (*api.Token, error)
}

// cliDeps are the collaborators of the sub-commands. They are filled in
// before any command runs.
type cliDeps struct {
	backend  dashboard.Backend
	auth     authenticator
	store    session.Store
	token    string
	currency string
	ai       AIProvider
	now      func() time.Time
}

// requireSession returns the backend, or an error telling the user to log
// in when no usable token is available.
func (d *cliDeps) requireSession() (dashboard.Backend, error) {
	if d.backend == nil || !session.Usable(d.token, d.now()) {
		return nil, errNoLogin
	}
	return d.backend, nil
}

// guard clears the stored session when the backend rejected it.
func (d *cliDeps) guard(err error) error {
	if !errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	if d.store != nil {
		if clearErr := d.store.Clear(); clearErr != nil {
			log.Error("failed to clear session", "error", clearErr)
		}
	}
	return fmt.Errorf("%w: run `fintui login` again", err)
}

func (d *cliDeps) currencyCode() string {
	if d.currency == "" {
		return dashboard.DefaultCurrency
	}
	return d.currency
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fintui",
	Short: "A terminal dashboard and CLI for your finance backend",
	Long: `fintui shows income, expenses and budgets from a personal-finance backend.
Run it without a command for the dashboard, or use the commands below.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		settings = currentSettings()

		log.SetLevel(log.InfoLevel)
		if settings.Debug {
			log.SetLevel(log.DebugLevel)
		}

		if !dashboard.ValidCurrency(settings.Currency) {
			return fmt.Errorf("unknown currency %q", settings.Currency)
		}

		var err error
		fileStore, err = session.NewFileStore("")
		if err != nil {
			return err
		}

		tok := settings.Token
		if tok == "" {
			tok, err = fileStore.Load()
			if err != nil && !errors.Is(err, session.ErrNoSession) {
				log.Warn("failed to read session", "error", err)
			}
		}

		apiClient, err = api.NewClient(settings.BaseURL, tok)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		apiClient.HTTP.Transport = newLoggingTransport(apiClient.HTTP.Transport, log.Default())

		deps.backend = apiClient
		deps.auth = apiClient
		deps.store = fileStore
		deps.token = tok
		deps.currency = strings.ToUpper(settings.Currency)
		if settings.AnthropicAPIKey != "" {
			deps.ai = NewAnthropicProvider(settings.AnthropicAPIKey)
		}

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		return rootAction(c.Context(), modelDeps{
			config:      settings,
			configPath:  viper.ConfigFileUsed(),
			client:      apiClient,
			store:       fileStore,
			sessionPath: fileStore.Path(),
			ai:          deps.ai,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fintui.toml)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.StringVar(&token, "token", "", "bearer token, overrides the stored session")
	flags.StringVar(&baseURL, "base-url", "", "backend origin (default "+api.DefaultBaseURL+")")
	flags.StringVar(&currency, "currency", "", "currency amounts are shown in (default "+dashboard.DefaultCurrency+")")
	flags.StringVar(&anthropicKey, "anthropic-api-key", "", "Anthropic API key for category suggestions")

	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("token", flags.Lookup("token"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("currency", flags.Lookup("currency"))
	_ = viper.BindPFlag("anthropic_api_key", flags.Lookup("anthropic-api-key"))

	_ = viper.BindEnv("token", "FINTUI_TOKEN")
	_ = viper.BindEnv("base_url", "FINTUI_BASE_URL")
	_ = viper.BindEnv("currency", "FINTUI_CURRENCY")
	_ = viper.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")

	rootCmd.AddCommand(
		newLoginCmd(deps),
		newLogoutCmd(deps),
		newProfileCmd(deps),
		newSummaryCmd(deps),
		newCategoriesCmd(deps),
		newTrendCmd(deps),
		newTransactionCmd(deps),
		newBudgetCmd(deps),
		newConfigCmd(),
	)
}

// initConfig reads in a .env file, the config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", "error", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")

		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, appName))
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", appName))
		}
		viper.AddConfigPath(filepath.Join("/etc", appName))

		// config init writes config.toml, which the search above would miss
		if path := findConfigFile(); path != "" {
			viper.SetConfigFile(path)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Debug("config file not found or error reading", "error", err)
		return
	}

	log.Debug("using config file", "file", viper.ConfigFileUsed())
}

// currentSettings merges flags, environment and config file.
func currentSettings() config.Config {
	cfg := defaultConfig()

	cfg.Debug = viper.GetBool("debug")
	cfg.Token = viper.GetString("token")
	cfg.AnthropicAPIKey = viper.GetString("anthropic_api_key")
	if v := viper.GetString("base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetString("currency"); v != "" {
		cfg.Currency = v
	}

	if err := viper.UnmarshalKey("colors", &cfg.Colors); err != nil {
		log.Warn("invalid colors in config", "error", err)
	}

	return cfg
}
