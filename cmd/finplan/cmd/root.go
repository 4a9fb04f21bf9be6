package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/config"
	"github.com/sachacalipel7-cmyk/FinAdvisor/planner"
	"github.com/sachacalipel7-cmyk/FinAdvisor/store"
)

const defaultConfigFile = "finplan.yaml"

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "A personal finance tracker and investment advisor",
	Long: `Finplan keeps track of your accounts, income and expenses and turns
them into a savings diagnosis and an investment recommendation.

It provides tools for:
  - Recording accounts, income and expenses
  - Monthly metrics and an expense breakdown by category
  - A risk profile questionnaire
  - Rule based recommendations with an append-only history

All amounts are in euros.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	cfgFile  string
	dbPath   string
	userID   string
	logLevel string

	cfg *config.Config
	log *logrus.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./"+defaultConfigFile+" when present)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "user id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")
}

// loadConfig resolves the configuration once per invocation: file, then
// flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := readConfig()
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Store.DBPath = dbPath
	}
	if userID != "" {
		c.User.ID = userID
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	l, err := config.NewLogger(c.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	cfg, log = c, l
	log.WithFields(logrus.Fields{"user": cfg.User.ID, "db": cfg.Store.DBPath}).Debug("config loaded")
	return nil
}

func readConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	c, err := config.LoadFromFile(defaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return c, err
}

// openService opens the configured store. The caller closes it.
func openService() (*planner.Service, func(), error) {
	db, err := store.NewSQLite(cfg.Store.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	closer := func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("close db")
		}
	}
	return planner.New(db, log), closer, nil
}
