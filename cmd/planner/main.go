// Command planner is a local budget planner working on a SQLite file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(nil).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Every invocation gets its own viper
// instance so configuration never leaks between runs. A nil clock uses the
// system clock.
func newRootCmd(clock adapter.Clock) *cobra.Command {
	v := viper.New()
	state := &cliState{v: v, clock: clock}

	root := &cobra.Command{
		Use:   "planner",
		Short: "Personal budget planner",
		Long: `planner keeps a monthly budget plan: income, percentage or fixed budgets per
category, expenses tracked against them and saving goals funded from what is left.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, state.cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&state.cfgFile, "config", "", "config file (default: ./planner.yaml or $HOME/.config/planner/planner.yaml)")
	flags.String("db", "planner.db", "SQLite database file")
	flags.String("owner", "local", "dataset owner")
	flags.String("store-key", "finance_app_data", "key the dataset is stored under")
	flags.String("redis-url", "", "optional Redis cache in front of the database")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	_ = v.BindPFlag("db", flags.Lookup("db"))
	_ = v.BindPFlag("owner", flags.Lookup("owner"))
	_ = v.BindPFlag("store.key", flags.Lookup("store-key"))
	_ = v.BindPFlag("redis.url", flags.Lookup("redis-url"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	v.SetDefault("redis.ttl", 10*time.Minute)

	root.AddCommand(incomeCmd(state))
	root.AddCommand(budgetCmd(state))
	root.AddCommand(recalcCmd(state))
	root.AddCommand(transactionsCmd(state))
	root.AddCommand(categoriesCmd(state))
	root.AddCommand(goalsCmd(state))
	root.AddCommand(insightsCmd(state))
	root.AddCommand(resetCmd(state))
	root.AddCommand(versionCmd())

	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("planner")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/planner")
		}
	}

	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return setupLogging(v.GetString("log.level"), v.GetString("log.format"))
}

func setupLogging(level, format string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "planner", version)
		},
	}
}
