package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agendapilot/agendapilot/internal/profile"
	"github.com/agendapilot/agendapilot/plugin/ai"
	"github.com/agendapilot/agendapilot/plugin/chat"
	"github.com/agendapilot/agendapilot/plugin/docsource"
	"github.com/agendapilot/agendapilot/server"
	"github.com/agendapilot/agendapilot/store"
	"github.com/agendapilot/agendapilot/store/db"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "agendapilot",
	Short: "Recurring-meeting detection, transcript matching and agenda generation service",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:          viper.GetString("mode"),
			Addr:          viper.GetString("addr"),
			Port:          viper.GetInt("port"),
			Data:          viper.GetString("data"),
			Driver:        viper.GetString("driver"),
			DSN:           viper.GetString("dsn"),
			LLMAPIKey:     viper.GetString("llm-api-key"),
			LLMBaseURL:    viper.GetString("llm-base-url"),
			LLMModel:      viper.GetString("llm-model"),
			SlackToken:    viper.GetString("slack-token"),
			TranscriptDir: viper.GetString("transcript-dir"),
			Version:       version,
		}
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create database driver", slog.String("error", err.Error()))
			os.Exit(1)
		}

		storeInstance := store.New(dbDriver, instanceProfile)
		if err := storeInstance.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		s := server.NewServer(instanceProfile, storeInstance,
			docsource.NewFSSource(instanceProfile.TranscriptDir),
			newChatClient(instanceProfile),
			newGenerator(instanceProfile),
		)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			slog.Info("shutting down")
			s.Shutdown(ctx)
			cancel()
		}()

		printGreeting(instanceProfile)
		if err := s.Start(ctx); err != nil {
			slog.Error("failed to start server", slog.String("error", err.Error()))
			cancel()
		}

		<-ctx.Done()
	},
}

// newChatClient returns nil when no chat integration is configured; the
// agenda service treats that as "no chat context".
func newChatClient(instanceProfile *profile.Profile) chat.Client {
	if instanceProfile.SlackToken == "" {
		return nil
	}
	return chat.NewSlackClient(instanceProfile.SlackToken)
}

func newGenerator(instanceProfile *profile.Profile) ai.Generator {
	if !instanceProfile.IsLLMEnabled() {
		return ai.NewUnavailableGenerator()
	}
	return ai.NewOpenAIGenerator(instanceProfile.LLMAPIKey, instanceProfile.LLMBaseURL, instanceProfile.LLMModel)
}

func printGreeting(instanceProfile *profile.Profile) {
	fmt.Printf("agendapilot %s, mode %s, driver %s\n", instanceProfile.Version, instanceProfile.Mode, instanceProfile.Driver)
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address of the server")
	rootCmd.PersistentFlags().Int("port", 8081, "binding port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, can be "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")
	rootCmd.PersistentFlags().String("llm-api-key", "", "API key for the text-generation backend")
	rootCmd.PersistentFlags().String("llm-base-url", "", "base URL override for the text-generation backend")
	rootCmd.PersistentFlags().String("llm-model", "", "model name for the text-generation backend")
	rootCmd.PersistentFlags().String("slack-token", "", "Slack bot token for chat history")
	rootCmd.PersistentFlags().String("transcript-dir", "", "directory scanned for transcript documents")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("agendapilot")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
