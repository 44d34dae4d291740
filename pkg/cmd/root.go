package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/auctionlab/depthchart/pkg/config"
	"github.com/auctionlab/depthchart/pkg/numfmt"
	"github.com/auctionlab/depthchart/pkg/tooltip"
)

var RootCmd = &cobra.Command{
	Use:   "depthchart",
	Short: "auction depth chart formatter",
	Long:  "formats prices and volumes, builds tooltips and renders auction depth charts",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.StandardLogger().SetLevel(log.DebugLevel)
		}

		dotenvFile := viper.GetString("dotenv")
		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				return err
			}
		}

		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file to load")
	RootCmd.PersistentFlags().String("log-dir", "log", "the log directory used in production")
}

// loadConfig loads the --config file, no config file means the defaults.
func loadConfig() (*config.Config, error) {
	configFile := viper.GetString("config")
	if configFile == "" {
		return nil, nil
	}

	log.Debugf("loading config file %s", configFile)
	return config.Load(configFile)
}

func newBuilder(userConfig *config.Config) (*tooltip.Builder, error) {
	formatter, err := numfmt.NewFormatter(userConfig.FormatSpec())
	if err != nil {
		return nil, err
	}

	return tooltip.NewBuilder(formatter), nil
}

func Execute() {
	viper.SetEnvPrefix("depthchart")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()

	environment := os.Getenv("DEPTHCHART_ENV")
	switch environment {
	case "production", "prod":
		writer := &lumberjack.Logger{
			Filename:   path.Join(viper.GetString("log-dir"), "depthchart.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     28, // days
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
