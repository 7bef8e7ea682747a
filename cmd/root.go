package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/assets"
	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/flow"
	"github.com/golangdaddy/crossing/pkg/game"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/mathutil"
	"github.com/golangdaddy/crossing/pkg/store"
	"github.com/golangdaddy/crossing/pkg/world"
)

const envPrefix = "CROSSING"

var (
	cfgFile string
	version = "dev" // set with -ldflags "-X ..."
)

// rootCmd runs the game when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:          "crossing",
	Short:        "Hop an animal across highways and train tracks",
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.crossing.yml)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"controls the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&config.DevMode, "dev", false,
		"human readable development logging")
	rootCmd.PersistentFlags().StringVar(&config.LogFile, "log-file", "",
		"also write logs to this file (\"auto\" uses the XDG state directory)")
	rootCmd.PersistentFlags().Int64Var(&config.Seed, "seed", 0,
		"random seed for level generation (0 picks one from the clock)")

	rootCmd.Flags().IntVar(&config.Width, "width", 1024, "window width")
	rootCmd.Flags().IntVar(&config.Height, "height", 600, "window height")
	rootCmd.Flags().StringVar(&config.AssetsDir, "assets", "assets",
		"directory holding decoration images")
	rootCmd.Flags().StringVar(&config.SaveFile, "save", "",
		"progress file (default is under the XDG state directory)")
	rootCmd.Flags().BoolVar(&config.Mute, "mute", false, "disable sound effects")

	rootCmd.AddCommand(newLayoutCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".crossing")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// CROSSING_LOG_LEVEL for --log-level
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v\n", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v\n", f.Name, err)
			}
		}
	})
}

func seed() uint64 {
	if config.Seed != 0 {
		return uint64(config.Seed)
	}
	return uint64(time.Now().UnixNano())
}

func initLogging() error {
	file := config.LogFile
	if file == "auto" {
		f, err := log.DefaultFile()
		if err != nil {
			return fmt.Errorf("locate log file: %w", err)
		}
		file = f
	}
	return log.Init(config.LogLevel, config.DevMode, file)
}

func runGame() error {
	if err := initLogging(); err != nil {
		return err
	}
	defer func() { _ = log.Logger.Sync() }()

	path := config.SaveFile
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return fmt.Errorf("locate save file: %w", err)
		}
		path = p
	}
	kv, err := store.Open(path)
	if err != nil {
		return err
	}

	s := seed()
	log.Logger.Info("starting",
		zap.String("version", version),
		zap.String("save", kv.Path()),
		zap.Uint64("seed", s))

	manager := world.NewManager(world.NewGenerator(mathutil.NewRand(s)))
	loader := assets.NewLoader(config.AssetsDir, game.DecodeImage)
	ctrl, err := flow.NewController(kv, manager, loader)
	if err != nil {
		return err
	}
	return game.Run(ctrl, game.Options{
		Width:  config.Width,
		Height: config.Height,
		Seed:   int64(s),
		Mute:   config.Mute,
	})
}
