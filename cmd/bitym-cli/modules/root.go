package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/bitym/core/pkg/shardstore"
	"github.com/bitym/core/pkg/storage"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Global scope flags.
var (
	cfgFile string
	dataDir string

	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitym-cli",
	Short: "Command line tool to work with a bitym storage node data directory",
	Long: `bitym-cli inspects and manipulates the data directory of a bitym
storage node: the shard records it holds and the per-peer contract,
audit tree, challenge and metadata documents attached to them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/bitym-cli/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "datadir", "d", "", "data directory (default is $HOME/.bitym)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".config/bitym-cli")
	}

	viper.SetDefault("storage.perm", "0700")
	viper.SetDefault("import.workers", 4)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func storagePerm() (fs.FileMode, error) {
	perm, err := strconv.ParseUint(cast.ToString(viper.Get("storage.perm")), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid storage.perm value: %w", err)
	}

	return fs.FileMode(perm), nil
}

// openStore prepares the shard store for one command invocation.
func openStore(readOnly bool) (*shardstore.Store, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	perm, err := storagePerm()
	if err != nil {
		return nil, err
	}

	opts := []shardstore.Option{
		shardstore.WithPerm(perm),
		shardstore.WithLogger(log),
	}
	if dataDir != "" {
		opts = append(opts, shardstore.WithPath(dataDir))
	}

	s, err := shardstore.New(opts...)
	if err != nil {
		return nil, err
	}

	if err := s.Open(readOnly); err != nil {
		return nil, fmt.Errorf("open shard store: %w", err)
	}

	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initialize shard store: %w", err)
	}

	return s, nil
}

// openAdapter is openStore with key validation composed on top.
func openAdapter(readOnly bool) (storage.Adapter, error) {
	s, err := openStore(readOnly)
	if err != nil {
		return nil, err
	}

	return storage.Validated(s), nil
}
