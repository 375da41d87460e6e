package cli

import (
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger logrus.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "triplets",
	Short: "Solves and analyzes triplet-equation puzzles",
	Long: `Solves and analyzes triplet equations: constraint systems of the form
"X op Y = Z" (op in {+, *}) over capital-letter variables, where a solution
assigns the integers 1..n bijectively to the n letters.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		if debug {
			logger.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	logger = logrus.Logger{
		Out:   os.Stderr,
		Level: logrus.InfoLevel,
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "set debug output level")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	configPath := path.Join(home, ".triplets")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cobra.CheckErr(os.Mkdir(configPath, 0755))
	}

	viper.AddConfigPath(configPath)
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetDefault("configPath", configPath)
	viper.SetDefault("bankPath", path.Join(configPath, "bank.db"))
	viper.SetDefault("workers", runtime.NumCPU())

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	_ = viper.ReadInConfig()
}
