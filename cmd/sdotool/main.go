package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/samsamfire/sdotool/internal/shell"
	"github.com/samsamfire/sdotool/pkg/od"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	edsSettingName       = "eds"
	nodeIdSettingName    = "node-id"
	canDeviceSettingName = "can-device"
	logLevelSettingName  = "log-level"
)

var DEFAULT_CAN_INTERFACE = "can0"

var configFile string
var edsPath string
var nodeIdInput string
var canDevice string
var logLevel string
var quiet bool
var verbose bool

func init() {
	cobra.OnInitialize(func() {
		initConfig()
		postInitCommands([]*cobra.Command{rootCmd})
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.sdotool.yaml)")
	rootCmd.PersistentFlags().StringVarP(&edsPath, edsSettingName, "e", "", "EDS file describing the device (.eds or zipped .zip)")
	rootCmd.PersistentFlags().StringVarP(&nodeIdInput, nodeIdSettingName, "n", "", "node id of the device, 1..127, decimal or 0xHEX")
	rootCmd.PersistentFlags().StringVarP(&canDevice, canDeviceSettingName, "c", DEFAULT_CAN_INTERFACE, "CAN interface the requests are meant for e.g. can0,vcan0")
	rootCmd.PersistentFlags().StringVar(&logLevel, logLevelSettingName, "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log errors")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "provide verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:               "sdotool",
	Short:             "Check SDO requests against a CANopen EDS before sending them on the bus.",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, nodeId, err := loadDevice()
		if err != nil {
			return err
		}

		rl, err := shell.NewReadline(historyFile())
		if err != nil {
			return err
		}
		defer rl.Close()

		return shell.New(dict, nodeId, rl, rl.Stdout()).Run()
	},
}

func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatalf("finding home directory: %v\n", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".sdotool")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SDOTOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			log.Debug("no config file, using flags and environment only")
		} else {
			log.Fatalf("reading config file: %v\n", err)
		}
	}
}

func postInitCommands(commands []*cobra.Command) {
	for _, cmd := range commands {
		presetRequiredFlags(cmd)
		if cmd.HasSubCommands() {
			postInitCommands(cmd.Commands())
		}
	}
}

// Values from the config file or environment are used for flags not given on the command line
func presetRequiredFlags(cmd *cobra.Command) {
	_ = viper.BindPFlags(cmd.Flags())
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			_ = cmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())
	return nil
}

// loadDevice parses the configured EDS and node id
func loadDevice() (*od.ObjectDict, uint8, error) {
	if edsPath == "" {
		return nil, 0, errors.New("an EDS file is required")
	}
	if nodeIdInput == "" {
		return nil, 0, errors.New("a node id is required")
	}
	nodeId, err := shell.ParseUintInRange(nodeIdInput, 1, 127)
	if err != nil {
		return nil, 0, errors.Wrap(err, "invalid node id")
	}

	dict, err := od.ParseFile(edsPath)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load EDS file")
	}
	log.WithFields(log.Fields{
		"eds":     edsPath,
		"node":    nodeId,
		"objects": dict.Len(),
		"device":  canDevice,
	}).Info("EDS loaded, requests are checked only and never sent on the bus")
	return dict, uint8(nodeId), nil
}

func historyFile() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sdotool_history")
}
