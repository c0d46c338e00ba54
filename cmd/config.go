package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcus/modalslot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the modal configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configCancelableCmd = &cobra.Command{
	Use:   "cancelable <true|false>",
	Short: "Set the default cancelable flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}
		if err := config.SetDefaultCancelable(getBaseDir(), v); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "DEFAULT CANCELABLE %v\n", v)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configCancelableCmd)
	rootCmd.AddCommand(configCmd)
}
