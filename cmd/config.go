package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sjzsdu/tdoc/config"
	"github.com/sjzsdu/tdoc/lang"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: lang.T("Set config"),
	Long:  lang.T("Set global configuration"),
	Args:  cobra.NoArgs,
	RunE:  handleConfigCommand,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&showAllConfigs, "list", "l", false, lang.T("List all configurations"))

	// 通过遍历 ConfigKeys 自动添加所有配置项
	for _, key := range config.GetAllConfigKeys() {
		desc := lang.T(config.GetConfigDescription(key))
		if options := config.GetConfigOptions(key); len(options) > 0 {
			desc += " (" + strings.Join(options, "|") + ")"
		}
		configCmd.Flags().String(key, config.GetConfig(key), desc)
	}
}

func handleConfigCommand(cmd *cobra.Command, args []string) error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	out := cmd.OutOrStdout()

	if showAllConfigs {
		fmt.Fprintln(out, lang.T("Current configurations:"))
		keys := config.GetAllConfigKeys()
		sort.Strings(keys)
		for _, key := range keys {
			if value := config.GetConfig(key); value != "" {
				fmt.Fprintf(out, "%s=%s\n", config.GetEnvKey(key), value)
			}
		}
		return nil
	}

	updates, err := collectConfigUpdates(cmd)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return cmd.Help()
	}
	for key, value := range updates {
		config.SetConfig(key, value)
	}
	if err := config.SaveConfig(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// collectConfigUpdates 收集显式设置的配置项并校验取值
func collectConfigUpdates(cmd *cobra.Command) (map[string]string, error) {
	updates := map[string]string{}
	for _, key := range config.GetAllConfigKeys() {
		flag := cmd.Flags().Lookup(key)
		if flag == nil || !flag.Changed {
			continue
		}
		value := flag.Value.String()
		if !config.IsValidConfigOption(key, value) {
			return nil, fmt.Errorf("%s: %s %q, %s %v", lang.T("Invalid value"), key, value, lang.T("expected one of"), config.GetConfigOptions(key))
		}
		if config.GetConfigType(key) == "int" && value != "" {
			if n, err := strconv.Atoi(value); err != nil || n <= 0 {
				return nil, fmt.Errorf("%s: %s %q", lang.T("Invalid value"), key, value)
			}
		}
		updates[key] = value
	}
	return updates, nil
}
