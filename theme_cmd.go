package main

import (
	"fmt"

	"github.com/milk9111/folio/theme"
	"github.com/spf13/cobra"
)

var themeFile string

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Read or flip the saved color theme",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the saved theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := themeStore().Load()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, theme.Icon(name))
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the dark and light themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := themeStore().Toggle()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, theme.Icon(name))
		return nil
	},
}

func themeStore() *theme.Store {
	if themeFile != "" {
		return theme.NewStore(themeFile)
	}
	return theme.NewStore(theme.DefaultPath())
}

func init() {
	themeCmd.PersistentFlags().StringVar(&themeFile, "file", "", "theme preference file (defaults to the user config dir)")
	themeCmd.AddCommand(themeGetCmd, themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}
