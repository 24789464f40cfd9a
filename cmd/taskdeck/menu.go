package main

import (
	"github.com/spf13/cobra"

	"github.com/gf-haseeb/taskdeck/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse lists and tasks interactively",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}
	return menu.Run(manager)
}
