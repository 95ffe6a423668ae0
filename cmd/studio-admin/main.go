package main

import (
	"fmt"
	"os"

	"github.com/MeebitForge/MeebitStudio/server/cmd/studio-admin/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio-admin",
	Short: "Meebit Studio admin CLI",
	Long:  `Command line interface for managing the Meebit Studio data catalog.`,
}

func init() {
	// Add commands
	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.QuizCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
