package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoshinoya/dogepet/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "dogepet",
	Short: "A desktop companion doge for your terminal",
	Long: `Dogepet keeps an animated doge on screen that chats back, quotes the
live Dogecoin price and reacts with a mood. Drag it around, click for a
price bubble, double-click to talk.`,
	Run: func(cmd *cobra.Command, args []string) {
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(keyCmd)
}
