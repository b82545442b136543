package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/hoshinoya/dogepet/internal/config"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the OpenAI API key",
	Long:  `Store, inspect or remove the OpenAI API key used for conversations.`,
}

var setKeyCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API key",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		prompt := promptui.Prompt{
			Label: "API Key",
			Mask:  '*',
		}
		key, err := prompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		if err := cfg.SetAPIKey(key); err != nil {
			log.Fatalf("Failed to store API key: %v", err)
		}

		path, _ := config.KeyPath()
		fmt.Printf("API key stored at %s\n", path)
	},
}

var showKeyCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether an API key is stored",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if cfg.HasAPIKey() {
			fmt.Println("API Key: Set (hidden for security)")
		} else {
			fmt.Println("API Key: Not set")
		}
	},
}

var clearKeyCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.ClearAPIKey(); err != nil {
			log.Fatalf("Failed to remove API key: %v", err)
		}
		fmt.Println("API key removed")
	},
}

func init() {
	keyCmd.AddCommand(setKeyCmd)
	keyCmd.AddCommand(showKeyCmd)
	keyCmd.AddCommand(clearKeyCmd)
}
