package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/davarch/homework-watcher/internal/infrastructure/config"
	"github.com/davarch/homework-watcher/internal/infrastructure/notify_telegram"
	"github.com/spf13/cobra"
)

var sendText string

var sendTestCmd = &cobra.Command{
	Use:   "send-test",
	Short: "Deliver a test message to the configured chat",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		note, err := notify_telegram.New(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		if err := note.Send(ctx, sendText); err != nil {
			return err
		}

		fmt.Println("delivered")
		return nil
	},
}

func init() {
	sendTestCmd.Flags().StringVar(&sendText, "text", "homework-watcher: test notification", "message text")
	rootCmd.AddCommand(sendTestCmd)
}
