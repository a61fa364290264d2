package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/davarch/homework-watcher/internal/domain"
	"github.com/davarch/homework-watcher/internal/infrastructure/config"
	"github.com/davarch/homework-watcher/internal/infrastructure/practicum_http"
	"github.com/spf13/cobra"
)

var checkFrom int64

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single fetch+validate cycle and print the outcome",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		client := practicum_http.New(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Practicum.Timeout)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Practicum.Timeout+5*time.Second)
		defer cancel()

		raw, err := client.Statuses(ctx, checkFrom)
		if err != nil {
			return err
		}

		page, err := domain.Validate(raw)
		if err != nil {
			return err
		}

		if len(page.Homeworks) == 0 {
			fmt.Printf("no new statuses (current_date=%d)\n", page.CurrentDate)
			return nil
		}

		msg, err := domain.StatusMessage(page.Homeworks[0])
		if err != nil {
			return err
		}

		fmt.Println(msg)
		fmt.Printf("current_date=%d\n", page.CurrentDate)
		return nil
	},
}

func init() {
	checkCmd.Flags().Int64Var(&checkFrom, "from", 0, "lower bound of the query window (unix seconds, 0 = everything)")
	rootCmd.AddCommand(checkCmd)
}
