package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/delivery"
	"github.com/aliskhannn/keepsafe/internal/model"
)

var clearPending bool

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Print the pending notifications and the permission status",
	RunE: func(cmd *cobra.Command, args []string) error {
		rdb, err := openRedis(cmd.Context(), cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close redis")
			}
		}()

		center := delivery.NewCenter(rdb.Client, cfg.Redis.Namespace)

		if clearPending {
			if err := center.CancelAll(cmd.Context()); err != nil {
				return fmt.Errorf("clear pending: %w", err)
			}

			zlog.Logger.Info().Msg("pending notifications cleared")
		}

		pending, err := center.ListPending(cmd.Context())
		if err != nil {
			return fmt.Errorf("list pending: %w", err)
		}

		status, err := center.PermissionStatus(cmd.Context())
		if err != nil {
			return fmt.Errorf("permission status: %w", err)
		}

		out := struct {
			Permission string                      `json:"permission"`
			Pending    []model.NotificationRequest `json:"pending"`
			At         time.Time                   `json:"at"`
		}{
			Permission: string(status),
			Pending:    pending,
			At:         time.Now(),
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal pending: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	},
}

func init() {
	pendingCmd.Flags().BoolVar(&clearPending, "clear", false, "Drop every pending request, including ones other producers registered")
}
