package main

import (
	"bannerdesk/internal/api/server"
	"bannerdesk/internal/banner"
	"bannerdesk/internal/database"
	"bannerdesk/internal/metrics"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var advanceDate string

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Activate and expire bookings once",
	Long: `advance runs the scheduled booking transitions a single time.
Approved bookings whose start date has arrived become active and active
bookings whose end date has passed become expired.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		loc, err := cfg.Booking.Location()
		if err != nil {
			return err
		}
		now := time.Now()
		if advanceDate != "" {
			day, err := banner.ParseDate(advanceDate)
			if err != nil {
				return err
			}
			now = time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc)
		}

		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		services, err := server.NewServices(ctx, cfg, db, metrics.NewNop(), logg)
		if err != nil {
			return err
		}
		defer services.Close()

		res, err := services.Booking.AdvanceSchedule(ctx, now)
		if err != nil {
			logg.Error("advance failed", zap.Error(err))
			return err
		}

		activated := make([]string, 0, len(res.Activated))
		for _, b := range res.Activated {
			activated = append(activated, b.ID.String())
		}
		expired := make([]string, 0, len(res.Expired))
		for _, b := range res.Expired {
			expired = append(expired, b.ID.String())
		}
		return render(cmd.OutOrStdout(), map[string]any{
			"date":      banner.Today(now, loc).Format(banner.DateLayout),
			"activated": activated,
			"expired":   expired,
		}, func() string {
			return fmt.Sprintf("%s: %d activated, %d expired",
				banner.Today(now, loc).Format(banner.DateLayout), len(activated), len(expired))
		})
	},
}

func init() {
	advanceCmd.Flags().StringVar(&advanceDate, "date", "", "Run as of this day (YYYY-MM-DD) instead of today")
}
