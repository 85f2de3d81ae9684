package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grandcafe/venueops/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	var acknowledgeWarnings bool

	cmd := &cobra.Command{
		Use:   "publishSchedule [weekStart]",
		Short: "Validate and publish a week's schedule",
		Long: `Validate the schedule for the week starting on the given Monday (YYYY-MM-DD)
and mark its shifts as published. Validation errors always block publication;
warnings block it unless --ack-warnings is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]
			app.Logger.Debug("publishSchedule command",
				zap.String("week_start", weekStart),
				zap.Bool("ack_warnings", acknowledgeWarnings))

			result, err := services.PublishWeek(
				app.Ctx,
				app.Database,
				app.Logger,
				weekStart,
				app.Cfg.LaborConstraintOverrides(),
				acknowledgeWarnings,
			)

			switch {
			case errors.Is(err, services.ErrScheduleInvalid):
				printValidation(result.WeekStart, result.WeekEnd, result.Validation)
				return fmt.Errorf("publication blocked: %w", err)
			case errors.Is(err, services.ErrWarningsNotAcknowledged):
				printValidation(result.WeekStart, result.WeekEnd, result.Validation)
				fmt.Println("Re-run with --ack-warnings to publish anyway.")
				return err
			case err != nil:
				return fmt.Errorf("failed to publish schedule: %w", err)
			}

			fmt.Printf("\n✅ Schedule Published\n\n")
			fmt.Printf("Week:        %s to %s\n", result.WeekStart, result.WeekEnd)
			fmt.Printf("Shifts:      %d\n", result.ShiftCount)
			if len(result.Validation.Warnings) > 0 {
				fmt.Printf("Warnings:    %d (acknowledged)\n", len(result.Validation.Warnings))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&acknowledgeWarnings, "ack-warnings", false, "Publish even when the schedule carries advisory warnings")

	return cmd
}
