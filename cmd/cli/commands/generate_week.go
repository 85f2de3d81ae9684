package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grandcafe/venueops/pkg/core/services"
)

// GenerateWeekCmd creates the generateWeek command
func GenerateWeekCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateWeek [weekStart]",
		Short: "Generate draft shifts for a week from the configured templates",
		Long: `Expand the configured recurring shift templates into unassigned draft
shifts for the week starting on the given Monday (YYYY-MM-DD). Drafts stay
unpublished until the week passes compliance validation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]
			app.Logger.Debug("generateWeek command", zap.String("week_start", weekStart))

			week, err := services.GenerateWeek(
				app.Ctx,
				app.Database,
				app.Cfg,
				app.Logger,
				weekStart,
			)
			if err != nil {
				return fmt.Errorf("failed to generate week: %w", err)
			}

			fmt.Printf("\n✅ Draft Week Generated\n\n")
			fmt.Printf("Week:   %s to %s\n", week.WeekStart, week.WeekEnd)
			fmt.Printf("Shifts: %d\n\n", len(week.Shifts))

			fmt.Printf("📅 Draft Shifts:\n\n")
			fmt.Printf("%-12s  %-7s  %-7s  %-15s\n", "Date", "Start", "End", "Role")
			fmt.Println("------------  -------  -------  ---------------")
			for _, s := range week.Shifts {
				role := s.Role
				if role == "" {
					role = "—"
				}
				fmt.Printf("%-12s  %-7s  %-7s  %-15s\n", s.Date, s.StartTime, s.EndTime, role)
			}
			fmt.Println()

			return nil
		},
	}

	return cmd
}
