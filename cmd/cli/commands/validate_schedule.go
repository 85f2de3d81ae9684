package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grandcafe/venueops/pkg/core/schedule"
	"github.com/grandcafe/venueops/pkg/core/services"
)

// ValidateScheduleCmd creates the validateSchedule command
func ValidateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validateSchedule [weekStart]",
		Short: "Validate a week's schedule against labor constraints",
		Long: `Validate the schedule for the week starting on the given Monday (YYYY-MM-DD).
Reports blocking errors and advisory warnings without changing any data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]
			app.Logger.Debug("validateSchedule command", zap.String("week_start", weekStart))

			week, err := services.ValidateWeek(
				app.Ctx,
				app.Database,
				app.Logger,
				weekStart,
				app.Cfg.LaborConstraintOverrides(),
			)
			if err != nil {
				return fmt.Errorf("failed to validate schedule: %w", err)
			}

			printValidation(week.WeekStart, week.WeekEnd, week.Result)

			// Per-employee hours and cost rollup
			summary := schedule.Summarize(week.Shifts, week.Employees, app.Cfg.LaborConstraintOverrides())
			if len(summary.Employees) > 0 {
				fmt.Printf("📊 Weekly Hours:\n\n")
				fmt.Printf("%-25s  %8s  %8s  %10s\n", "Employee", "Hours", "Overtime", "Cost")
				fmt.Println("-------------------------  --------  --------  ----------")
				for _, emp := range summary.Employees {
					fmt.Printf("%-25s  %8.1f  %8.1f  %10.2f\n",
						emp.EmployeeName, emp.TotalHours, emp.OvertimeHours, emp.LaborCost)
				}
				fmt.Printf("\nTotal: %.1fh, %.2f\n\n", summary.TotalHours, summary.TotalCost)
			}

			return nil
		},
	}

	return cmd
}

// printValidation renders a validation result to stdout
func printValidation(weekStart, weekEnd string, result schedule.ValidationResult) {
	fmt.Printf("\nWeek %s to %s\n\n", weekStart, weekEnd)

	if result.Valid && len(result.Warnings) == 0 {
		fmt.Printf("✅ Schedule is compliant\n\n")
		return
	}

	if len(result.Errors) > 0 {
		fmt.Printf("❌ Errors (%d):\n", len(result.Errors))
		for _, v := range result.Errors {
			fmt.Printf("   [%s] %s\n", v.Type, v.Message)
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("⚠️  Warnings (%d):\n", len(result.Warnings))
		for _, v := range result.Warnings {
			fmt.Printf("   [%s] %s\n", v.Type, v.Message)
		}
		fmt.Println()
	}

	if result.Valid {
		fmt.Printf("Schedule can be published once warnings are acknowledged.\n\n")
	} else {
		fmt.Printf("Schedule must not be published until errors are resolved.\n\n")
	}
}
