package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/planner"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's study sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		upcoming, _ := cmd.Flags().GetInt("upcoming")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		plan, err := loadPlan(ctx, s.RecordRepo())
		if err != nil {
			return err
		}
		if plan == nil {
			fmt.Println("No study plan yet. Run 'studyplan generate' first.")
			return nil
		}

		now := time.Now()
		blocks := planner.BlocksOn(plan, now)

		if len(blocks) == 0 {
			fmt.Println("No sessions scheduled for today.")
		} else {
			fmt.Printf("Today, %s:\n\n", now.Format("Monday, Jan 02"))
			printBlocks(blocks)
		}

		if upcoming > 0 {
			ahead := planner.UpcomingBlocks(plan, now.AddDate(0, 0, 1), upcoming)
			if len(ahead) > 0 {
				fmt.Printf("\nNext %d days:\n\n", upcoming)
				for _, b := range ahead {
					date, _ := time.ParseInLocation(planner.DateFormat, b.Date, now.Location())
					fmt.Printf("  %-12s %s  %-24s %s\n",
						planner.RelativeDate(date, now), b.StartTime, b.SubjectName, b.Type)
				}
			}
		}

		return nil
	},
}

func printBlocks(blocks []planner.StudyBlock) {
	for _, b := range blocks {
		status := " "
		if b.Completed {
			status = "✓"
		}
		fmt.Printf("  [%s] %s-%s  %-24s %-15s %s\n",
			status, b.StartTime, b.EndTime, b.SubjectName, b.Type,
			planner.FormatMinutes(b.Duration))
		fmt.Printf("      id %s\n", b.ID)
	}
}

func init() {
	todayCmd.Flags().Int("upcoming", 0, "Also show incomplete sessions for the next N days")
}
