package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		records := s.RecordRepo()

		plan, err := loadPlan(ctx, records)
		if err != nil {
			return err
		}
		if plan == nil {
			fmt.Println("No study plan yet. Run 'studyplan generate' first.")
			return nil
		}

		data, err := loadProgress(ctx, records, plan.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		stats := progress.ComputeStats(data.DailyLogs, plan, now)

		fmt.Println("Study Statistics")
		fmt.Println("────────────────────────────────────────")
		fmt.Printf("Total studied:     %.1f hours\n", stats.TotalHoursStudied)
		fmt.Printf("Current streak:    %d days\n", stats.CurrentStreak)
		fmt.Printf("Longest streak:    %d days\n", stats.LongestStreak)
		fmt.Printf("Avg session:       %s\n", planner.FormatMinutes(int(stats.AverageSessionMin)))
		fmt.Printf("Weekly average:    %s\n", planner.FormatMinutes(int(stats.WeeklyAverageMin)))
		fmt.Printf("Plan completion:   %.0f%%\n", stats.CompletionRate)

		printSubjectBreakdown(data.DailyLogs, plan)
		printWeekProgress(plan, now)
		return nil
	},
}

// printSubjectBreakdown sums logged minutes per subject across all days.
func printSubjectBreakdown(logs []progress.DailyLog, plan *planner.StudyPlan) {
	totals := make(map[string]int)
	for _, l := range logs {
		for subjectID, minutes := range l.SubjectBreakdown {
			totals[subjectID] += minutes
		}
	}
	if len(totals) == 0 {
		return
	}

	names := make(map[string]string, len(plan.Subjects))
	for _, s := range plan.Subjects {
		names[s.ID] = s.Name
	}

	type row struct {
		name    string
		minutes int
	}
	var rows []row
	for id, minutes := range totals {
		name := names[id]
		if name == "" {
			name = id
		}
		rows = append(rows, row{name, minutes})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].minutes > rows[j].minutes })

	fmt.Println("\nTime by subject:")
	for _, r := range rows {
		fmt.Printf("  %-24s %s\n", r.name, planner.FormatMinutes(r.minutes))
	}
}

// printWeekProgress shows completion for the week containing now.
func printWeekProgress(plan *planner.StudyPlan, now time.Time) {
	today := now.Format(planner.DateFormat)
	for _, week := range plan.WeeklySchedules {
		if today < week.StartDate || today > week.EndDate {
			continue
		}
		p := planner.ProgressFor(week)
		fmt.Printf("\nWeek %d: %d/%d sessions done (%.0f%%)\n",
			week.WeekNumber, p.Completed, p.Total, p.Percentage)
		return
	}
}
