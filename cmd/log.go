package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log <block-id>",
	Short: "Mark a study session as completed",
	Long: `Mark a study block completed and record it in today's progress log.
Block IDs are shown by 'studyplan today'. Use --minutes to record an
actual duration different from the planned one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blockID := args[0]
		minutes, _ := cmd.Flags().GetInt("minutes")

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
			return fmt.Errorf("no study plan yet; run 'studyplan generate' first")
		}

		block, err := planner.MarkComplete(plan, blockID, minutes)
		if err != nil {
			return err
		}
		if err := savePlan(ctx, records, plan); err != nil {
			return err
		}

		studied := block.Duration
		if block.ActualDuration > 0 {
			studied = block.ActualDuration
		}

		now := time.Now()
		data, err := loadProgress(ctx, records, plan.ID)
		if err != nil {
			return err
		}
		data.DailyLogs = progress.LogSession(data.DailyLogs, now, progress.Completion{
			BlockID:   block.ID,
			SubjectID: block.SubjectID,
			Minutes:   studied,
		})
		if err := saveProgress(ctx, records, data); err != nil {
			return err
		}

		if err := s.EventRepo().AppendCompletion(ctx, store.CompletionEventData{
			BlockID:         block.ID,
			SubjectID:       block.SubjectID,
			DurationMinutes: studied,
			LogDate:         now.Format(progress.DateFormat),
		}); err != nil {
			return fmt.Errorf("record completion event: %w", err)
		}

		fmt.Printf("Logged %s of %s.\n", planner.FormatMinutes(studied), block.SubjectName)

		if today, ok := progress.TodayLog(data.DailyLogs, now); ok {
			fmt.Printf("Today: %d sessions, %s total.\n",
				today.Sessions, planner.FormatMinutes(today.TotalMinutes))
		}
		streak := progress.Streak(data.DailyLogs, now)
		if streak > 1 {
			fmt.Printf("Streak: %d days.\n", streak)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntP("minutes", "m", 0, "Actual minutes studied (default: planned duration)")
}
