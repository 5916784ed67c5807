package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current plan and progress",
	Long: `Delete the stored study plan, progress log, and preferences.
The student profile and event history are kept unless --all is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			fmt.Print("This removes the current plan and progress. Continue? [y/N] ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		records := s.RecordRepo()

		keys := []string{store.KeyPlan, store.KeyProgress, store.KeyPreferences}
		if all {
			keys = append(keys, store.KeyProfile, store.KeyTheme)
		}
		for _, key := range keys {
			if err := records.Remove(ctx, key); err != nil {
				return fmt.Errorf("remove %s: %w", key, err)
			}
		}

		fmt.Println("Reset complete.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also remove the student profile and theme")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
