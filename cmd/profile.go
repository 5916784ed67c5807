package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/student"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the stored student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		prof, err := student.Load(cmd.Context(), s.RecordRepo())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if prof == nil {
			fmt.Println("No profile set. Run 'studyplan profile set --name ...' to create one.")
			return nil
		}

		fmt.Printf("Name:             %s\n", prof.Name)
		if prof.EducationLevel != "" {
			fmt.Printf("Education level:  %s\n", prof.EducationLevel)
		}
		if prof.ExamName != "" {
			fmt.Printf("Preparing for:    %s\n", prof.ExamName)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		records := s.RecordRepo()

		prof, err := student.Load(ctx, records)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if prof == nil {
			prof = &student.Profile{}
		}

		// Only flags the user passed overwrite stored values.
		if cmd.Flags().Changed("name") {
			prof.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("level") {
			prof.EducationLevel, _ = cmd.Flags().GetString("level")
		}
		if cmd.Flags().Changed("exam") {
			prof.ExamName, _ = cmd.Flags().GetString("exam")
		}

		if err := student.Save(ctx, records, *prof); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Println("Profile saved.")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("name", "", "Student name")
	profileSetCmd.Flags().String("level", "", "Education level (e.g. high-school, undergraduate)")
	profileSetCmd.Flags().String("exam", "", "Exam being prepared for")

	profileCmd.AddCommand(profileSetCmd)
}
