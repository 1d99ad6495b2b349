package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voycli/voycli/pkg/voyager"
)

// NewProfileCommand creates the profile command.
func NewProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [PUBLIC_IDENTIFIER]",
		Short: "Show a member profile (your own when no identifier is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			var profile *voyager.Profile
			if len(args) == 0 {
				profile, err = voyclient.GetOwnProfile(cmd.Context())
			} else {
				profile, err = voyclient.GetProfile(cmd.Context(), args[0])
			}

			if err != nil {
				return err
			}

			return render(profile, func() error { return renderProfileTable(profile) })
		},
	}
}

func renderProfileTable(profile *voyager.Profile) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("Name", profile.FirstName+" "+profile.LastName)
	_ = table.Append("Public ID", profile.PublicIdentifier)
	_ = table.Append("Headline", profile.Headline)
	_ = table.Append("Location", profile.Location)
	_ = table.Append("Industry", profile.Industry)
	_ = table.Append("Connections", fmt.Sprintf("%d", profile.ConnectionCount))
	_ = table.Append("Followers", fmt.Sprintf("%d", profile.FollowerCount))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(profile.Experience) > 0 {
		fmt.Println("\nExperience:")

		experienceTable := tablewriter.NewWriter(os.Stdout)
		experienceTable.Header("Title", "Company", "Start", "End")

		for _, entry := range profile.Experience {
			end := entry.EndDate
			if entry.IsCurrent {
				end = "present"
			}

			_ = experienceTable.Append(entry.Title, entry.Company, entry.StartDate, end)
		}

		if err := experienceTable.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	if len(profile.Education) > 0 {
		fmt.Println("\nEducation:")

		educationTable := tablewriter.NewWriter(os.Stdout)
		educationTable.Header("School", "Degree", "Field", "Years")

		for _, entry := range profile.Education {
			years := ""
			if entry.StartYear > 0 {
				years = fmt.Sprintf("%d-%d", entry.StartYear, entry.EndYear)
			}

			_ = educationTable.Append(entry.School, entry.Degree, entry.Field, years)
		}

		if err := educationTable.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
