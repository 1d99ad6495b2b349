package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCompanyCommand creates the company command.
func NewCompanyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "company UNIVERSAL_NAME",
		Short: "Show an organization page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			company, err := voyclient.GetCompany(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return render(company, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Name", company.Name)
				_ = table.Append("Universal Name", company.UniversalName)
				_ = table.Append("Industry", company.Industry)
				_ = table.Append("Website", company.Website)
				_ = table.Append("Employees", fmt.Sprintf("%d", company.EmployeeCount))
				_ = table.Append("Followers", fmt.Sprintf("%d", company.FollowerCount))
				_ = table.Append("Description", truncate(company.Description, 120))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
