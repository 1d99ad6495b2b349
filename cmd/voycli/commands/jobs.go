package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewJobsCommand creates the jobs command group.
func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Look up and search job postings",
	}

	cmd.AddCommand(newJobsGetCommand())
	cmd.AddCommand(newJobsSearchCommand())

	return cmd
}

func newJobsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get JOB_ID",
		Short: "Show a job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			job, err := voyclient.GetJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return render(job, func() error {
				remote := "no"
				if job.Remote {
					remote = "yes"
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Title", job.Title)
				_ = table.Append("Company", job.Company)
				_ = table.Append("Location", job.Location)
				_ = table.Append("Remote", remote)
				_ = table.Append("Listed", formatEpochMillis(job.ListedAt))
				_ = table.Append("Description", truncate(job.Description, 120))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newJobsSearchCommand() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "search KEYWORDS...",
		Short: "Search job postings",
		Args:  cobra.MinimumNArgs(1),
	}

	page := pageFlags(cmd.Flags())
	cmd.Flags().StringVarP(&location, "location", "l", "", "location filter")

	cmd.RunE = func(c *cobra.Command, args []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		jobs, paging, err := voyclient.SearchJobs(c.Context(), strings.Join(args, " "), location, *page)
		if err != nil {
			return err
		}

		return render(jobs, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Title", "Company", "Location", "URN")

			for _, job := range jobs {
				_ = table.Append(job.Title, job.Company, job.Location, string(job.URN))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			pagingFooter(paging)

			return nil
		})
	}

	return cmd
}
