package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/milk9111/folio/content"
	"github.com/spf13/cobra"
)

var (
	contentDir string
	showHTML   bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Inspect the project catalog",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every project in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := content.LoadSite(contentDir)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tID\tTITLE")
		for i, p := range site.Projects {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, p.ID, p.Title)
		}
		return tw.Flush()
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a project's detail panel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := content.LoadSite(contentDir)
		if err != nil {
			return err
		}
		p, err := site.Lookup(args[0])
		if err != nil {
			return err
		}
		render := content.Markdown
		if showHTML {
			render = content.HTML
		}
		body, err := render(p)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	projectsCmd.PersistentFlags().StringVar(&contentDir, "content", "content", "directory holding a site.yaml override")
	projectsShowCmd.Flags().BoolVar(&showHTML, "html", false, "render HTML instead of Markdown")
	projectsCmd.AddCommand(projectsListCmd, projectsShowCmd)
	rootCmd.AddCommand(projectsCmd)
}
