package cmd

import (
	"fmt"

	"github.com/inovacc/dadandiaoming/internal/cli"
	"github.com/inovacc/dadandiaoming/internal/core"
	"github.com/inovacc/dadandiaoming/internal/git"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Create a new project from a template",
	Long: `Create a new project by cloning one of the available templates into
./<project-name>. You are asked for the name when it is not given, then for
the template.

If the target already exists you are asked before it is removed. Use --force
to remove it without asking.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		templateKey, _ := flags.GetString("template")
		force, _ := flags.GetBool("force")
		cleanOnFailure, _ := flags.GetBool("clean-on-failure")
		catalogFile, _ := flags.GetString("catalog")
		depth, _ := flags.GetInt("depth")

		if depth < 0 {
			return fmt.Errorf("--depth must not be negative, got %d", depth)
		}

		cat, err := buildCatalog(appConfig, catalogFile)
		if err != nil {
			return err
		}

		client := git.NewClient()
		if err := requireGit(cmd.Context(), client); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		interactive := isInteractive()

		var prompter core.Prompter = cli.NonInteractive{}
		if interactive {
			prompter = &cli.Prompter{Out: out}
		}

		checker, closeCache := newChecker(appConfig)
		defer closeCache()

		w := &core.Workflow{
			Catalog:        cat,
			Prompter:       prompter,
			Fetcher:        client,
			Tracker:        newTracker(out, interactive, appConfig),
			Notifier:       &core.VersionNotifier{Checker: checker, Out: out},
			Out:            out,
			TemplateKey:    templateKey,
			Force:          force,
			CleanOnFailure: cleanOnFailure,
			Depth:          depth,
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		}

		_, err = w.Run(cmd.Context(), name)

		return err
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringP("template", "t", "", "Template to use instead of asking")
	createCmd.Flags().BoolP("force", "f", false, "Overwrite an existing target directory without asking")
	createCmd.Flags().Bool("clean-on-failure", false, "Remove the partially cloned directory when the clone fails")
	createCmd.Flags().String("catalog", "", "YAML file with additional templates")
	createCmd.Flags().Int("depth", 0, "Create a shallow clone with this many commits (0 clones the full history)")
}
