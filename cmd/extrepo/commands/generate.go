package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/extrepo/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build index.json, index.min.json and repo.json from APK files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			apkDir, _ := cmd.Flags().GetString("apk-dir")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			repoURL, _ := cmd.Flags().GetString("repo-url")
			noMerge, _ := cmd.Flags().GetBool("no-merge")
			tool, _ := cmd.Flags().GetString("aapt")
			jobs, _ := cmd.Flags().GetInt("jobs")
			template, _ := cmd.Flags().GetString("repo-template")

			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				ConfigPath:   configPath,
				APKDir:       apkDir,
				OutputDir:    outputDir,
				RepoURL:      repoURL,
				NoMerge:      noMerge,
				Tool:         tool,
				Jobs:         jobs,
				RepoTemplate: template,
			})
		},
	}
	cmd.Flags().String("apk-dir", "", "Directory containing the APK files")
	cmd.Flags().String("output-dir", "", "Output directory for repository files")
	cmd.Flags().String("repo-url", "", "Base URL for the repository")
	cmd.Flags().Bool("no-merge", false, "Don't merge with existing index.json")
	cmd.Flags().String("aapt", "", "Path to the aapt or aapt2 executable")
	cmd.Flags().IntP("jobs", "j", 0, "Number of APKs processed in parallel")
	cmd.Flags().String("repo-template", "", "Template used to render repo.json")
	return cmd
}
