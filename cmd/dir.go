package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mitsu-ksgr/git-blame-parser/blame"
	"github.com/mitsu-ksgr/git-blame-parser/pkg/gitfiles"
	"github.com/mitsu-ksgr/git-blame-parser/pkg/logger"
	"github.com/spf13/cobra"
)

// dirCmd blames every file of a working tree and prints per-author line
// counts.
var dirCmd = &cobra.Command{
	Use:  "dir <dir>",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repoDir := args[0]
		lg := logger.NewDefaultLogger(os.Stdout)

		rev, _ := cmd.Flags().GetString("rev")
		gitCommand, _ := cmd.Flags().GetString("git")

		bl := blame.New(blame.Opts{
			RepoDir:    repoDir,
			Rev:        rev,
			GitCommand: gitCommand,
			UseCache:   true,
			Logger:     lg,
		})

		lines := map[string]int{}
		var files int
		err := gitfiles.Iter(repoDir, func(path string) error {
			res, err := bl.Run(ctx, path)
			if err != nil {
				// binary and untracked files fail blame, not fatal
				lg.Debug("skipping file", "file", path, "err", err)
				return nil
			}
			files++
			for _, b := range res {
				lines[b.Author]++
			}
			return nil
		})
		if err != nil {
			exitWithErr(err)
		}

		authors := []string{}
		for a := range lines {
			authors = append(authors, a)
		}
		sort.Slice(authors, func(i, j int) bool {
			return lines[authors[i]] > lines[authors[j]]
		})
		fmt.Printf("%s files=%v\n", color.GreenString(repoDir), files)
		for _, a := range authors {
			fmt.Printf("%6d %s\n", lines[a], color.YellowString(a))
		}
	},
}

func registerDir() {
	dirCmd.Flags().String("rev", "", "blame at this revision instead of the working tree")
	dirCmd.Flags().String("git", "git", "git command to use")
	rootCmd.AddCommand(dirCmd)
}
