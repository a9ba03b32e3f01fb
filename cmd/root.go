package cmd

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mitsu-ksgr/git-blame-parser/blame"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	enry "gopkg.in/src-d/enry.v1"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:  "git-blame-parser <file>",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// potentially enable profiling
		p, _ := cmd.Flags().GetString("profile")
		if p != "" {
			dir, _ := ioutil.TempDir("", "profile")
			defer func() {
				fn := filepath.Join(dir, p+".pprof")
				abs, _ := filepath.Abs(os.Args[0])
				fmt.Printf("to view profile, run `go tool pprof --pdf %s %s`\n", abs, fn)
			}()
			switch p {
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
			case "trace":
				defer profile.Start(profile.TraceProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
			case "block":
				defer profile.Start(profile.BlockProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
			case "mutex":
				defer profile.Start(profile.MutexProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
			default:
				exitWithErr(fmt.Errorf("unexpected profile: %v", p))
			}
		}

		loc, err := filepath.Abs(args[0])
		if err != nil {
			exitWithErr(err)
		}
		stat, err := os.Stat(loc)
		if err != nil || stat.IsDir() {
			exitWithErr(fmt.Errorf("invalid file path: %v", args[0]))
		}

		rev, _ := cmd.Flags().GetString("rev")
		gitCommand, _ := cmd.Flags().GetString("git")

		bl := blame.New(blame.Opts{
			RepoDir:    filepath.Dir(loc),
			Rev:        rev,
			GitCommand: gitCommand,
		})
		res, err := bl.Run(ctx, filepath.Base(loc))
		if err != nil {
			exitWithErr(err)
		}

		buf, _ := ioutil.ReadFile(loc)
		language := enry.GetLanguage(filepath.Base(loc), buf)
		fmt.Printf("%s language=%s,lines=%v\n", color.GreenString(args[0]), color.MagentaString(language), len(res))
		for _, b := range res {
			fmt.Printf("[%s] %04d %s %s %s\n", color.CyanString(b.ShortCommit()), b.FinalLineNo, color.YellowString(b.Author), b.AuthorMail, b.Content)
		}
	},
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Flags().String("rev", "", "blame at this revision instead of the working tree")
	rootCmd.Flags().String("git", "git", "git command to use")
	rootCmd.Flags().String("profile", "", "one of mem, mutex, cpu, block, trace or empty to disable")
	registerDir()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
