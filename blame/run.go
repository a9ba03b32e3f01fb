package blame

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/mitsu-ksgr/git-blame-parser/gitexec"
	"github.com/mitsu-ksgr/git-blame-parser/pkg/logger"
)

// Opts is configuration for blaming files of a single repo.
type Opts struct {
	// RepoDir git repo to run commands on.
	RepoDir string

	// Rev is the revision to blame at. If empty, blames the working tree,
	// including not yet committed changes.
	Rev string

	// GitCommand defaults to "git".
	GitCommand string

	// UseCache stores git output on disk keyed on head commit. Useful when
	// blaming a whole tree repeatedly.
	UseCache bool

	// Logger object for info and debug.
	Logger logger.Logger
}

// Blamer runs git blame on files of a single repo.
type Blamer struct {
	opts Opts
}

func New(opts Opts) *Blamer {
	if opts.GitCommand == "" {
		opts.GitCommand = "git"
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(os.Stdout)
	}
	s := &Blamer{}
	s.opts = opts
	return s
}

// Run blames one file and returns its parsed records.
func (s *Blamer) Run(ctx context.Context, file string) ([]Blame, error) {
	args := []string{"blame"}
	if s.opts.Rev != "" {
		args = append(args, s.opts.Rev)
	}
	args = append(args, "--line-porcelain", "--", file)

	exec := gitexec.Exec
	if s.opts.UseCache {
		exec = gitexec.ExecWithCache
	}
	r, err := exec(ctx, s.opts.GitCommand, s.opts.RepoDir, args)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	s.opts.Logger.Debug("ran git blame", "file", file, "bytes", len(b))

	// git writes the output in utf-8, invalid sequences pass through the
	// parser untouched
	return Parse(string(b))
}

// Run blames one file in repoDir at rev using default options.
func Run(repoDir, rev, file string) ([]Blame, error) {
	s := New(Opts{RepoDir: repoDir, Rev: rev})
	return s.Run(context.Background(), file)
}
