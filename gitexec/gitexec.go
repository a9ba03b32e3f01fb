package gitexec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

const cacheDir = ".git-blame-cache"

// Exec runs a git command in repoDir and returns its stdout.
func Exec(ctx context.Context, gitCommand string, repoDir string, args []string) (io.ReadCloser, error) {
	buf := bytes.NewBuffer(nil)
	err := ExecIntoWriter(ctx, buf, gitCommand, repoDir, args)
	if err != nil {
		return nil, err
	}
	return noopReadCloser{buf}, nil
}

func ExecIntoWriter(ctx context.Context, wr io.Writer, gitCommand string, repoDir string, args []string) error {
	c := exec.CommandContext(ctx, gitCommand, args...)
	c.Dir = repoDir
	c.Stderr = os.Stderr
	c.Stdout = wr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed executing git command %v", err)
	}
	return nil
}

// ExecWithCache is Exec with the output stored on disk, keyed on args and
// the repo head commit. Reuse is only valid while head does not move, which
// holds for repeated blames over one checkout.
func ExecWithCache(ctx context.Context, gitCommand string, repoDir string, args []string) (io.ReadCloser, error) {
	head, err := headCommit(ctx, gitCommand, repoDir)
	if err != nil {
		return nil, err
	}
	key := hashString(strings.Join(args, "@") + head)

	loc := filepath.Join(repoDir, cacheDir, key+".txt")

	f, err := os.Open(loc)
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open cache file at %v, err %v", loc, err)
	}

	os.MkdirAll(filepath.Dir(loc), 0777)

	f, err = os.Create(loc + ".tmp")
	if err != nil {
		return nil, err
	}

	err = ExecIntoWriter(ctx, f, gitCommand, repoDir, args)
	if err != nil {
		f.Close()
		return nil, err
	}

	f.Close()

	err = os.Rename(loc+".tmp", loc)
	if err != nil {
		return nil, err
	}

	return os.Open(loc)
}

func hashString(str string) string {
	return strconv.FormatUint(xxhash.Sum64String(str), 16)
}

func headCommit(ctx context.Context, gitCommand string, repoDir string) (string, error) {
	out := bytes.NewBuffer(nil)
	c := exec.CommandContext(ctx, gitCommand, "rev-parse", "HEAD")
	c.Dir = repoDir
	c.Stdout = out
	c.Run()
	res := strings.TrimSpace(out.String())
	if len(res) != 40 {
		return "", fmt.Errorf("can't get head commit for repo: %v", repoDir)
	}
	return res, nil
}

type noopReadCloser struct {
	io.Reader
}

func (noopReadCloser) Close() error {
	return nil
}
