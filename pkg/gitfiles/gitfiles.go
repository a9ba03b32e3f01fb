package gitfiles

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/karrick/godirwalk"
)

// Iter walks the working tree rooted at dir and calls cb with the path of
// every regular file, relative to dir. Skips .git and blame cache dirs.
func Iter(dir string, cb func(path string) error) error {
	stat, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("can't stat passed dir, err: %v", err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("passed dir is a file, expecting a dir")
	}

	return godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			name := de.Name()
			if de.IsDir() {
				if name == ".git" || name == ".git-blame-cache" {
					return filepath.SkipDir
				}
				return nil
			}
			if !de.IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(dir, osPathname)
			if err != nil {
				return err
			}
			return cb(rel)
		},
	})
}
