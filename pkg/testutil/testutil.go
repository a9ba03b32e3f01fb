package testutil

import (
	"io/ioutil"
	"path/filepath"
)

// ReadTestdata returns the contents of a captured git output fixture from
// the package's testdata dir.
func ReadTestdata(name string) string {
	loc := filepath.Join(".", "testdata", name)
	b, err := ioutil.ReadFile(loc)
	if err != nil {
		panic(err)
	}
	return string(b)
}
