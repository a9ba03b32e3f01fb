package blame

import (
	"strconv"
	"strings"
)

// Previous is the commit/filepath pair from a "previous" metadata line.
// Both values always come from the same line, so they are kept together.
type Previous struct {
	Commit   string
	Filepath string
}

// Blame is the metadata of a single source line as reported by
// git blame --line-porcelain.
//
// AuthorTime and CommitterTime are unix times in seconds. Boundary is set
// only when the output marks the commit as the point where history
// tracking stopped. Previous is nil when the commit has no direct
// predecessor for this line.
type Blame struct {
	Commit         string
	OriginalLineNo int
	FinalLineNo    int

	Filename string
	Summary  string

	// Content is the source line itself, without the leading tab.
	Content string

	Previous *Previous

	Boundary bool

	Author     string
	AuthorMail string
	AuthorTime uint64
	AuthorTz   string

	Committer     string
	CommitterMail string
	CommitterTime uint64
	CommitterTz   string
}

// ShortCommit returns the abbreviated commit hash.
func (b Blame) ShortCommit() string {
	if len(b.Commit) < 7 {
		return b.Commit
	}
	return b.Commit[0:7]
}

func (b Blame) String() string {
	return b.ShortCommit() + ":" + strconv.Itoa(b.FinalLineNo) + ":" + b.Content
}

// Result is the blame output for one file, lines in final line order.
type Result struct {
	Lines []Blame
}

func (r Result) String() string {
	out := []string{}
	for _, l := range r.Lines {
		out = append(out, l.String())
	}
	return strings.Join(out, "\n")
}
