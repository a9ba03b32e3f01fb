package blame

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoHeader is returned when a blob starts without a header line, which
// is the only way the porcelain output is malformed enough to give up on.
var ErrNoHeader = errors.New("parsing git blame: no header")

// Parse parses the output of git blame run with --line-porcelain. Plain
// --porcelain output is not supported, it omits repeated commit metadata.
//
// Records are returned in input order, one per source line. An unterminated
// trailing group (no content line seen before EOF) is dropped, the same way
// git only emits a group once its content line is written.
func Parse(data string) ([]Blame, error) {
	var res []Blame
	var blob []string
	for _, l := range strings.Split(data, "\n") {
		blob = append(blob, l)

		// the content line ends one group
		if strings.HasPrefix(l, "\t") {
			b, err := ParseOne(blob)
			if err != nil {
				return nil, err
			}
			res = append(res, b)
			blob = nil
		}
	}
	return res, nil
}

// ParseOne parses one porcelain group, header line through content line,
// into a Blame.
//
// Everything except a missing header degrades instead of failing: bad
// numbers become 0, unknown keys are skipped. git adds metadata keys over
// time, rejecting them would break on newer git.
func ParseOne(blob []string) (res Blame, _ error) {
	if len(blob) == 0 {
		return res, ErrNoHeader
	}

	header := strings.Fields(blob[0])
	if len(header) == 0 {
		return res, ErrNoHeader
	}
	res.Commit = header[0]
	if len(header) > 1 {
		res.OriginalLineNo = int(uintOrZero(header[1]))
	}
	if len(header) > 2 {
		res.FinalLineNo = int(uintOrZero(header[2]))
	}

	for _, l := range blob[1:] {
		if strings.HasPrefix(l, "\t") {
			res.Content = l[1:]
			continue
		}
		parts := strings.SplitN(l, " ", 2)
		if len(parts) == 2 {
			if set, ok := setters[parts[0]]; ok {
				set(&res, parts[1])
			}
		} else if l == "boundary" {
			res.Boundary = true
		}
	}

	return res, nil
}

// setters maps a recognized porcelain metadata key to the field it fills.
var setters = map[string]func(b *Blame, value string){
	"filename": func(b *Blame, value string) { b.Filename = value },
	"summary":  func(b *Blame, value string) { b.Summary = value },

	"author":      func(b *Blame, value string) { b.Author = value },
	"author-mail": func(b *Blame, value string) { b.AuthorMail = value },
	"author-time": func(b *Blame, value string) { b.AuthorTime = uintOrZero(value) },
	"author-tz":   func(b *Blame, value string) { b.AuthorTz = value },

	"committer":      func(b *Blame, value string) { b.Committer = value },
	"committer-mail": func(b *Blame, value string) { b.CommitterMail = value },
	"committer-time": func(b *Blame, value string) { b.CommitterTime = uintOrZero(value) },
	"committer-tz":   func(b *Blame, value string) { b.CommitterTz = value },

	"previous": func(b *Blame, value string) {
		parts := strings.SplitN(value, " ", 2)
		if len(parts) != 2 {
			// a hash without a path is useless, keep both unset
			return
		}
		b.Previous = &Previous{Commit: parts[0], Filepath: parts[1]}
	},
}

// uintOrZero is the tolerant number parse used for every numeric porcelain
// value. Garbage is 0, never an error.
func uintOrZero(value string) uint64 {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
