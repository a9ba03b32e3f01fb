package blame

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	data := "b4dadc54e312e976694161c2ac59ab76feb0c40d 1 1 2\n" +
		"author User1\n" +
		"author-mail <user1@example.com>\n" +
		"author-time 1543352136\n" +
		"author-tz +0100\n" +
		"committer User1\n" +
		"committer-mail <user1@example.com>\n" +
		"committer-time 1543352140\n" +
		"committer-tz +0100\n" +
		"summary c1\n" +
		"boundary\n" +
		"filename main.go\n" +
		"\tpackage main\n" +
		"69ba50fff990c169f80de96674919033a0a9b66d 4 2 1\n" +
		"author User2\n" +
		"author-mail <user2@example.com>\n" +
		"author-time 1543352171\n" +
		"author-tz +0100\n" +
		"committer User2\n" +
		"committer-mail <user2@example.com>\n" +
		"committer-time 1543352171\n" +
		"committer-tz +0100\n" +
		"summary c2\n" +
		"previous b4dadc54e312e976694161c2ac59ab76feb0c40d main.go\n" +
		"filename main.go\n" +
		"\t\t// do nothing\n"

	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []Blame{
		{
			Commit:         "b4dadc54e312e976694161c2ac59ab76feb0c40d",
			OriginalLineNo: 1,
			FinalLineNo:    1,
			Filename:       "main.go",
			Summary:        "c1",
			Content:        "package main",
			Boundary:       true,
			Author:         "User1",
			AuthorMail:     "<user1@example.com>",
			AuthorTime:     1543352136,
			AuthorTz:       "+0100",
			Committer:      "User1",
			CommitterMail:  "<user1@example.com>",
			CommitterTime:  1543352140,
			CommitterTz:    "+0100",
		},
		{
			Commit:         "69ba50fff990c169f80de96674919033a0a9b66d",
			OriginalLineNo: 4,
			FinalLineNo:    2,
			Filename:       "main.go",
			Summary:        "c2",
			Content:        "\t// do nothing",
			Previous: &Previous{
				Commit:   "b4dadc54e312e976694161c2ac59ab76feb0c40d",
				Filepath: "main.go",
			},
			Author:        "User2",
			AuthorMail:    "<user2@example.com>",
			AuthorTime:    1543352171,
			AuthorTz:      "+0100",
			Committer:     "User2",
			CommitterMail: "<user2@example.com>",
			CommitterTime: 1543352171,
			CommitterTz:   "+0100",
		},
	}
	assertEqualBlames(t, want, got)
}

func assertEqualBlames(t *testing.T, want, got []Blame) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("got %v blames, wanted %v", len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(want[i], got[i]) {
			t.Errorf("blame %v wanted %#+v got %#+v", i, want[i], got[i])
		}
	}
}

func TestParseMinimal(t *testing.T) {
	got, err := Parse("abc123 1 1\nsummary Initial commit\nboundary\n\tHello\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Blame{
		{
			Commit:         "abc123",
			OriginalLineNo: 1,
			FinalLineNo:    1,
			Summary:        "Initial commit",
			Boundary:       true,
			Content:        "Hello",
		},
	}
	assertEqualBlames(t, want, got)
}

func TestParseEmptyInput(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v blames from empty input", len(got))
	}
}

func TestParseEmptyContent(t *testing.T) {
	got, err := Parse("abc123 2 2\n\t\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Blame{
		{Commit: "abc123", OriginalLineNo: 2, FinalLineNo: 2},
	}
	assertEqualBlames(t, want, got)
}

func TestParseContentKeepsWhitespace(t *testing.T) {
	got, err := Parse("abc123 1 1\n\t  indented, trailing  \n")
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Content != "  indented, trailing  " {
		t.Fatalf("got content %q", got[0].Content)
	}
}

func TestParseNoHeader(t *testing.T) {
	// a group of just the content line has no header tokens at all
	_, err := Parse("\t\n")
	if err != ErrNoHeader {
		t.Fatalf("got err %v", err)
	}
}

func TestParseAbortsWithoutPartialResults(t *testing.T) {
	data := "abc123 1 1\n\tok\n\t\n"
	res, err := Parse(data)
	if err != ErrNoHeader {
		t.Fatalf("got err %v", err)
	}
	if res != nil {
		t.Fatalf("got partial results %v", res)
	}
}

func TestParseUnterminatedTrailingGroupDropped(t *testing.T) {
	data := "abc123 1 1\n\tfirst\n" +
		"def456 2 2\nsummary truncated output\n"
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %v blames", len(got))
	}
	if got[0].Commit != "abc123" {
		t.Fatalf("got commit %v", got[0].Commit)
	}
}

func TestParseOneEmptyBlob(t *testing.T) {
	_, err := ParseOne(nil)
	if err != ErrNoHeader {
		t.Fatalf("got err %v", err)
	}
}

func TestParseOneTolerantNumbers(t *testing.T) {
	got, err := ParseOne([]string{
		"abc123 x y",
		"author-time notanumber",
		"committer-time -5",
		"\tline",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.OriginalLineNo != 0 || got.FinalLineNo != 0 {
		t.Errorf("got line numbers %v %v", got.OriginalLineNo, got.FinalLineNo)
	}
	if got.AuthorTime != 0 || got.CommitterTime != 0 {
		t.Errorf("got times %v %v", got.AuthorTime, got.CommitterTime)
	}
	if got.Content != "line" {
		t.Errorf("got content %q", got.Content)
	}
}

func TestParseOneMissingHeaderLineNumbers(t *testing.T) {
	got, err := ParseOne([]string{"abc123", "\tline"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Commit != "abc123" || got.OriginalLineNo != 0 || got.FinalLineNo != 0 {
		t.Errorf("got %#+v", got)
	}
}

func TestParseOneUnknownKeysIgnored(t *testing.T) {
	got, err := ParseOne([]string{
		"abc123 1 1",
		"summary c1",
		"some-future-key some value",
		"strangeline",
		"\tline",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Summary != "c1" || got.Boundary {
		t.Errorf("got %#+v", got)
	}
}

func TestParseOnePrevious(t *testing.T) {
	got, err := ParseOne([]string{
		"abc123 1 1",
		"previous def456 dir with spaces/main.go",
		"\tline",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &Previous{Commit: "def456", Filepath: "dir with spaces/main.go"}
	if !reflect.DeepEqual(got.Previous, want) {
		t.Errorf("got previous %#+v", got.Previous)
	}
}

func TestParseOnePreviousWithoutPath(t *testing.T) {
	got, err := ParseOne([]string{
		"abc123 1 1",
		"previous def456",
		"\tline",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Previous != nil {
		t.Errorf("got previous %#+v", got.Previous)
	}
}

func TestParseOneContentLastWins(t *testing.T) {
	got, err := ParseOne([]string{
		"abc123 1 1",
		"\tfirst",
		"\tsecond",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "second" {
		t.Errorf("got content %q", got.Content)
	}
}

func TestParseDeterministic(t *testing.T) {
	data := "abc123 1 1\nsummary c1\n\tHello\n"
	a, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	assertEqualBlames(t, a, b)
}
