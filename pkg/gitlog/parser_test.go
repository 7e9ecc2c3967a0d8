package gitlog

import (
	"reflect"
	"strings"
	"testing"
)

const (
	hashA = "728d882ed007b3c8b785018874a0eb06e1143b66"
	hashB = "b53e42aca623181aa9bc72194e6eeef1e9a3a237"
)

func TestParse_Oneline(t *testing.T) {
	commits := Parse(hashA + " fix bug\n")
	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}
	c := commits[0]
	if c.Commit != hashA {
		t.Errorf("commit = %q", c.Commit)
	}
	if c.Message != "fix bug" {
		t.Errorf("message = %q", c.Message)
	}
	if c.Stats != nil {
		t.Errorf("unexpected stats: %+v", c.Stats)
	}
}

func TestParse_FullWithStat(t *testing.T) {
	input := strings.Join([]string{
		"commit " + hashA,
		"Author: A <a@x.com>",
		"Date:   Wed Apr 20 09:50:19 2022 -0400",
		"",
		"    add timestamp docs",
		"    ",
		"    and examples",
		"    ",
		"",
		" file.py | 3 +++",
		" 1 file changed, 3 insertions(+)",
	}, "\n") + "\n"

	commits := Parse(input)
	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}
	c := commits[0]
	if c.Author != "A" || c.AuthorEmail != "a@x.com" {
		t.Errorf("author = %q <%q>", c.Author, c.AuthorEmail)
	}
	if c.Date != "Wed Apr 20 09:50:19 2022 -0400" {
		t.Errorf("date = %q", c.Date)
	}
	if c.Message != "add timestamp docs\n\nand examples\n" {
		t.Errorf("message = %q", c.Message)
	}
	if c.Stats == nil {
		t.Fatal("expected stats")
	}
	if c.Stats.FilesChanged != "1" || c.Stats.Insertions != "3" || c.Stats.Deletions != "0" {
		t.Errorf("counts = %s/%s/%s", c.Stats.FilesChanged, c.Stats.Insertions, c.Stats.Deletions)
	}
	if !reflect.DeepEqual(c.Stats.Files, []string{"file.py"}) {
		t.Errorf("files = %v", c.Stats.Files)
	}
}

// Two boundary lines with nothing between them yield two records, the first
// with only its identifier populated.
func TestParse_ConsecutiveBoundaries(t *testing.T) {
	commits := Parse("commit " + hashA + "\ncommit " + hashB + "\n")
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}
	if commits[0].Commit != hashA || commits[1].Commit != hashB {
		t.Errorf("order = %q, %q", commits[0].Commit, commits[1].Commit)
	}
	if commits[0].Author != "" || commits[0].Message != "" || commits[0].Stats != nil {
		t.Errorf("first record not bare: %+v", commits[0])
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("expected no commits, got %d", len(got))
	}
}

func TestParse_OrderPreserved(t *testing.T) {
	input := hashA + " first\n" + hashB + " second\n"
	commits := Parse(input)
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}
	if commits[0].Message != "first" || commits[1].Message != "second" {
		t.Errorf("order lost: %q, %q", commits[0].Message, commits[1].Message)
	}
}

// A record open at end of input is flushed exactly once.
func TestParse_TrailingRecordFlushedOnce(t *testing.T) {
	commits := Parse("commit " + hashA + "\nAuthor: A <a@x.com>")
	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}
}

// Parsing the concatenation of two valid inputs yields the concatenation of
// their individual results.
func TestParse_ConcatenationRoundTrip(t *testing.T) {
	first := "commit " + hashA + "\nAuthor: A <a@x.com>\n"
	second := hashB + " oneline entry\n"

	want := append(Parse(first), Parse(second)...)
	got := Parse(first + second)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("concatenated parse diverged:\ngot  %+v\nwant %+v", got, want)
	}
}

// Mixed dialects in one input: a oneline entry terminates a long-format
// record just like a commit header does.
func TestParse_MixedDialects(t *testing.T) {
	input := strings.Join([]string{
		"commit " + hashA,
		"Author: A <a@x.com>",
		hashB + " oneline after long",
	}, "\n")
	commits := Parse(input)
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}
	if commits[1].Message != "oneline after long" {
		t.Errorf("message = %q", commits[1].Message)
	}
}

func TestParse_BoundaryCountMatchesRecordCount(t *testing.T) {
	input := strings.Join([]string{
		"commit " + hashA,
		"Author: A <a@x.com>",
		"commit " + hashB,
		hashA + " oneline",
		"decoration line",
	}, "\n")

	boundaries := 0
	for _, line := range strings.Split(input, "\n") {
		if Classify(line) == RoleBoundary {
			boundaries++
		}
	}
	commits := Parse(input)
	if len(commits) != boundaries {
		t.Errorf("records = %d, boundaries = %d", len(commits), boundaries)
	}
}
