package timestamp

import "testing"

func TestParse_GitDefaultLayout(t *testing.T) {
	res := Parse("Wed Apr 20 09:50:19 2022 -0400")
	if res.Naive == nil {
		t.Fatal("expected naive epoch")
	}
	if res.UTC != nil {
		t.Errorf("UTC = %d, want absent for non-zero offset", *res.UTC)
	}
}

func TestParse_ZeroOffsetSetsUTC(t *testing.T) {
	res := Parse("Wed Apr 20 13:50:19 2022 +0000")
	if res.UTC == nil {
		t.Fatal("expected UTC epoch for +0000 offset")
	}
	if *res.UTC != 1650462619 {
		t.Errorf("UTC = %d, want 1650462619", *res.UTC)
	}
}

func TestParse_AlternateLayouts(t *testing.T) {
	for _, s := range []string{
		"Wed, 20 Apr 2022 09:50:19 -0400", // rfc2822
		"2022-04-20 09:50:19 -0400",       // iso-local
		"2022-04-20T09:50:19-04:00",       // iso-strict
	} {
		if res := Parse(s); res.Naive == nil {
			t.Errorf("Parse(%q): no naive epoch", s)
		}
	}
}

func TestParse_Unparseable(t *testing.T) {
	for _, s := range []string{"", "yesterday", "20 floréal an X"} {
		res := Parse(s)
		if res.Naive != nil || res.UTC != nil {
			t.Errorf("Parse(%q) = %+v, want zero result", s, res)
		}
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	if res := Parse("  Wed Apr 20 09:50:19 2022 -0400  "); res.Naive == nil {
		t.Error("expected naive epoch for padded date")
	}
}
