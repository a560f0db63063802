package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandRun(t *testing.T) {
	t.Parallel()

	src := writeFile(t, t.TempDir(), "page.wiki",
		"Mass {{val|5.4|u=[[kg]]&sdot;[[meter|m]]/s<sup>2</sup>}}, {{convert|3|km}}.\n")

	got := runWith(t, "", (&Expand{Source: []string{src}}).Run)

	want := "Mass 5.4 kg·m/s², {{convert|3|km}}.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand.Run() mismatch (-want +got):\n%s", diff)
	}
}
