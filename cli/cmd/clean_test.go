package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const cleanSource = `'''Neutron''' lifetime is {{val|879.6|0.8|u=s}}.<ref>PDG</ref>

== Gallery ==
[[File:N.png|thumb|A neutron]]
[[Bild:N.png]]
[[Kategorie:Physik]]
`

func TestCleanRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  Clean
		want string
	}{
		{
			name: "defaults",
			want: "Neutron lifetime is 879.6±0.8 s.\n\nGallery\n\nBild:N.png\nKategorie:Physik\n",
		},
		{
			name: "no_values",
			cmd:  Clean{NoValues: true},
			want: "Neutron lifetime is .\n\nGallery\n\nBild:N.png\nKategorie:Physik\n",
		},
		{
			name: "prefixes",
			cmd:  Clean{Media: []string{"Bild"}, Category: []string{"Kategorie"}},
			want: "Neutron lifetime is 879.6±0.8 s.\n\nGallery\n\nPhysik\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := runWith(t, cleanSource, tt.cmd.Run)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Clean.Run() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
