package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/wtmpl/val"
)

func TestValRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cmd   Val
		stdin string
		want  string
	}{
		{
			name: "args",
			cmd:  Val{Text: []string{"{{val|3.7|e=10}}", "{{val|4|ul=m2}}", "plain"}},
			want: "3.7e10\n4 m2\nplain\n",
		},
		{
			name:  "stdin_lines",
			stdin: "{{val|11|x|33}}\n{{val|1234|fmt=commas}}\n",
			want:  "11×33\n1234\n",
		},
		{
			name: "explain",
			cmd:  Val{Explain: true, Text: []string{"{{val|e=5|ul=m}}", "{{val|{{x}}|e=2}}", "x"}},
			want: "10e5 m\tmatched\texponent-unit\n" +
				"{{val|{{x}}|e=2}}\tmalformed\texponent\n" +
				"x\tno-match\t-\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := runWith(t, tt.stdin, tt.cmd.Run)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Val.Run() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	res := val.Result{Output: "1", Outcome: val.NoMatch}
	if got, want := explain(res), "1\tno-match\t-"; got != want {
		t.Errorf("explain() = %q, want %q", got, want)
	}
}
