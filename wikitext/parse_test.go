package wikitext

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		want     []Param
	}{
		{
			name:     "no params",
			input:    "{{reflist}}",
			wantName: "reflist",
		},
		{
			name:     "value and exponent",
			input:    "{{val|3.7|e=10}}",
			wantName: "val",
			want: []Param{
				{Key: Positional(1), Value: "3.7"},
				{Key: Named("e"), Value: "10"},
			},
		},
		{
			name:     "link keeps separator",
			input:    "{{val|877.75|0.50|0.44|u=[[second|s]]}}",
			wantName: "val",
			want: []Param{
				{Key: Positional(1), Value: "877.75"},
				{Key: Positional(2), Value: "0.50"},
				{Key: Positional(3), Value: "0.44"},
				{Key: Named("u"), Value: "[[second|s]]"},
			},
		},
		{
			name:     "nested invocation",
			input:    "{{outer|a={{inner|x|y=z}}|b}}",
			wantName: "outer",
			want: []Param{
				{Key: Named("a"), Value: "{{inner|x|y=z}}"},
				{Key: Positional(1), Value: "b"},
			},
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{{ cite web | title = Foo |1}}\n",
			wantName: "cite web",
			want: []Param{
				{Key: Named("title"), Value: " Foo "},
				{Key: Positional(1), Value: "1"},
			},
		},
		{
			name:     "empty params",
			input:    "{{x||}}",
			wantName: "x",
			want: []Param{
				{Key: Positional(1), Value: ""},
				{Key: Positional(2), Value: ""},
			},
		},
		{
			name:     "equals in non-name prefix",
			input:    "{{x|a.b=c}}",
			wantName: "x",
			want:     []Param{{Key: Positional(1), Value: "a.b=c"}},
		},
		{
			name:     "explicit next index",
			input:    "{{x|a|2=b=c}}",
			wantName: "x",
			want: []Param{
				{Key: Positional(1), Value: "a"},
				{Key: Positional(2), Value: "b=c"},
			},
		},
		{
			name:     "explicit index out of sequence",
			input:    "{{x|3=c}}",
			wantName: "x",
			want:     []Param{{Key: Named("3"), Value: "c"}},
		},
		{
			name:     "duplicate name",
			input:    "{{x|u=m|1|u=s}}",
			wantName: "x",
			want: []Param{
				{Key: Named("u"), Value: "s"},
				{Key: Positional(1), Value: "1"},
			},
		},
		{
			name:     "multiline",
			input:    "{{infobox\n| name = A\n| mass = {{val|4|ul=kg}}\n}}",
			wantName: "infobox",
			want: []Param{
				{Key: Named("name"), Value: " A\n"},
				{Key: Named("mass"), Value: " {{val|4|ul=kg}}\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if tmpl.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", tmpl.Name(), tt.wantName)
			}

			if diff := cmp.Diff(tt.want, tmpl.Params(), keyCmp, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Params() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrParse},
		{name: "no open", input: "val|1}}", wantErr: ErrParse},
		{name: "unterminated", input: "{{val|1", wantErr: ErrParse},
		{name: "unterminated nested", input: "{{val|{{x}}", wantErr: ErrParse},
		{name: "trailing text", input: "{{val|1}} more", wantErr: ErrUnexpected},
		{name: "two invocations", input: "{{a}}{{b}}", wantErr: ErrUnexpected},
		{name: "empty name", input: "{{|1}}", wantErr: ErrEmptyName},
		{name: "blank name", input: "{{  }}", wantErr: ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v does not match ErrParse", err)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	tmpl, err := ParseReader(context.Background(), strings.NewReader("{{val|11|x|33}}"))
	if err != nil {
		t.Fatal(err)
	}

	if got := tmpl.Render(); got != "{{val|11|x|33}}" {
		t.Errorf("Render() = %q", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseReader_ReadError(t *testing.T) {
	_, err := ParseReader(context.Background(), failingReader{})
	if !errors.Is(err, ErrReadInput) {
		t.Fatalf("error = %v, want ErrReadInput", err)
	}
}

func TestParseString_RoundTrip(t *testing.T) {
	inputs := []string{
		"{{val|3.7|e=10}}",
		"{{val|877.75|0.50|0.44|u=[[second|s]]}}",
		"{{val|e=5|ul=m}}",
		"{{x|a|2=b=c|k=v}}",
		"{{outer|{{inner|1}}|z}}",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tmpl := MustParse(input)

			if got := tmpl.Render(); got != input {
				t.Errorf("Render() = %q, want %q", got, input)
			}

			again := MustParse(tmpl.Render())
			if !tmpl.Equal(again) {
				t.Errorf("re-parsed %q is not equal", tmpl.Render())
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()

	MustParse("{{")
}
