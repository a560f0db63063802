package val_test

import (
	"fmt"

	"github.com/ardnew/wtmpl/val"
)

func ExampleInterpret() {
	fmt.Println(val.Interpret("{{val|3.7|e=10}}"))
	fmt.Println(val.Interpret("{{val|877.75|0.50|0.44|u=[[second|s]]}}"))
	fmt.Println(val.Interpret("{{val|5.4|u=[[kg]]&sdot;[[meter|m]]/s<sup>2</sup>}}"))
	fmt.Println(val.Interpret("{{convert|3|km}}"))
	// Output:
	// 3.7e10
	// 877.75±0.50 s
	// 5.4 kg·m/s²
	// {{convert|3|km}}
}

func ExampleEvaluate() {
	for _, text := range []string{"{{val|11|x|33}}", "{{val|42}}", "{{val|{{x}}|e=5}}"} {
		res := val.Evaluate(text)
		fmt.Printf("%s %q %s\n", res.Outcome, res.Rule, res.Output)
	}
	// Output:
	// matched "multiply" 11×33
	// no-match "" {{val|42}}
	// malformed "exponent" {{val|{{x}}|e=5}}
}

func ExampleExpand() {
	fmt.Println(val.Expand("The field is {{val|e=5|ul=m}} wide."))
	// Output: The field is 10e5 m wide.
}
