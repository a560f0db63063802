// Package val renders value-macro invocations ({{val|...}}) as plain text.
//
// An [Interpreter] tries an ordered list of [Rule] values against the whole
// invocation. The first rule whose pattern matches produces the output; when
// no rule matches, the input is returned unchanged. Rules are ordered from
// most to least specific, so a general shape never captures an invocation
// that a more specific rule handles:
//
//	{{val|877.75|0.50|0.44|u=[[second|s]]}}  ->  877.75±0.50 s
//	{{val|e=5|ul=m}}                          ->  10e5 m
//	{{val|3.7|e=10}}                          ->  3.7e10
//	{{val|4|ul=m2}}                           ->  4 m2
//	{{val|11|x|33}}                           ->  11×33
//	{{val|1234|fmt=commas}}                   ->  1234
//	{{val|879.6|0.8|u=s}}                     ->  879.6±0.8 s
//	{{val|5.4|u=[[kg]]&sdot;[[meter|m]]/s<sup>2</sup>}}  ->  5.4 kg·m/s²
//
// Interpretation never fails. [Interpreter.Evaluate] reports which rule
// fired and whether the invocation was recognized, not recognized, or
// recognized but unusable ([Malformed]); the last two both fall back to the
// input text.
//
// Interpreters are immutable and safe for concurrent use.
package val
