// Package clean reduces wikitext sections to readable plain text.
//
// A [Cleaner] splits a page into its lead and heading sections and, for each
// one, expands value invocations (see package val), drops the remaining
// template invocations, removes reference and table elements with their
// content, strips other markup tags, reduces wiki links to their display
// text and removes magic words. Media links ([[File:...]], [[Image:...]],
// [[Media:...]]) are removed together with their captions; category links
// keep the category name without its prefix.
package clean
