package clean

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// skippedElements are removed together with everything they enclose:
// references, tables and the extension tags whose content is not prose.
var skippedElements = []string{
	"ref", "references", "table",
	"categorytree", "charinsert", "gallery", "graph", "imagemap", "inputbox",
	"math", "nowiki", "pre", "score", "section", "source", "syntaxhighlight",
	"templatedata", "timeline",
}

// tagPolicy strips every tag, dropping the content of skippedElements.
var tagPolicy = sync.OnceValue(func() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.SkipElementsContent(skippedElements...)

	return policy
})

// stripTags removes markup tags and comments and decodes entities.
func stripTags(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}

	return html.UnescapeString(tagPolicy().Sanitize(text))
}
