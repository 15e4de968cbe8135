// Package reference finds task keys such as PROJ-12 in commit messages and
// pull request text.
package reference

import (
	"regexp"
	"sort"
)

// Reference is one task key found in a message. IsClosing is set when a
// closing keyword ("fixes", "closes", "resolved", ...) directly precedes
// the key.
type Reference struct {
	TaskKey   string
	IsClosing bool
}

// Task keys are always rendered upper-case, so lower-case prefixes are
// deliberately not matched.
const keyPattern = `\b[A-Z]+-[0-9]+\b`

var (
	keyRe     = regexp.MustCompile(keyPattern)
	closingRe = regexp.MustCompile(`\b(?i:close[sd]?|fix(?:es|ed)?|resolve[sd]?)\s+(` + keyPattern + `)`)
)

// Extract returns every task key in text, first to last. A key repeated in
// the text is returned once per occurrence.
//
// The scan runs in two phases so each key span yields exactly one
// Reference: closing-keyword matches claim their key spans first, then
// bare keys are collected from the spans nobody claimed.
func Extract(text string) []Reference {
	type found struct {
		at  int
		ref Reference
	}

	var refs []found
	claimed := make(map[int]struct{})

	for _, m := range closingRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		claimed[start] = struct{}{}
		refs = append(refs, found{at: start, ref: Reference{TaskKey: text[start:end], IsClosing: true}})
	}

	for _, m := range keyRe.FindAllStringIndex(text, -1) {
		if _, ok := claimed[m[0]]; ok {
			continue
		}
		refs = append(refs, found{at: m[0], ref: Reference{TaskKey: text[m[0]:m[1]]}})
	}

	if len(refs) == 0 {
		return nil
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].at < refs[j].at })

	out := make([]Reference, len(refs))
	for i, f := range refs {
		out[i] = f.ref
	}
	return out
}
