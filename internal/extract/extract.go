// Package extract turns parsed feed documents into typed domain records.
// Extraction is pure: every field access carries an explicit fallback, and
// only a missing root collection is an error. The markup and JSON feeds name
// the same fields with different casing, so lookups try both spellings.
package extract

import "f1-data-service/internal/doctree"

// childText returns the first non-empty text among the named descendants.
func childText(n *doctree.Node, fallback string, names ...string) string {
	for _, name := range names {
		if v := n.ChildText(name); v != "" {
			return v
		}
	}
	return fallback
}

// child returns the first direct child among the named spellings. Direct
// lookup matters on documents where a nested record reuses the tag name.
func child(n *doctree.Node, names ...string) *doctree.Node {
	for _, name := range names {
		if c := n.Child(name); c != nil {
			return c
		}
	}
	return nil
}

// directText returns the first non-empty direct-child text among the names.
func directText(n *doctree.Node, fallback string, names ...string) string {
	for _, name := range names {
		if v := n.Child(name).Text(); v != "" {
			return v
		}
	}
	return fallback
}

// attr returns the first non-empty attribute among the named keys.
func attr(n *doctree.Node, fallback string, names ...string) string {
	for _, name := range names {
		if v := n.Attr(name); v != "" {
			return v
		}
	}
	return fallback
}

// firstN returns the leading n runes of s.
func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// NameCode derives the 6-character asset code from the first three characters
// of the given and family names.
func NameCode(givenName, familyName string) string {
	return firstN(givenName, 3) + firstN(familyName, 3)
}
