package contributors

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// JoinName builds "First Last" from name parts, ignoring empty parts.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// NameKey normalizes a personal name for equality matching: NFC composed,
// inner whitespace collapsed, and case folded. Two spellings that differ
// only in case or spacing share a key. An empty result means the name is
// unresolvable.
func NameKey(name string) string {
	fields := strings.Fields(norm.NFC.String(name))
	if len(fields) == 0 {
		return ""
	}
	return cases.Fold().String(strings.Join(fields, " "))
}

// CollapseSpaces trims name and collapses inner whitespace runs, keeping case.
func CollapseSpaces(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
