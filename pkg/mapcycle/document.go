// Package mapcycle models a Source dedicated server rotation list as an
// ordered sequence of text lines and provides the set-difference, memo, and
// duplicate-detection primitives the sync and reporting commands build on.
//
// A Document is always transformed by producing a new sequence; callers keep
// the original around to detect whether anything actually changed.
package mapcycle

// Document is an ordered sequence of rotation-list lines. Order is the
// server's rotation order and is preserved for all untouched entries.
type Document []string

// Clone returns a copy of the document that can be mutated independently.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	copy(out, d)
	return out
}

// Difference returns the elements of a whose value does not occur anywhere
// in b, preserving a's order. Membership is set-based: a value that occurs
// in b removes every occurrence of itself from the result.
func Difference(a, b Document) Document {
	members := make(map[string]struct{}, len(b))
	for _, line := range b {
		members[line] = struct{}{}
	}

	out := make(Document, 0, len(a))
	for _, line := range a {
		if _, ok := members[line]; !ok {
			out = append(out, line)
		}
	}
	return out
}

// SymmetricChange returns Difference(a, b) followed by Difference(b, a).
// A non-empty result means the two documents differ as sets; callers use
// this purely as a change-detection signal.
func SymmetricChange(a, b Document) Document {
	out := Difference(a, b)
	return append(out, Difference(b, a)...)
}

// RemoveSublistOccurrence returns list with the first contiguous occurrence
// of sublist removed. If sublist is empty or does not occur, list is
// returned unchanged.
func RemoveSublistOccurrence(list, sublist Document) Document {
	if len(sublist) == 0 || len(sublist) > len(list) {
		return list
	}

	for i := 0; i+len(sublist) <= len(list); i++ {
		if matchesAt(list, sublist, i) {
			out := make(Document, 0, len(list)-len(sublist))
			out = append(out, list[:i]...)
			out = append(out, list[i+len(sublist):]...)
			return out
		}
	}
	return list
}

// matchesAt reports whether sublist occurs in list starting at index i.
func matchesAt(list, sublist Document, i int) bool {
	for j, line := range sublist {
		if list[i+j] != line {
			return false
		}
	}
	return true
}

// memoBlock returns the two-line sentinel sequence for a memo text.
func memoBlock(text string) Document {
	return Document{"", CommentPrefix + " " + text}
}

// UpsertMemo removes any existing memo block with the given text and appends
// a fresh one, so the document carries at most one copy. Applying it twice
// with the same text yields the same trailing two lines as applying it once.
func UpsertMemo(doc Document, text string) Document {
	out := RemoveSublistOccurrence(doc, memoBlock(text))
	return append(out.Clone(), memoBlock(text)...)
}
