// Package reconcile merges the desired set of workshop entries, as imported
// from curated collections, into a rotation-list Document.
package reconcile

import (
	"github.com/srcdskit/mapcycle/pkg/mapcycle"
)

// MemoText is the marker comment appended above imported workshop entries.
// Together with its preceding blank line it forms the sentinel that keeps
// repeated imports from stacking up in the file.
const MemoText = "Imported workshop maps"

// Workshop replaces the document's workshop entries with the desired set.
//
// When the existing workshop entries already equal the desired set as sets,
// the input document is returned unchanged, which is what keeps a no-change
// run from rewriting the file. Otherwise every workshop entry is removed,
// the memo marker is refreshed at the tail, and the desired entries are
// appended; any line of the document exactly matching a desired entry is
// first removed from its old position so it reappears at the tail rather
// than being duplicated. Non-workshop entries keep their relative order.
//
// The desired set is treated as the single source of truth for workshop
// content: workshop entries the operator added by hand are deleted if the
// latest import does not contain them. Run this against one authoritative
// set of collections only.
func Workshop(doc mapcycle.Document, desired []string) mapcycle.Document {
	existing := doc.WorkshopEntries()
	if len(mapcycle.SymmetricChange(existing, mapcycle.Document(desired))) == 0 {
		return doc
	}

	out := doc.WithoutWorkshopEntries()
	out = mapcycle.UpsertMemo(out, MemoText)

	// Reappend policy: a desired entry already present anywhere in the
	// document moves to the tail instead of appearing twice.
	out = mapcycle.Difference(out, mapcycle.Document(desired))
	return append(out, desired...)
}
