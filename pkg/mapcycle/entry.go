package mapcycle

import "strings"

// Line markers. An entry's kind is derived purely from its text; no entry
// carries out-of-band metadata.
const (
	// CommentPrefix marks a comment line.
	CommentPrefix = "//"

	// WorkshopPrefix marks a rotation entry referencing Steam Workshop content.
	WorkshopPrefix = "workshop/"

	// longFormMarker separates the display name from the numeric ID in a
	// long-form workshop entry, e.g. "workshop/koth_octothorpe.ugc454796385".
	longFormMarker = ".ugc"
)

// IsComment reports whether the entry is a comment or blank line.
func IsComment(entry string) bool {
	return entry == "" || strings.HasPrefix(entry, CommentPrefix)
}

// IsWorkshop reports whether the entry references workshop content.
func IsWorkshop(entry string) bool {
	return strings.HasPrefix(entry, WorkshopPrefix)
}

// IsPlainMap reports whether the entry is a plain level name: non-empty,
// not a comment, and not a workshop reference.
func IsPlainMap(entry string) bool {
	return !IsComment(entry) && !IsWorkshop(entry)
}

// IsShortForm reports whether the entry is a workshop entry spelled with a
// bare numeric identifier, e.g. "workshop/454796385".
func IsShortForm(entry string) bool {
	return IsWorkshop(entry) && !strings.Contains(entry, longFormMarker)
}

// WorkshopID extracts the published-file identifier from a workshop entry
// of either spelling. It returns "" for non-workshop entries.
func WorkshopID(entry string) string {
	if !IsWorkshop(entry) {
		return ""
	}
	rest := strings.TrimPrefix(entry, WorkshopPrefix)
	if i := strings.LastIndex(rest, longFormMarker); i >= 0 {
		return rest[i+len(longFormMarker):]
	}
	return rest
}

// LongForm builds the annotated workshop entry spelling from a display name
// and a published-file identifier.
func LongForm(name, id string) string {
	return WorkshopPrefix + name + longFormMarker + id
}

// Index resolves workshop published-file identifiers to the display names of
// locally installed content. Absence of a mapping is expected: content that
// has never been downloaded simply is not in the index.
type Index interface {
	DisplayName(id string) (string, bool)
}

// ResolveShortform rewrites a short-form workshop entry into its long form
// using the installed-content index. The identifier is load-bearing for the
// game and is never altered; the display name is purely cosmetic. Entries
// that are not short form, or whose identifier has no installed content, are
// returned unchanged. A nil index resolves nothing.
func ResolveShortform(entry string, index Index) string {
	if index == nil || !IsShortForm(entry) {
		return entry
	}
	id := WorkshopID(entry)
	if name, ok := index.DisplayName(id); ok {
		return LongForm(name, id)
	}
	return entry
}

// WorkshopEntries returns the workshop entries of the document in order.
func (d Document) WorkshopEntries() Document {
	out := make(Document, 0)
	for _, entry := range d {
		if IsWorkshop(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// WithoutWorkshopEntries returns the document with every workshop entry
// removed, preserving the relative order of everything else.
func (d Document) WithoutWorkshopEntries() Document {
	out := make(Document, 0, len(d))
	for _, entry := range d {
		if !IsWorkshop(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// PlainMaps returns the plain level names of the document in order.
func (d Document) PlainMaps() []string {
	out := make([]string, 0)
	for _, entry := range d {
		if IsPlainMap(entry) {
			out = append(out, entry)
		}
	}
	return out
}
