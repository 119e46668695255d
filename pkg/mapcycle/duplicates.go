package mapcycle

import "strings"

// Level names are tokenized by underscore. The first token is a gamemode
// prefix (ctf, koth, pl, ...) and never counts as a shared prefix on its
// own, so prefix matching starts at two tokens.
const minPrefixTokens = 2

// SharedPrefixGroups finds plain level names that likely refer to different
// versions of the same content. It returns a mapping from each duplicate
// prefix to the ordered list of plain names starting with that prefix.
//
// A prefix is considered duplicated when two or more distinct names produce
// the same underscore-joined token prefix of length two or more, or when one
// name is a literal string prefix of another (which catches pairs like
// "ctf_2fort" and "ctf_2fort_snowy" regardless of token boundaries).
func SharedPrefixGroups(doc Document) map[string][]string {
	names := doc.PlainMaps()

	sections := make([][]string, len(names))
	maxTokens := 0
	for i, name := range names {
		sections[i] = strings.Split(name, "_")
		if len(sections[i]) > maxTokens {
			maxTokens = len(sections[i])
		}
	}

	prefixes := make(map[string]struct{})

	for width := minPrefixTokens; width <= maxTokens; width++ {
		producers := make(map[string]map[string]struct{})
		for i, section := range sections {
			if len(section) < width {
				continue
			}
			join := strings.Join(section[:width], "_")
			if producers[join] == nil {
				producers[join] = make(map[string]struct{})
			}
			producers[join][names[i]] = struct{}{}
		}
		for join, sources := range producers {
			if len(sources) >= 2 {
				prefixes[join] = struct{}{}
			}
		}
	}

	// Whole-name containment: the lexicographically smaller of a pair that
	// prefixes the larger is itself a duplicate prefix.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			smaller, larger := names[i], names[j]
			if larger < smaller {
				smaller, larger = larger, smaller
			}
			if strings.HasPrefix(larger, smaller) {
				prefixes[smaller] = struct{}{}
			}
		}
	}

	groups := make(map[string][]string, len(prefixes))
	for prefix := range prefixes {
		members := make([]string, 0, 2)
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				members = append(members, name)
			}
		}
		groups[prefix] = members
	}
	return groups
}

// PrefixDuplicatesOf checks a single level name against a rotation list and
// returns the underscore-joined prefixes it shares with plain entries of the
// list, in the order they are first flagged.
//
// A prefix is reported when a plain entry's joined prefix equals the queried
// name's own prefix of the same token length, or when it repeats across two
// other entries. A prefix equal to the queried name's own prefix is always
// reported, even when a single list entry produces it; duplicate reporting
// relies on this, so it must not be tightened to repeats only.
func PrefixDuplicatesOf(name string, list Document) []string {
	targetTokens := strings.Split(name, "_")

	var sections [][]string
	for _, entry := range list {
		if IsPlainMap(entry) {
			sections = append(sections, strings.Split(entry, "_"))
		}
	}

	var dupes []string
	flagged := make(map[string]struct{})
	flag := func(join string) {
		if _, ok := flagged[join]; !ok {
			flagged[join] = struct{}{}
			dupes = append(dupes, join)
		}
	}

	for width := minPrefixTokens; width <= len(targetTokens); width++ {
		target := strings.Join(targetTokens[:width], "_")
		seen := make(map[string]struct{})
		for _, section := range sections {
			if len(section) < width {
				continue
			}
			join := strings.Join(section[:width], "_")
			if join == target {
				flag(join)
				continue
			}
			if _, repeated := seen[join]; repeated {
				flag(join)
				continue
			}
			seen[join] = struct{}{}
		}
	}
	return dupes
}

// PossibleWorkshopDuplicates cross-references the document's workshop entries
// against plain level names: for each workshop entry whose content is found
// in the installed-content index, the installed display name is checked for
// shared prefixes against the whole document. The result maps the short-form
// workshop entry to the prefixes it collides on. A nil index yields an empty
// mapping; only downloaded content can be checked.
func PossibleWorkshopDuplicates(doc Document, index Index) map[string][]string {
	out := make(map[string][]string)
	if index == nil {
		return out
	}

	checked := make(map[string]struct{})
	for _, entry := range doc {
		if !IsWorkshop(entry) {
			continue
		}
		id := WorkshopID(entry)
		if id == "" {
			continue
		}
		if _, done := checked[id]; done {
			continue
		}
		checked[id] = struct{}{}

		name, ok := index.DisplayName(id)
		if !ok {
			continue
		}
		if dupes := PrefixDuplicatesOf(name, doc); len(dupes) > 0 {
			out[WorkshopPrefix+id] = dupes
		}
	}
	return out
}
