package state

import (
	"sort"
	"strconv"
	"strings"
)

const (
	noteEntrySep = "|"
	noteKVSep    = "::"
)

// EncodeIDSet renders ids as decimal tokens. Order carries no meaning.
func EncodeIDSet(ids map[int]struct{}) []string {
	tokens := make([]string, 0, len(ids))
	for id := range ids {
		tokens = append(tokens, strconv.Itoa(id))
	}
	sort.Strings(tokens)
	return tokens
}

// DecodeIDSet drops tokens that are not integers.
func DecodeIDSet(tokens []string) map[int]struct{} {
	ids := make(map[int]struct{}, len(tokens))
	for _, tok := range tokens {
		id, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		ids[id] = struct{}{}
	}
	return ids
}

// EncodeNotes joins "<id>::<text>" entries with "|". A note containing "|"
// is written as-is and will not survive DecodeNotes intact.
func EncodeNotes(notes map[int]string) string {
	ids := make([]int, 0, len(notes))
	for id := range notes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	entries := make([]string, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, strconv.Itoa(id)+noteKVSep+notes[id])
	}
	return strings.Join(entries, noteEntrySep)
}

// DecodeNotes splits on "|", skips pieces without "::", and splits the rest
// once on the first "::". Entries with a non-integer id are dropped; a later
// duplicate id replaces an earlier one.
func DecodeNotes(s string) map[int]string {
	notes := make(map[int]string)
	for _, piece := range strings.Split(s, noteEntrySep) {
		idPart, text, found := strings.Cut(piece, noteKVSep)
		if !found {
			continue
		}
		id, err := strconv.Atoi(idPart)
		if err != nil {
			continue
		}
		notes[id] = text
	}
	return notes
}
