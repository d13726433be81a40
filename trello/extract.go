package trello

import "regexp"

// Matches board and card links like https://trello.com/c/AbCd12, with or
// without a scheme and with an optional invite segment. The single word
// character before the id is the entity type letter.
var urlPattern = regexp.MustCompile(`(?i)(?:https?://)?trello\.com/(?:invite/)?(\w)/(\w+)`)

// ExtractReferences scans message text for Trello links and returns one
// reference per non-overlapping match, in the order they appear. Links with
// an unrecognized type letter are skipped without error.
func ExtractReferences(content string) []Reference {
	matches := urlPattern.FindAllStringSubmatch(content, -1)
	var refs []Reference
	for _, match := range matches {
		entityType, ok := entityTypeFromLetter(match[1])
		if !ok {
			continue
		}
		refs = append(refs, Reference{Type: entityType, ID: match[2]})
	}
	return refs
}

func entityTypeFromLetter(letter string) (EntityType, bool) {
	switch letter {
	case "b", "B":
		return EntityBoard, true
	case "c", "C":
		return EntityCard, true
	default:
		return 0, false
	}
}
