package classify

import (
	"strings"

	"github.com/phishwise/phishwise/internal/domain"
)

// features is the normalized view of an artifact that every predicate
// operates on. Extraction never fails: absent fields normalize to the empty
// string, and all matching downstream is case-insensitive because every
// field is lowercased here exactly once.
type features struct {
	text        string // normalized artifact content (body, URL, domain or address)
	fileName    string
	mimeType    string
	description string
}

func extract(a domain.Artifact) features {
	return features{
		text:        strings.ToLower(strings.TrimSpace(a.Content)),
		fileName:    strings.ToLower(strings.TrimSpace(a.FileName)),
		mimeType:    strings.ToLower(strings.TrimSpace(a.FileType)),
		description: strings.ToLower(strings.TrimSpace(a.Description)),
	}
}
