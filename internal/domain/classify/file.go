package classify

import (
	"strings"

	"github.com/phishwise/phishwise/internal/domain"
)

// fileChain classifies file descriptors (name plus declared MIME type).
// Directly-executable formats are phishing-grade, compressed containers are
// suspicious; the executable check runs first so "invoice.pdf.exe" is never
// softened by a later archive or description rule.
func fileChain() chain {
	return chain{
		fallback: domain.VerdictSafe,
		rules: []rule{
			{
				name:     "executable",
				verdict:  domain.VerdictPhishing,
				evidence: "executable or script format by name, MIME type or description",
				guard: func(f features) bool {
					return executableName(f.fileName) || doubleExt(f.fileName) ||
						executableMime(f.mimeType) ||
						strings.Contains(f.description, "executable")
				},
			},
			{
				name:     "archive",
				verdict:  domain.VerdictSuspicious,
				evidence: "compressed container by name, MIME type or description",
				guard: func(f features) bool {
					return archiveName(f.fileName) || archiveMime(f.mimeType) ||
						strings.Contains(f.description, "archive")
				},
			},
			{
				name:     "flagged_description",
				verdict:  domain.VerdictPhishing,
				evidence: "description explicitly flags fraud",
				guard:    func(f features) bool { return descriptionFlag(f.description) },
			},
		},
	}
}
