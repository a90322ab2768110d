package classify

import "github.com/phishwise/phishwise/internal/domain"

// domainChain classifies bare domain names. Registration-level tricks
// (throwaway TLD, punycode homograph, security-keyword prefix) are
// phishing-grade; machine-generated shapes (digit runs, very long names)
// are only suspicious.
func domainChain() chain {
	return chain{
		fallback: domain.VerdictSafe,
		rules: []rule{
			{
				name:     "registration_trick",
				verdict:  domain.VerdictPhishing,
				evidence: "abuse-prone TLD, punycode homoglyph or security-keyword hyphen prefix",
				guard: func(f features) bool {
					return suspiciousTLD(f.text) || homoglyph(f.text) ||
						hyphenKeywordPrefix(f.text)
				},
			},
			{
				name:     "generated_shape",
				verdict:  domain.VerdictSuspicious,
				evidence: "three or more consecutive digits, or name longer than 50 characters",
				guard: func(f features) bool {
					return tripleDigitRe.MatchString(f.text) || len(f.text) > 50
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
