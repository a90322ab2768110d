package classify

import "github.com/phishwise/phishwise/internal/domain"

// ipChain classifies bare IPv4 addresses. Private-range addresses are
// checked first (phishing when the description flags fraud, otherwise
// suspicious), then the public-infrastructure allow-list, then the
// description flag. The fallback for unmatched public addresses is
// suspicious rather than safe: an unknown public IP is inherently less
// trustworthy than a named domain. That asymmetry with the other resolvers
// is deliberate and pinned by tests; harmonizing it is a product decision,
// not a refactor.
func ipChain() chain {
	return chain{
		fallback: domain.VerdictSuspicious,
		rules: []rule{
			{
				name:     "private_range_flagged",
				verdict:  domain.VerdictPhishing,
				evidence: "RFC1918 private address with a fraud-flagged description",
				guard: func(f features) bool {
					return privateRange(f.text) && descriptionFlag(f.description)
				},
			},
			{
				name:     "private_range",
				verdict:  domain.VerdictSuspicious,
				evidence: "RFC1918 private address",
				guard:    func(f features) bool { return privateRange(f.text) },
			},
			{
				name:     "known_good",
				verdict:  domain.VerdictSafe,
				evidence: "well-known public infrastructure address",
				guard:    func(f features) bool { return knownGoodIP(f.text) },
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
