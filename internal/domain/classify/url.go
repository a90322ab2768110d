package classify

import "github.com/phishwise/phishwise/internal/domain"

// urlChain classifies raw URLs. Any structural spoofing trick is
// phishing-grade on its own; a credential-style path is only suspicious
// unless it sits on an abuse-prone TLD.
func urlChain() chain {
	return chain{
		fallback: domain.VerdictSafe,
		rules: []rule{
			{
				name:     "spoofing_structure",
				verdict:  domain.VerdictPhishing,
				evidence: "IP-literal host, @-trick, shortener, abuse-prone TLD or disguised executable",
				guard: func(f features) bool {
					return httpIPURL(f.text) || atSignTrick(f.text) ||
						shortener(f.text) || suspiciousTLD(f.text) ||
						doubleExt(urlPath(f.text))
				},
			},
			{
				name:     "credential_path_bad_tld",
				verdict:  domain.VerdictPhishing,
				evidence: "credential-keyword path on an abuse-prone TLD",
				guard: func(f features) bool {
					return credentialPath(f.text) && suspiciousTLD(f.text)
				},
			},
			{
				name:     "credential_path",
				verdict:  domain.VerdictSuspicious,
				evidence: "credential-keyword path (verify/signin/login/account/...)",
				guard:    func(f features) bool { return credentialPath(f.text) },
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
