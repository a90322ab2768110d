package classify

import (
	"strings"

	"github.com/phishwise/phishwise/internal/domain"
)

// emailChain classifies email bodies. The phishing-grade rules come first:
// credential harvesting (sensitive-data request plus a delivery vector),
// hostile links, prize bait with a link, urgency pushing toward an action,
// and an explicitly flagged description. The suspicious-grade rules catch
// bait language, mass-mail greetings and weak link signals on their own.
func emailChain() chain {
	return chain{
		fallback: domain.VerdictSafe,
		rules: []rule{
			{
				name:     "credential_harvest",
				verdict:  domain.VerdictPhishing,
				evidence: "requests sensitive data combined with urgency or a link",
				guard: func(f features) bool {
					return sensitive(f.text) &&
						(urgent(f.text) || httpIPURL(f.text) || plainHTTP(f.text) ||
							strings.Contains(f.text, "click here"))
				},
			},
			{
				name:     "hostile_link",
				verdict:  domain.VerdictPhishing,
				evidence: "contains an IP-literal, shortened or abuse-prone-TLD link",
				guard: func(f features) bool {
					return httpIPURL(f.text) || shortener(f.text) || suspiciousTLD(f.text)
				},
			},
			{
				name:     "prize_with_link",
				verdict:  domain.VerdictPhishing,
				evidence: "lottery/reward bait delivered with a link",
				guard: func(f features) bool {
					return prize(f.text) &&
						(plainHTTP(f.text) || shortener(f.text) || suspiciousTLD(f.text))
				},
			},
			{
				name:     "urgent_action",
				verdict:  domain.VerdictPhishing,
				evidence: "urgency language pushing toward an account action",
				guard: func(f features) bool {
					return urgent(f.text) && containsAny(f.text,
						[]string{"click here", "verify", "update", "confirm"})
				},
			},
			{
				name:     "flagged_description",
				verdict:  domain.VerdictPhishing,
				evidence: "description explicitly flags fraud",
				guard:    func(f features) bool { return descriptionFlag(f.description) },
			},
			{
				name:     "bait_language",
				verdict:  domain.VerdictSuspicious,
				evidence: "reward or pressure-to-act bait without a hostile link",
				guard:    func(f features) bool { return prize(f.text) || bait(f.text) },
			},
			{
				name:     "generic_greeting",
				verdict:  domain.VerdictSuspicious,
				evidence: "impersonal mass-phish greeting phrasing",
				guard:    func(f features) bool { return genericGreeting(f.text) },
			},
			{
				name:     "weak_link_signal",
				verdict:  domain.VerdictSuspicious,
				evidence: "shortened link, abuse-prone TLD or verify-style hyphenated path",
				guard: func(f features) bool {
					return shortener(f.text) || suspiciousTLD(f.text) ||
						strings.Contains(f.text, "verify-")
				},
			},
		},
	}
}
