package classify

import (
	"time"

	"github.com/google/uuid"

	"github.com/phishwise/phishwise/internal/domain"
)

// rule is one guarded step of a resolver chain. Chains are evaluated
// top-down and the first matching guard decides the verdict, so rule order
// encodes severity precedence: phishing-grade rules sit above
// suspicious-grade ones and a record can never be downgraded by a later,
// weaker rule.
type rule struct {
	name     string
	verdict  domain.Verdict
	evidence string
	guard    func(f features) bool
}

// chain is the ordered resolver for one artifact kind
type chain struct {
	rules    []rule
	fallback domain.Verdict
}

func (c chain) resolve(f features) domain.Verdict {
	for _, r := range c.rules {
		if r.guard(f) {
			return r.verdict
		}
	}
	return c.fallback
}

// signals returns every rule that matched, not just the deciding one. The
// extra matches feed the API response and the maintainer change log; they
// never influence the verdict.
func (c chain) signals(f features) []domain.Signal {
	out := make([]domain.Signal, 0)
	for _, r := range c.rules {
		if r.guard(f) {
			out = append(out, domain.Signal{
				Name:     r.name,
				Verdict:  r.verdict,
				Evidence: r.evidence,
			})
		}
	}
	return out
}

// Classifier resolves artifacts of every kind into a verdict.
//
// Resolution is a pure deterministic function of the artifact and its
// description: no state, no randomness, no I/O. The zero cost of that purity
// is that a Classifier is safe to share across goroutines.
type Classifier struct {
	chains map[domain.Kind]chain
}

// New creates a classifier with the standard rule chain for each kind
func New() *Classifier {
	return &Classifier{
		chains: map[domain.Kind]chain{
			domain.KindEmail:  emailChain(),
			domain.KindURL:    urlChain(),
			domain.KindDomain: domainChain(),
			domain.KindIP:     ipChain(),
			domain.KindFile:   fileChain(),
		},
	}
}

// Resolve maps an artifact to its verdict. Unknown kinds resolve to safe,
// matching the weakest-category default for empty inputs.
func (c *Classifier) Resolve(a domain.Artifact) domain.Verdict {
	ch, ok := c.chains[a.Kind]
	if !ok {
		return domain.VerdictSafe
	}
	return ch.resolve(extract(a))
}

// Analyze resolves an artifact and reports every rule that fired
func (c *Classifier) Analyze(a domain.Artifact) domain.AnalysisResult {
	res := domain.AnalysisResult{
		ID:         uuid.New(),
		Kind:       a.Kind,
		Verdict:    domain.VerdictSafe,
		Signals:    []domain.Signal{},
		AnalyzedAt: time.Now().UTC(),
	}
	ch, ok := c.chains[a.Kind]
	if !ok {
		return res
	}
	f := extract(a)
	res.Verdict = ch.resolve(f)
	res.Signals = ch.signals(f)
	return res
}
