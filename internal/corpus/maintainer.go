package corpus

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/phishwise/phishwise/internal/domain"
	"github.com/phishwise/phishwise/internal/domain/classify"
)

// Collections is the fixed set of corpus files the maintainer knows about
var Collections = []struct {
	File string
	Kind domain.Kind
}{
	{"emails.json", domain.KindEmail},
	{"urls.json", domain.KindURL},
	{"domains.json", domain.KindDomain},
	{"ips.json", domain.KindIP},
	{"files.json", domain.KindFile},
}

// Maintainer re-derives the verdict of every stored example record and
// patches drifted category labels in place. Because the classifier is pure
// and deterministic, a second run over the maintainer's own output is
// always a no-op.
type Maintainer struct {
	classifier *classify.Classifier
	log        zerolog.Logger
}

func NewMaintainer(classifier *classify.Classifier, log zerolog.Logger) *Maintainer {
	return &Maintainer{classifier: classifier, log: log}
}

// FixCollection reconciles one collection source against the classifier.
// Untouched records survive byte-identical; only drifted category values
// (and missing category fields) are rewritten.
func (m *Maintainer) FixCollection(kind domain.Kind, src []byte) ([]byte, []Change, error) {
	spans, err := splitRecords(src)
	if err != nil {
		return nil, nil, err
	}

	var changes []Change
	out := make([]byte, 0, len(src))
	prev := 0

	for _, sp := range spans {
		block := src[sp.start:sp.end]
		artifact := domain.Artifact{
			Kind:        kind,
			Content:     stringField(block, "content"),
			FileName:    stringField(block, "fileName"),
			FileType:    stringField(block, "fileType"),
			Description: stringField(block, "description"),
		}
		verdict := m.classifier.Resolve(artifact)

		stored := ""
		if cm := categoryRe.FindSubmatch(block); cm != nil {
			stored = string(cm[1])
		}

		if stored == string(verdict) {
			continue
		}

		patched := patchCategory(block, verdict)
		if string(patched) == string(block) {
			// no anchor for insertion; treat as unparsable and move on
			continue
		}
		out = append(out, src[prev:sp.start]...)
		out = append(out, patched...)
		prev = sp.end

		changes = append(changes, Change{ID: recordID(block), Old: stored, New: verdict})
	}

	if len(changes) == 0 {
		return src, nil, nil
	}
	out = append(out, src[prev:]...)
	return out, changes, nil
}

// Run repairs every known collection under dir. Failures are per-collection:
// a missing or malformed file is logged and skipped, the rest still run.
// A collection file is only rewritten when at least one record changed.
func (m *Maintainer) Run(dir string) {
	for _, col := range Collections {
		path := filepath.Join(dir, col.File)
		src, err := os.ReadFile(path)
		if err != nil {
			m.log.Error().Err(err).Str("collection", col.File).Msg("skipping unreadable collection")
			continue
		}

		fixed, changes, err := m.FixCollection(col.Kind, src)
		if err != nil {
			if errors.Is(err, ErrMalformed) {
				m.log.Error().Str("collection", col.File).Msg("skipping malformed collection")
			} else {
				m.log.Error().Err(err).Str("collection", col.File).Msg("skipping collection")
			}
			continue
		}

		for _, ch := range changes {
			m.log.Info().Msgf("%s %s", col.File, ch)
		}

		if len(changes) == 0 {
			m.log.Info().Str("collection", col.File).Msg("No changes")
			continue
		}

		if err := os.WriteFile(path, fixed, 0o644); err != nil {
			m.log.Error().Err(err).Str("collection", col.File).Msg("failed to write collection")
			continue
		}
		m.log.Info().Str("collection", col.File).Int("records", len(changes)).Msg("Updated")
	}
}
