package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishwise/phishwise/internal/domain"
	"github.com/phishwise/phishwise/internal/domain/classify"
)

const driftedURLs = `[
  {
    "id": 1,
    "title": "Shortened link",
    "category": "safe",
    "content": "https://bit.ly/abc123",
    "description": "shortened link of unknown destination"
  },
  {
    "id": 2,
    "title": "Encyclopedia article",
    "content": "https://www.wikipedia.org/wiki/Email_spoofing",
    "description": "well-known destination"
  },
  {
    "id": 3,
    "title": "Credential-style path",
    "category": "suspicious",
    "content": "https://portal.example.com/account/update",
    "description": "credential-keyword path"
  }
]
`

func newMaintainer() *Maintainer {
	return NewMaintainer(classify.New(), zerolog.Nop())
}

func TestFixCollection_RepairsDriftedLabels(t *testing.T) {
	m := newMaintainer()

	fixed, changes, err := m.FixCollection(domain.KindURL, []byte(driftedURLs))
	require.NoError(t, err)
	require.Len(t, changes, 2)

	assert.Equal(t, Change{ID: 1, Old: "safe", New: domain.VerdictPhishing}, changes[0])
	assert.Equal(t, Change{ID: 2, Old: "", New: domain.VerdictSafe}, changes[1])

	assert.Contains(t, string(fixed), `"category": "phishing"`)

	// the missing category is inserted right after the id field
	assert.Contains(t, string(fixed), "\"id\": 2,\n    \"category\": \"safe\",\n    \"title\"")

	// the already-correct record survives byte-identical
	original := `{
    "id": 3,
    "title": "Credential-style path",
    "category": "suspicious",
    "content": "https://portal.example.com/account/update",
    "description": "credential-keyword path"
  }`
	assert.Contains(t, string(fixed), original)
}

func TestFixCollection_Idempotent(t *testing.T) {
	m := newMaintainer()

	once, changes, err := m.FixCollection(domain.KindURL, []byte(driftedURLs))
	require.NoError(t, err)
	require.NotEmpty(t, changes)

	twice, changes, err := m.FixCollection(domain.KindURL, once)
	require.NoError(t, err)
	assert.Empty(t, changes, "second pass must be a no-op")
	assert.Equal(t, string(once), string(twice))
}

func TestFixCollection_NoChangesReturnsSourceUnchanged(t *testing.T) {
	m := newMaintainer()

	clean := `[
  {
    "id": 7,
    "title": "Article",
    "category": "safe",
    "content": "https://www.wikipedia.org/wiki/DNS",
    "description": "reference material"
  }
]
`
	out, changes, err := m.FixCollection(domain.KindURL, []byte(clean))
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Equal(t, clean, string(out))
}

func TestFixCollection_BogusStoredCategory(t *testing.T) {
	m := newMaintainer()

	// a stored value outside the verdict set is reported as a transition
	// from that exact value, not as a fresh insertion
	bogus := `[
  {
    "id": 5,
    "title": "Mislabelled article",
    "category": "unknown",
    "content": "https://www.wikipedia.org/wiki/DNS",
    "description": "reference material"
  }
]
`
	fixed, changes, err := m.FixCollection(domain.KindURL, []byte(bogus))
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, Change{ID: 5, Old: "unknown", New: domain.VerdictSafe}, changes[0])
	assert.Equal(t, "5: unknown -> safe", changes[0].String())
	assert.Contains(t, string(fixed), `"category": "safe"`)
}

func TestFixCollection_Malformed(t *testing.T) {
	m := newMaintainer()

	_, _, err := m.FixCollection(domain.KindURL, []byte(`{"not": "a list"`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFixCollection_PermissiveOnPartialRecords(t *testing.T) {
	m := newMaintainer()

	// record without content fields still resolves (toward safe) and gets a label
	partial := `[
  {
    "id": 9,
    "title": "Nothing else"
  }
]
`
	fixed, changes, err := m.FixCollection(domain.KindEmail, []byte(partial))
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.VerdictSafe, changes[0].New)
	assert.Contains(t, string(fixed), `"category": "safe"`)
}

func TestFixCollection_EscapedContent(t *testing.T) {
	m := newMaintainer()

	// escaped quotes and braces inside content must not break segmentation
	escaped := `[
  {
    "id": 4,
    "title": "Escapes",
    "category": "safe",
    "content": "she said \"act now and verify your account\" {urgently}",
    "description": "quoted lure"
  }
]
`
	_, changes, err := m.FixCollection(domain.KindEmail, []byte(escaped))
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.VerdictPhishing, changes[0].New)
}

func TestRun_SkipsBadCollectionsAndFixesRest(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "urls.json"), []byte(driftedURLs), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "emails.json"), []byte(`"no array here"`), 0o644))
	// domains.json, ips.json, files.json deliberately missing

	m := newMaintainer()
	m.Run(dir)

	fixed, err := os.ReadFile(filepath.Join(dir, "urls.json"))
	require.NoError(t, err)
	assert.Contains(t, string(fixed), `"category": "phishing"`)
	assert.False(t, strings.Contains(string(fixed), `"category": "safe",
    "content": "https://bit.ly/abc123"`))

	// malformed collection is left untouched
	malformed, err := os.ReadFile(filepath.Join(dir, "emails.json"))
	require.NoError(t, err)
	assert.Equal(t, `"no array here"`, string(malformed))

	// a second run writes nothing further
	before, err := os.ReadFile(filepath.Join(dir, "urls.json"))
	require.NoError(t, err)
	m.Run(dir)
	after, err := os.ReadFile(filepath.Join(dir, "urls.json"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
