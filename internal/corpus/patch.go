package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/phishwise/phishwise/internal/domain"
)

// ErrMalformed reports a collection whose start-of-list token is absent.
// The maintainer logs it and skips the collection; it is never fatal.
var ErrMalformed = errors.New("corpus: collection has no top-level array")

// Change records one category repair performed on a record. Old holds the
// stored value verbatim, whether or not it was a valid verdict; it is empty
// when the category field was absent and had to be inserted.
type Change struct {
	ID  int
	Old string
	New domain.Verdict
}

func (c Change) String() string {
	if c.Old == "" {
		return fmt.Sprintf("%d: added category %s", c.ID, c.New)
	}
	return fmt.Sprintf("%d: %s -> %s", c.ID, c.Old, c.New)
}

// span marks one top-level record object inside the collection source,
// byte offsets [start,end) covering the braces inclusive.
type span struct {
	start, end int
}

// splitRecords segments raw collection text into per-record spans. The
// scanner tracks brace depth and JSON string state, so delimiters inside
// record content never split a block. Anything between records (commas,
// whitespace, the surrounding brackets) is left alone.
func splitRecords(src []byte) ([]span, error) {
	open := bytes.IndexByte(src, '[')
	if open < 0 {
		return nil, ErrMalformed
	}

	var spans []span
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i := open + 1; i < len(src); i++ {
		c := src[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start >= 0 {
				spans = append(spans, span{start: start, end: i + 1})
				start = -1
			}
		case ']':
			if depth == 0 {
				return spans, nil
			}
		}
	}
	return spans, nil
}

// Field regexes are applied per record block. String values capture JSON
// escape sequences so unescaping can be delegated to the JSON decoder.
var (
	idRe       = regexp.MustCompile(`"id"\s*:\s*(\d+)`)
	categoryRe = regexp.MustCompile(`"category"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	stringRes  = map[string]*regexp.Regexp{
		"content":     regexp.MustCompile(`"content"\s*:\s*"((?:[^"\\]|\\.)*)"`),
		"fileName":    regexp.MustCompile(`"fileName"\s*:\s*"((?:[^"\\]|\\.)*)"`),
		"fileType":    regexp.MustCompile(`"fileType"\s*:\s*"((?:[^"\\]|\\.)*)"`),
		"description": regexp.MustCompile(`"description"\s*:\s*"((?:[^"\\]|\\.)*)"`),
	}
)

// stringField extracts and unescapes one string field from a record block.
// Missing or undecodable fields yield the empty string: a record that fails
// field extraction still gets classified from whatever data it has.
func stringField(block []byte, name string) string {
	m := stringRes[name].FindSubmatch(block)
	if m == nil {
		return ""
	}
	var out string
	if err := json.Unmarshal(append(append([]byte{'"'}, m[1]...), '"'), &out); err != nil {
		return string(m[1])
	}
	return out
}

// recordID extracts the numeric id, or -1 when absent
func recordID(block []byte) int {
	m := idRe.FindSubmatch(block)
	if m == nil {
		return -1
	}
	id := 0
	for _, d := range m[1] {
		id = id*10 + int(d-'0')
	}
	return id
}

// blockIndent returns the indentation of the line holding the id field,
// used when a category line has to be inserted.
func blockIndent(block []byte) string {
	loc := idRe.FindIndex(block)
	if loc == nil {
		return "    "
	}
	lineStart := bytes.LastIndexByte(block[:loc[0]], '\n') + 1
	indent := block[lineStart:loc[0]]
	if len(bytes.TrimLeft(indent, " \t")) != 0 {
		return "    "
	}
	return string(indent)
}

// patchCategory rewrites only the category value of one record block. When
// the field exists the value substring is replaced in place; when it is
// absent a category line is inserted directly after the id field. All
// surrounding bytes are preserved verbatim.
func patchCategory(block []byte, verdict domain.Verdict) []byte {
	if loc := categoryRe.FindSubmatchIndex(block); loc != nil {
		out := make([]byte, 0, len(block))
		out = append(out, block[:loc[2]]...)
		out = append(out, verdict...)
		out = append(out, block[loc[3]:]...)
		return out
	}

	loc := idRe.FindIndex(block)
	if loc == nil {
		// no anchor to insert after; leave the block untouched
		return block
	}
	insert := fmt.Sprintf(",\n%s%q: %q", blockIndent(block), "category", string(verdict))
	out := make([]byte, 0, len(block)+len(insert))
	out = append(out, block[:loc[1]]...)
	out = append(out, insert...)
	out = append(out, block[loc[1]:]...)
	return out
}
