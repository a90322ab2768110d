package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies which variant of artifact is being analyzed
type Kind string

const (
	KindEmail  Kind = "email"
	KindURL    Kind = "url"
	KindDomain Kind = "domain"
	KindIP     Kind = "ip"
	KindFile   Kind = "file"
)

// ParseKind validates a kind string coming from the API path
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindEmail, KindURL, KindDomain, KindIP, KindFile:
		return Kind(s), true
	}
	return "", false
}

// Verdict is the three-tier classification outcome
type Verdict string

const (
	VerdictSafe       Verdict = "safe"
	VerdictSuspicious Verdict = "suspicious"
	VerdictPhishing   Verdict = "phishing"
)

// Severity orders verdicts: safe < suspicious < phishing
func (v Verdict) Severity() int {
	switch v {
	case VerdictPhishing:
		return 2
	case VerdictSuspicious:
		return 1
	default:
		return 0
	}
}

// MaxVerdict returns the more severe of two verdicts
func MaxVerdict(a, b Verdict) Verdict {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// ParseVerdict validates a verdict string read from a corpus file
func ParseVerdict(s string) (Verdict, bool) {
	switch Verdict(s) {
	case VerdictSafe, VerdictSuspicious, VerdictPhishing:
		return Verdict(s), true
	}
	return "", false
}

// Artifact is one analyzable unit submitted for classification.
//
// Content carries the kind-specific payload: the email body for emails, the
// raw URL for urls, the bare domain name for domains and the dotted-quad
// address for ips. Files carry FileName and FileType instead. Description is
// the optional human-written note that accompanies the artifact; every field
// may be empty.
type Artifact struct {
	Kind        Kind   `json:"kind"`
	Content     string `json:"content,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	FileType    string `json:"fileType,omitempty"`
	Description string `json:"description,omitempty"`
}

// Signal records one classification rule that matched an artifact
type Signal struct {
	Name     string  `json:"name"`
	Verdict  Verdict `json:"verdict"`
	Evidence string  `json:"evidence"`
}

// AnalysisResult is the outcome of classifying a single artifact
type AnalysisResult struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	Verdict    Verdict   `json:"verdict"`
	Signals    []Signal  `json:"signals"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// ExampleRecord is one persisted entry of the bundled example corpus.
// JSON tags match the on-disk collection files; Category is optional on
// input (the maintainer inserts it) and mandatory on output.
type ExampleRecord struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Category    Verdict `json:"category,omitempty"`
	Content     string  `json:"content,omitempty"`
	FileName    string  `json:"fileName,omitempty"`
	FileType    string  `json:"fileType,omitempty"`
	Description string  `json:"description"`
	Technique   string  `json:"technique,omitempty"`
}

// Artifact converts a corpus record into the artifact the classifier consumes
func (r ExampleRecord) Artifact(kind Kind) Artifact {
	return Artifact{
		Kind:        kind,
		Content:     r.Content,
		FileName:    r.FileName,
		FileType:    r.FileType,
		Description: r.Description,
	}
}

// ChatMessage is one role-tagged turn of an assistant conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QuizQuestion is one entry of the awareness quiz. Answer indexes Options;
// the explanation is shown to the learner after answering.
type QuizQuestion struct {
	ID          int      `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
}
