// Package assessment scores the phishing-exposure self-assessment: a fixed
// battery of weighted multiple-choice questions summed into a 0-100 score
// and bucketed into five contiguous risk bands.
package assessment

import (
	"fmt"
	"math"
)

// Question is one self-assessment item. Weights holds the risk weight of
// each option, aligned by index; higher weight means riskier behavior.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Weights []int    `json:"-"`
}

// Band is one of the five risk tiers covering [0,100] with no gaps or
// overlaps: Min of each band is Max of the previous plus one.
type Band struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Label    string `json:"label"`
	Guidance string `json:"guidance"`
}

// Result is the outcome of scoring one submission
type Result struct {
	Score int  `json:"score"`
	Band  Band `json:"band"`
}

// Questions is the fixed battery. Option order runs from safest to riskiest
// habit so the weights stay monotonic within each question.
var Questions = []Question{
	{
		ID:      1,
		Prompt:  "How often do you check a sender's address before opening links in an email?",
		Options: []string{"Always", "Usually", "Sometimes", "Never"},
		Weights: []int{0, 1, 2, 4},
	},
	{
		ID:      2,
		Prompt:  "What do you do when an email urges you to act within a few hours?",
		Options: []string{"Verify through another channel", "Read it carefully first", "Usually comply if it looks official", "Act immediately"},
		Weights: []int{0, 1, 3, 4},
	},
	{
		ID:      3,
		Prompt:  "Do you reuse the same password across accounts?",
		Options: []string{"Never, I use a password manager", "Only for unimportant accounts", "For most accounts", "One password everywhere"},
		Weights: []int{0, 1, 3, 4},
	},
	{
		ID:      4,
		Prompt:  "How do you handle unexpected attachments?",
		Options: []string{"Never open them", "Confirm with the sender first", "Open if the sender looks familiar", "Open them right away"},
		Weights: []int{0, 1, 3, 4},
	},
	{
		ID:      5,
		Prompt:  "Is two-factor authentication enabled on your email account?",
		Options: []string{"Yes, with an authenticator app", "Yes, via SMS", "No, but I plan to", "No"},
		Weights: []int{0, 1, 3, 4},
	},
	{
		ID:      6,
		Prompt:  "Before entering credentials on a login page, do you check the URL?",
		Options: []string{"Always, including the domain spelling", "Usually", "Only when something looks off", "Never"},
		Weights: []int{0, 1, 3, 4},
	},
	{
		ID:      7,
		Prompt:  "What do you do with a shortened link (bit.ly, tinyurl) from an unknown sender?",
		Options: []string{"Never click it", "Expand it first", "Click if the message seems relevant", "Click it"},
		Weights: []int{0, 1, 3, 4},
	},
	{
		ID:      8,
		Prompt:  "How do you respond to messages saying you have won a prize?",
		Options: []string{"Delete and report them", "Ignore them", "Read them out of curiosity", "Follow the claim instructions"},
		Weights: []int{0, 1, 2, 4},
	},
}

// Bands partitions [0,100] into the five ordered risk tiers
var Bands = []Band{
	{Min: 0, Max: 20, Label: "minimal", Guidance: "Strong habits. Keep verifying senders and links the way you do now."},
	{Min: 21, Max: 40, Label: "low", Guidance: "Good instincts with a few gaps. Tighten attachment and link handling."},
	{Min: 41, Max: 60, Label: "moderate", Guidance: "Several risky habits. Enable two-factor auth and stop reusing passwords."},
	{Min: 61, Max: 80, Label: "elevated", Guidance: "You are an easy target for common lures. Review every habit flagged above."},
	{Min: 81, Max: 100, Label: "severe", Guidance: "Most phishing attempts would likely succeed. Change your core habits now."},
}

// maxRawScore is the sum of the highest weight of every question
func maxRawScore() int {
	total := 0
	for _, q := range Questions {
		best := 0
		for _, w := range q.Weights {
			if w > best {
				best = w
			}
		}
		total += best
	}
	return total
}

// Score sums the selected option weights and normalizes to [0,100].
// answers holds one option index per question, in battery order.
func Score(answers []int) (Result, error) {
	if len(answers) != len(Questions) {
		return Result{}, fmt.Errorf("expected %d answers, got %d", len(Questions), len(answers))
	}
	raw := 0
	for i, a := range answers {
		q := Questions[i]
		if a < 0 || a >= len(q.Weights) {
			return Result{}, fmt.Errorf("question %d: answer index %d out of range", q.ID, a)
		}
		raw += q.Weights[a]
	}
	score := int(math.Round(float64(raw) / float64(maxRawScore()) * 100))
	return Result{Score: score, Band: BandFor(score)}, nil
}

// BandFor maps a 0-100 score to its risk band. Scores outside the range are
// clamped so the function stays total.
func BandFor(score int) Band {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	for _, b := range Bands {
		if score >= b.Min && score <= b.Max {
			return b
		}
	}
	// unreachable while Bands partitions [0,100]
	return Bands[len(Bands)-1]
}
