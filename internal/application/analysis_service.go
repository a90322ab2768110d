package application

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/phishwise/phishwise/internal/domain"
	"github.com/phishwise/phishwise/internal/domain/assessment"
	"github.com/phishwise/phishwise/internal/domain/classify"
	"github.com/phishwise/phishwise/internal/ports"
)

// ErrChatUnavailable is returned when no chat provider is configured
var ErrChatUnavailable = errors.New("chat assistant is not configured")

// AnalysisService orchestrates classification, the example corpus, the
// self-assessment and the chat relay for the API layer.
//
// The chat provider may be nil (no API key configured); everything else
// keeps working and chat requests fail with ErrChatUnavailable.
type AnalysisService struct {
	classifier *classify.Classifier
	corpus     ports.CorpusSource
	chat       ports.ChatProvider
	log        zerolog.Logger
}

func NewAnalysisService(classifier *classify.Classifier, corpus ports.CorpusSource, chat ports.ChatProvider, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{classifier: classifier, corpus: corpus, chat: chat, log: log}
}

// Analyze classifies a user-submitted artifact
func (s *AnalysisService) Analyze(a domain.Artifact) domain.AnalysisResult {
	res := s.classifier.Analyze(a)
	s.log.Debug().
		Str("kind", string(a.Kind)).
		Str("verdict", string(res.Verdict)).
		Int("signals", len(res.Signals)).
		Msg("artifact analyzed")
	return res
}

// Examples returns the bundled training records for one artifact kind
func (s *AnalysisService) Examples(kind domain.Kind) ([]domain.ExampleRecord, error) {
	return s.corpus.Collection(kind)
}

// Quiz returns the awareness quiz battery
func (s *AnalysisService) Quiz() []domain.QuizQuestion {
	return domain.QuizQuestions()
}

// ScoreAssessment scores a self-assessment submission
func (s *AnalysisService) ScoreAssessment(answers []int) (assessment.Result, error) {
	return assessment.Score(answers)
}

// ChatEnabled reports whether an assistant provider is configured
func (s *AnalysisService) ChatEnabled() bool {
	return s.chat != nil
}

// StreamChat relays a conversation to the assistant and forwards each chunk
func (s *AnalysisService) StreamChat(ctx context.Context, messages []domain.ChatMessage, onChunk func(text string) error) error {
	if s.chat == nil {
		return ErrChatUnavailable
	}
	return s.chat.StreamReply(ctx, messages, onChunk)
}
