package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishwise/phishwise/internal/domain"
	"github.com/phishwise/phishwise/internal/domain/classify"
)

type staticCorpus struct{}

func (staticCorpus) Collection(kind domain.Kind) ([]domain.ExampleRecord, error) {
	return []domain.ExampleRecord{{ID: 1, Title: "one", Category: domain.VerdictSafe}}, nil
}

func TestAnalyze(t *testing.T) {
	svc := NewAnalysisService(classify.New(), staticCorpus{}, nil, zerolog.Nop())

	res := svc.Analyze(domain.Artifact{Kind: domain.KindDomain, Content: "secure-chase.tk"})
	assert.Equal(t, domain.VerdictPhishing, res.Verdict)
	assert.Equal(t, domain.KindDomain, res.Kind)
}

func TestStreamChat_Unconfigured(t *testing.T) {
	svc := NewAnalysisService(classify.New(), staticCorpus{}, nil, zerolog.Nop())

	assert.False(t, svc.ChatEnabled())
	err := svc.StreamChat(context.Background(), []domain.ChatMessage{{Role: "user", Content: "hi"}}, func(string) error { return nil })
	require.ErrorIs(t, err, ErrChatUnavailable)
}

func TestQuizAndExamples(t *testing.T) {
	svc := NewAnalysisService(classify.New(), staticCorpus{}, nil, zerolog.Nop())

	assert.NotEmpty(t, svc.Quiz())

	records, err := svc.Examples(domain.KindEmail)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
