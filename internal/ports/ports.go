package ports

import (
	"context"

	"github.com/phishwise/phishwise/internal/domain"
)

// ChatProvider is the external assistant collaborator: send an ordered
// conversation, receive streamed assistant text. The classifier core has no
// dependency on it and never learns its implementation.
type ChatProvider interface {
	// StreamReply posts the conversation and invokes onChunk for each piece
	// of assistant text as it arrives, in order. Returning an error from
	// onChunk aborts the stream.
	StreamReply(ctx context.Context, messages []domain.ChatMessage, onChunk func(text string) error) error
}

// CorpusSource exposes the bundled example records to the application layer
type CorpusSource interface {
	Collection(kind domain.Kind) ([]domain.ExampleRecord, error)
}
