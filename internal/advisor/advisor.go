// Package advisor wraps the generative-language service that turns free-text
// chat into advice plus, when the user mentions money, an inferred
// transaction. Every failure degrades to a fixed in-persona reply: Advise
// never returns an error.
package advisor

import (
	"context"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// InferredTransaction is a transaction the service extracted from the
// user's message. Category is drawn from models.Categories.
type InferredTransaction struct {
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Kind        models.TransactionKind `json:"type"`
}

// Advice is the service's reply for one user turn.
type Advice struct {
	Reply       string               `json:"reply"`
	Transaction *InferredTransaction `json:"transaction,omitempty"`
}

// Advisor is the capability the chat handler depends on. Stub it in tests.
type Advisor interface {
	Advise(ctx context.Context, message string, history []models.ChatMessage) Advice
}

// Fixed fallback replies, surfaced to the user as ordinary chat messages.
const (
	FallbackMissingKey = "A Joia da Mente (API Key) está faltando. Não posso funcionar sem poder."
	FallbackError      = "O universo está desequilibrado. Não consegui processar essa requisição. (Erro de API)"
)
