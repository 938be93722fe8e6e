package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// Gemini calls the Gemini API with a structured-output schema so the reply
// and the optional inferred transaction come back as one JSON document.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds the production advisor. An empty apiKey is tolerated:
// the advisor stays usable and answers every turn with the missing-key
// fallback.
func NewGemini(ctx context.Context, apiKey, model string) *Gemini {
	g := &Gemini{model: model}
	if apiKey == "" {
		return g
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.WithError(err).Warn("gemini client init failed, advisor degraded")
		return g
	}
	g.client = client
	return g
}

var adviceSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"reply": {
			Type:        genai.TypeString,
			Description: "Resposta na persona do mentor. Conselhos podem ser elaborados; confirmações de transação devem ser breves.",
		},
		"transaction": {
			Type:        genai.TypeObject,
			Nullable:    genai.Ptr(true),
			Description: "Dados da transação extraídos se o usuário mencionar gastar ou ganhar dinheiro.",
			Properties: map[string]*genai.Schema{
				"amount":      {Type: genai.TypeNumber},
				"description": {Type: genai.TypeString},
				"category": {
					Type:        genai.TypeString,
					Description: "Uma das: " + strings.Join(models.Categories, ", "),
				},
				"type": {
					Type: genai.TypeString,
					Enum: []string{string(models.KindExpense), string(models.KindIncome)},
				},
			},
		},
	},
	Required: []string{"reply"},
}

func (g *Gemini) Advise(ctx context.Context, message string, history []models.ChatMessage) Advice {
	if g.client == nil {
		return Advice{Reply: FallbackMissingKey}
	}

	contents := historyContents(history)
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: message}},
	})

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    adviceSchema,
	})
	if err != nil {
		log.WithError(err).Warn("advice request failed")
		return Advice{Reply: FallbackError}
	}

	text, err := responseText(resp)
	if err != nil {
		log.WithError(err).Warn("advice response empty")
		return Advice{Reply: FallbackError}
	}

	advice, err := parseAdvice(text)
	if err != nil {
		log.WithError(err).Warn("advice response malformed")
		return Advice{Reply: FallbackError}
	}
	return advice
}

// historyContents maps the stored chat log onto the wire roles.
func historyContents(history []models.ChatMessage) []*genai.Content {
	var contents []*genai.Content
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}
	return contents
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty response text")
	}
	return text, nil
}

// parseAdvice decodes the structured-output document. An inferred
// transaction without a usable amount or with an unknown kind is dropped
// rather than surfaced.
func parseAdvice(text string) (Advice, error) {
	var advice Advice
	if err := json.Unmarshal([]byte(text), &advice); err != nil {
		return Advice{}, fmt.Errorf("decode advice: %w", err)
	}
	if advice.Reply == "" {
		return Advice{}, fmt.Errorf("advice missing reply")
	}
	if tx := advice.Transaction; tx != nil {
		if tx.Amount <= 0 || (tx.Kind != models.KindExpense && tx.Kind != models.KindIncome) {
			advice.Transaction = nil
		} else if !models.ValidCategory(tx.Category) {
			advice.Transaction.Category = "Outros"
		}
	}
	return advice, nil
}
