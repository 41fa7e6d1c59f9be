package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"momentum-backend/internal/models"
)

const chatModelName = "gemini-2.0-flash"

// chatSession is the narrow slice of the Gemini chat API the resolver needs,
// so tests can run against canned responses.
type chatSession interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// sessionOpener opens one conversational session seeded with the system
// instruction, the tool catalog and the normalized prior history. A session
// lives for a single request and is discarded afterwards.
type sessionOpener func(instruction string, history []*genai.Content) chatSession

// AssistantService drives the model for one chat exchange and resolves the
// response into text plus canonical actions. It holds no per-request state.
type AssistantService struct {
	client   *genai.Client
	open     sessionOpener
	rateChan chan struct{} // Token bucket
}

// NewAssistantService builds the service. An empty API key is tolerated: the
// service constructs, and every chat attempt reports a configuration error
// instead — the rest of the backend keeps working.
func NewAssistantService(apiKey string, concurrentReqs int) (*AssistantService, error) {
	s := &AssistantService{}

	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}
	s.rateChan = rateChan

	if apiKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set, assistant chat is disabled")
		return s, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	s.client = client
	s.open = s.openGeminiSession
	return s, nil
}

func (s *AssistantService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// acquireRate blocks until a rate slot is available
func (s *AssistantService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *AssistantService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Chat runs one request/response cycle: open a session, send the message,
// concatenate the text parts and map each function call into a canonical
// action. Action execution happens client-side; nothing is written here.
func (s *AssistantService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if s.open == nil {
		return nil, &ConfigError{Message: "GEMINI_API_KEY not configured"}
	}

	if err := s.acquireRate(ctx); err != nil {
		return nil, err
	}
	defer s.releaseRate()

	instruction := systemInstruction
	if req.Context != nil {
		instruction += RenderContext(req.Context)
	}

	history := historyContents(NormalizeHistory(req.ConversationHistory))

	session := s.open(instruction, history)
	resp, err := session.SendMessage(ctx, genai.Text(req.Message))
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}

	text, actions := resolveParts(resp)

	if strings.TrimSpace(text) == "" {
		if len(actions) > 0 {
			text = actionConfirmationReply
		} else {
			text = notUnderstoodReply
		}
	}

	return &models.ChatResponse{Message: text, Actions: actions}, nil
}

// resolveParts walks the response parts in order, concatenating text and
// mapping function calls through the action rules. An unrecognized call name
// is logged and skipped so one bad call never sinks the whole reply.
func resolveParts(resp *genai.GenerateContentResponse) (string, []models.Action) {
	var text strings.Builder
	actions := []models.Action{}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch p := part.(type) {
			case genai.Text:
				text.WriteString(string(p))
			case genai.FunctionCall:
				rule, ok := actionRules[p.Name]
				if !ok {
					log.Printf("assistant: ignoring unknown function call %q", p.Name)
					continue
				}
				actions = append(actions, rule(p.Args))
			}
		}
	}

	return text.String(), actions
}

func (s *AssistantService) openGeminiSession(instruction string, history []*genai.Content) chatSession {
	model := s.client.GenerativeModel(chatModelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(instruction)}}
	model.Tools = assistantTools

	session := model.StartChat()
	session.History = history
	return session
}
