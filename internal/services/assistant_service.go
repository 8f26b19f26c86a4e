// File: internal/services/assistant_service.go
package services

import (
	"context"
	"sync"

	"github.com/visionary-ai/medassist/internal/domain"
	"github.com/visionary-ai/medassist/internal/repository/chat"
	"github.com/visionary-ai/medassist/internal/repository/message"
	"github.com/visionary-ai/medassist/internal/services/ai"
	"github.com/visionary-ai/medassist/internal/services/location"
	"github.com/visionary-ai/medassist/internal/services/provider"
	"github.com/visionary-ai/medassist/internal/services/summary"
	"github.com/visionary-ai/medassist/internal/services/taxonomy"
)

// CareOptions is the find-care outcome: the resolved specialty, the location
// the search ran against, and the provider list with its map viewport.
type CareOptions struct {
	Specialty taxonomy.Match          `json:"specialty"`
	Location  location.Resolved       `json:"location"`
	Providers []domain.ProviderRecord `json:"providers"`
	Viewport  *domain.MapViewport     `json:"viewport,omitempty"`
}

// AssistantService orchestrates the consultation core: message persistence,
// the per-conversation summary engines, and the specialty-to-provider
// pipeline behind "find care near me".
type AssistantService struct {
	chatRepo    chat.ChatRepository
	messageRepo message.MessageRepository
	aiProvider  ai.CompletionProvider
	matcher     *taxonomy.Matcher
	discovery   *provider.Discovery
	resolver    *location.Resolver
	summaryCfg  *summary.Config
	logger      Logger

	mu      sync.Mutex
	engines map[string]*summary.Engine
}

func NewAssistantService(
	chatRepo chat.ChatRepository,
	messageRepo message.MessageRepository,
	aiProvider ai.CompletionProvider,
	matcher *taxonomy.Matcher,
	discovery *provider.Discovery,
	resolver *location.Resolver,
	summaryCfg *summary.Config,
	logger Logger,
) (*AssistantService, error) {
	if chatRepo == nil {
		return nil, NewValidationError("constructor", "chat repository is required")
	}
	if messageRepo == nil {
		return nil, NewValidationError("constructor", "message repository is required")
	}
	if aiProvider == nil {
		return nil, NewValidationError("constructor", "AI provider is required")
	}
	if matcher == nil {
		return nil, NewValidationError("constructor", "taxonomy matcher is required")
	}
	if discovery == nil {
		return nil, NewValidationError("constructor", "provider discovery is required")
	}
	if resolver == nil {
		return nil, NewValidationError("constructor", "location resolver is required")
	}
	if err := summaryCfg.Validate(); err != nil {
		return nil, NewValidationError("config", err.Error())
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &AssistantService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		aiProvider:  aiProvider,
		matcher:     matcher,
		discovery:   discovery,
		resolver:    resolver,
		summaryCfg:  summaryCfg,
		logger:      logger,
		engines:     make(map[string]*summary.Engine),
	}, nil
}

// CreateChat opens a new consultation thread for the user.
func (s *AssistantService) CreateChat(ctx context.Context, userID uint, category, title string) (*domain.Chat, error) {
	return s.chatRepo.Create(ctx, &domain.Chat{UserID: userID, Category: category, Title: title})
}

// Chats lists the user's consultation threads, most recently active first.
func (s *AssistantService) Chats(ctx context.Context, userID uint) ([]domain.Chat, error) {
	return s.chatRepo.FindByUserID(ctx, userID)
}

// SetPostalCode validates and persists a user-entered ZIP, returning the
// resolved location with its display label.
func (s *AssistantService) SetPostalCode(ctx context.Context, userID uint, postalCode string) (location.Resolved, error) {
	return s.resolver.ResolveManual(ctx, userID, postalCode)
}

// SendUserMessage appends a user message to the conversation and notifies the
// summary engine with the fresh snapshot. An image without text is stored
// under the placeholder marker so the transcript keeps its position.
func (s *AssistantService) SendUserMessage(ctx context.Context, chatID, content, imageRef string) (*domain.Message, error) {
	if content == "" && imageRef != "" {
		content = domain.ImagePlaceholder
	}
	return s.appendMessage(ctx, &domain.Message{
		ChatID:      chatID,
		Role:        domain.MessageRoleUser,
		AuthorLabel: "You",
		Content:     content,
		ImageRef:    imageRef,
	})
}

// AddAssistantMessage records a responder message. AuthorLabel carries the
// responder's display name.
func (s *AssistantService) AddAssistantMessage(ctx context.Context, chatID, authorLabel, content string) (*domain.Message, error) {
	return s.appendMessage(ctx, &domain.Message{
		ChatID:      chatID,
		Role:        domain.MessageRoleAssistant,
		AuthorLabel: authorLabel,
		Content:     content,
	})
}

func (s *AssistantService) appendMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	created, err := s.messageRepo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	// The engine only reacts to a grown snapshot, so a failed read here just
	// delays summarization until the next append.
	snapshot, snapErr := s.messageRepo.FindByChatID(ctx, msg.ChatID)
	if snapErr != nil {
		s.logger.Warn("could not load snapshot after append", "chat_id", msg.ChatID, "error", snapErr)
		return created, nil
	}
	s.engineFor(msg.ChatID).Observe(snapshot)

	return created, nil
}

// Messages returns the ordered transcript of a conversation.
func (s *AssistantService) Messages(ctx context.Context, chatID string) ([]domain.Message, error) {
	return s.messageRepo.FindByChatID(ctx, chatID)
}

// Summary returns the conversation's current clinical summary. Before the
// first generation completes this is the default summary, never an error.
func (s *AssistantService) Summary(chatID string) domain.ConversationSummary {
	return s.engineFor(chatID).Summary()
}

// FindCare resolves the user's location automatically (stored postal code,
// then device) and runs the care search. A location permission refusal
// surfaces unchanged so the caller can collect a manual ZIP.
func (s *AssistantService) FindCare(ctx context.Context, userID uint, chatID string) (*CareOptions, error) {
	resolved, err := s.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.findCareAt(ctx, chatID, resolved)
}

// FindCareAtPostalCode runs the care search against a user-entered ZIP.
func (s *AssistantService) FindCareAtPostalCode(ctx context.Context, userID uint, chatID, postalCode string) (*CareOptions, error) {
	resolved, err := s.resolver.ResolveManual(ctx, userID, postalCode)
	if err != nil {
		return nil, err
	}
	return s.findCareAt(ctx, chatID, resolved)
}

func (s *AssistantService) findCareAt(ctx context.Context, chatID string, resolved location.Resolved) (*CareOptions, error) {
	ch, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	current := s.engineFor(chatID).Summary()
	match, err := s.matcher.Resolve(current.Specialty, ch.Category)
	if err != nil {
		return nil, err
	}

	providers, viewport, err := s.discovery.FindProviders(ctx, specialtyQuery(match), provider.Location{
		PostalCode: resolved.PostalCode,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("care search completed",
		"chat_id", chatID,
		"specialty", specialtyQuery(match),
		"providers", len(providers))

	return &CareOptions{
		Specialty: match,
		Location:  resolved,
		Providers: providers,
		Viewport:  viewport,
	}, nil
}

// specialtyQuery picks the directory search term for a taxonomy match: the
// specialization description when present, otherwise the classification.
func specialtyQuery(match taxonomy.Match) string {
	if match.Specialization != "" {
		return match.Specialization
	}
	return match.Classification
}

// DeleteChat removes the thread, its messages, and its engine.
func (s *AssistantService) DeleteChat(ctx context.Context, chatID string, userID uint) error {
	if err := s.chatRepo.Delete(ctx, chatID, userID); err != nil {
		return err
	}
	if err := s.messageRepo.DeleteByChatID(ctx, chatID); err != nil {
		s.logger.Warn("chat deleted but messages remain", "chat_id", chatID, "error", err)
	}
	s.closeEngine(chatID)
	return nil
}

// CloseChat tears down the conversation's engine without touching storage.
// Reopening the chat rebuilds the engine from the stored transcript.
func (s *AssistantService) CloseChat(chatID string) {
	s.closeEngine(chatID)
}

// Shutdown closes every live engine. In-flight generations finish but their
// results are discarded.
func (s *AssistantService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, engine := range s.engines {
		engine.Close()
		delete(s.engines, id)
	}
}

// engineFor returns the conversation's summary engine, creating it on first
// touch. Config validation already happened in the constructor, so engine
// construction cannot fail here.
func (s *AssistantService) engineFor(chatID string) *summary.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engine, ok := s.engines[chatID]; ok {
		return engine
	}

	engine, err := summary.NewEngine(s.aiProvider, summary.NewTimerScheduler(), s.summaryCfg, s.logger)
	if err != nil {
		s.logger.Error("summary engine construction failed", "chat_id", chatID, "error", err)
		engine, _ = summary.NewEngine(s.aiProvider, summary.NewTimerScheduler(), summary.DefaultConfig(), s.logger)
	}
	s.engines[chatID] = engine
	return engine
}

func (s *AssistantService) closeEngine(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if engine, ok := s.engines[chatID]; ok {
		engine.Close()
		delete(s.engines, chatID)
	}
}
