package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"restavo/internal/logger"
	"restavo/internal/model"
)

var (
	// ErrAIDisabled means no completion service is configured.
	ErrAIDisabled = errors.New("AI features are not configured")
	// ErrUpstream collapses any completion-service failure into one generic
	// error; no partial data is surfaced to callers.
	ErrUpstream = errors.New("completion service unavailable")
)

const chatAcknowledgement = "Understood. I will only recommend hotels from the available list."

// Completer is the external text-completion service: a role-tagged
// transcript plus a new prompt in, generated text out. No determinism or
// retry policy is assumed; any error is fail-fast.
type Completer interface {
	Converse(ctx context.Context, history []model.ChatTurn, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) ([]byte, error)
}

// ChatService grounds the assistant in current inventory and keeps one
// transcript per caller session.
type ChatService interface {
	Chat(ctx context.Context, sessionID, prompt string) (string, error)
	AnalyzeBooking(ctx context.Context, userID int, bookingID int64) (json.RawMessage, error)
}

type chatService struct {
	hotels    HotelService
	bookings  BookingService
	completer Completer
	log       *logger.Logger

	mu          sync.Mutex
	transcripts map[string][]model.ChatTurn
}

// NewChatService creates a new ChatService. A nil completer disables the
// AI endpoints without taking the rest of the application down.
func NewChatService(hotels HotelService, bookings BookingService, completer Completer, log *logger.Logger) ChatService {
	return &chatService{
		hotels:      hotels,
		bookings:    bookings,
		completer:   completer,
		log:         log,
		transcripts: make(map[string][]model.ChatTurn),
	}
}

func buildSystemInstruction(inventory string) string {
	return fmt.Sprintf(`You are the assistant for the "Restavo" hotel-booking application.

Strict rule: you have a fixed list of hotels supported by the application. You must suggest and answer based on this list only. Never invent hotels and never suggest external booking sites.

Available hotels:
%s

Additional instructions:
1. If the user asks about a city on the list, suggest the available options and mention the price.
2. If the user asks about a city not on the list, apologize politely and say we do not serve that city yet.
3. Keep answers helpful and short.`, inventory)
}

// Chat sends one turn on the session's transcript. The transcript is rebuilt
// from scratch whenever its leading grounding turn no longer matches the
// freshly built instruction, i.e. whenever the inventory context changed.
func (s *chatService) Chat(ctx context.Context, sessionID, prompt string) (string, error) {
	if s.completer == nil {
		return "", ErrAIDisabled
	}

	instruction := buildSystemInstruction(s.hotels.InventoryContext(ctx))

	s.mu.Lock()
	history := s.transcripts[sessionID]
	if len(history) == 0 || history[0].Text != instruction {
		history = []model.ChatTurn{
			{Role: model.ChatRoleUser, Text: instruction},
			{Role: model.ChatRoleModel, Text: chatAcknowledgement},
		}
	}
	// Work on a copy so a failed completion never mutates the stored transcript
	history = append([]model.ChatTurn(nil), history...)
	s.mu.Unlock()

	reply, err := s.completer.Converse(ctx, history, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("session", sessionID).Msg("chat completion failed")
		return "", ErrUpstream
	}

	history = append(history,
		model.ChatTurn{Role: model.ChatRoleUser, Text: prompt},
		model.ChatTurn{Role: model.ChatRoleModel, Text: reply},
	)

	s.mu.Lock()
	s.transcripts[sessionID] = history
	s.mu.Unlock()

	return reply, nil
}

// AnalyzeBooking asks the completion service for a structured JSON analysis
// of one of the caller's bookings. The remote JSON is relayed as-is; only
// well-formedness is checked, not its shape.
func (s *chatService) AnalyzeBooking(ctx context.Context, userID int, bookingID int64) (json.RawMessage, error) {
	if s.completer == nil {
		return nil, ErrAIDisabled
	}

	booking, err := s.bookings.GetByID(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Analyze a hotel booking at %s in %s for a price of %.2f. Respond with a JSON object with these fields: title, price_analysis, activity_suggestions (a list of {name, reason} objects), summary.",
		booking.HotelName, booking.City, booking.Price,
	)

	raw, err := s.completer.GenerateJSON(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Int64("booking_id", bookingID).Msg("booking analysis failed")
		return nil, ErrUpstream
	}
	if !json.Valid(raw) {
		s.log.Error().Int64("booking_id", bookingID).Msg("booking analysis returned malformed JSON")
		return nil, ErrUpstream
	}

	return json.RawMessage(raw), nil
}
