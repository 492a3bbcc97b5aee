package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cleo/internal/model"
)

const (
	sessionTTL   = 30 * time.Minute
	historyLimit = 6
)

// SessionStore guarda el historial de conversación por sesión en Redis.
// Cada Append renueva el TTL: una sesión muere a los 30 minutos de
// inactividad, no 30 minutos después de abrirse.
type SessionStore struct {
	Client *redis.Client
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	val, err := s.Client.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		return nil, nil
	}

	var msgs []model.ChatMessage
	json.Unmarshal([]byte(val), &msgs)

	return msgs, nil
}

func (s *SessionStore) Append(
	ctx context.Context,
	sessionID string,
	msg model.ChatMessage,
) error {

	history, _ := s.Get(ctx, sessionID)
	history = trimHistory(append(history, msg))

	b, _ := json.Marshal(history)

	return s.Client.Set(ctx, "session:"+sessionID, b, sessionTTL).Err()
}

// trimHistory conserva solo los últimos mensajes; el contexto que se
// reinyecta a la IA es corto a propósito.
func trimHistory(history []model.ChatMessage) []model.ChatMessage {
	if len(history) > historyLimit {
		return history[len(history)-historyLimit:]
	}
	return history
}
