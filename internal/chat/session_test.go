package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"cleo/internal/model"
)

func TestTrimHistoryKeepsLastMessages(t *testing.T) {
	var history []model.ChatMessage
	for i := 0; i < 10; i++ {
		history = append(history, model.ChatMessage{
			Role:    "user",
			Content: fmt.Sprintf("mensaje %d", i),
		})
	}

	got := trimHistory(history)

	require.Len(t, got, historyLimit)
	require.Equal(t, "mensaje 4", got[0].Content, "se descartan los más viejos")
	require.Equal(t, "mensaje 9", got[len(got)-1].Content)
}

func TestTrimHistoryShortHistoryUntouched(t *testing.T) {
	history := []model.ChatMessage{
		{Role: "user", Content: "hola"},
		{Role: "assistant", Content: "tabla"},
	}
	require.Equal(t, history, trimHistory(history))
}
