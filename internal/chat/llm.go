package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"cleo/internal/model"
)

func CallLLM(
	client *openai.Client,
	systemPrompt string,
	contextText string,
	history []model.ChatMessage,
	userMessage string,
) (string, error) {

	var messages []openai.ChatCompletionMessage

	// system
	messages = append(messages,
		openai.ChatCompletionMessage{
			Role:    "system",
			Content: systemPrompt,
		},
		openai.ChatCompletionMessage{
			Role:    "system",
			Content: "CONTEXTO DE INVENTARIO:\n" + contextText,
		},
	)

	// histórico
	for _, m := range history {
		messages = append(messages,
			openai.ChatCompletionMessage{
				Role:    m.Role,
				Content: m.Content,
			},
		)
	}

	// nueva pregunta
	messages = append(messages,
		openai.ChatCompletionMessage{
			Role:    "user",
			Content: userMessage,
		},
	)

	// Log del payload con estimación de tokens (1 token ~= 4 caracteres)
	var sb strings.Builder
	for _, msg := range messages {
		sb.WriteString(fmt.Sprintf("=== ROLE: %s ===\n%s\n\n", msg.Role, msg.Content))
	}
	fullContent := sb.String()
	charCount := len(fullContent)
	tokenEstimate := charCount / 4
	log.Printf("[LLM] Enviando payload: %d caracteres | ~%d tokens estimados", charCount, tokenEstimate)

	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model:       openai.GPT4oMini,
			Messages:    messages,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", err
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateTip pide un tip de venta corto. Cae al tip genérico si la IA
// falla, igual que el flujo original de tips.
func GenerateTip(client *openai.Client, modelName, specs string) string {
	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: "user", Content: TipPrompt(modelName, specs)},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		log.Printf("[LLM] Error generando tip: %v", err)
		return DefaultTip
	}

	tip := strings.TrimSpace(resp.Choices[0].Message.Content)
	if tip == "" {
		return DefaultTip
	}
	return strings.Trim(tip, `"`)
}
