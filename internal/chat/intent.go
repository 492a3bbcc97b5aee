package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"cleo/internal/inventory"
)

func intentPrompt(query string) string {
	return fmt.Sprintf(`
Eres un experto en clasificar intenciones de búsqueda para un inventario de tecnología.
CAMPOS DISPONIBLES EN BD:
- categoria: (TV, Celular, Laptop, Reloj, Audífonos, Parlante, Patineta, Tablet, Accesorio, Otro)
- marca: (Samsung, Apple, HP, Lenovo, Xiaomi, Huawei, Honor, Sony, etc.)
- modelo: (Referencia específica o palabras clave del producto)

CONSULTA USUARIO: "%s"
TU TAREA: Extrae los valores para filtrar.
REGLA CRÍTICA PARA TV: Si el usuario busca pulgadas, el campo 'modelo' DEBE incluir el número seguido de comilla doble (ej: '50"').
EJEMPLOS: "iphone 15" -> {"marca": "Apple", "modelo": "iphone 15", "categoria": "Celular"}
Responde ÚNICAMENTE en JSON.
`, query)
}

// AnalyzeIntent clasifica la consulta con la IA cuando las keywords no
// alcanzaron. Devuelve un Intent vacío si la IA falla o no responde JSON.
func AnalyzeIntent(client *openai.Client, query string) inventory.Intent {
	var intent inventory.Intent

	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: "user", Content: intentPrompt(query)},
			},
			Temperature: 0,
		},
	)
	if err != nil {
		return intent
	}

	text := stripCodeFence(resp.Choices[0].Message.Content)
	json.Unmarshal([]byte(text), &intent)
	return intent
}

// stripCodeFence quita el cerco markdown (```json ... ```) que algunos
// modelos envuelven alrededor del JSON.
func stripCodeFence(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	return strings.TrimSpace(s)
}
