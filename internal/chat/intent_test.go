package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	jsonBody := `{"marca": "Apple", "modelo": "iphone 15", "categoria": "Celular"}`

	require.Equal(t, jsonBody, stripCodeFence(jsonBody))
	require.Equal(t, jsonBody, stripCodeFence("```json\n"+jsonBody+"\n```"))
	require.Equal(t, jsonBody, stripCodeFence("```\n"+jsonBody+"\n```"))
	require.Equal(t, jsonBody, stripCodeFence("Claro:\n```json\n"+jsonBody+"\n```\nListo."))
}
