package chat

import (
	"encoding/json"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"cleo/internal/inventory"
	"cleo/internal/knowledge"
	"cleo/internal/model"
	"cleo/internal/observability"
	"cleo/internal/quotas"
	"cleo/internal/specs"
)

// El fast path por keywords solo se usa cuando acota de verdad; con 100+
// coincidencias se pasa al análisis de intención por IA.
const fastPathLimit = 100

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type TipRequest struct {
	Model string `json:"model"`
	Specs string `json:"specs"`
}

type TipResponse struct {
	Tip string `json:"tip"`
}

func Handler(
	invRepo *inventory.Repository,
	quotaRepo *quotas.Repository,
	knowRepo *knowledge.Repository,
	mapping *specs.MappingService,
	session *SessionStore,
	client *openai.Client,
) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		observability.ChatRequestsTotal.Inc()

		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req)

		items, err := invRepo.List()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if len(items) == 0 {
			json.NewEncoder(w).Encode(Reply{
				Answer: "Sube un inventario para comenzar.",
			})
			return
		}

		keywords := inventory.Keywords(req.Message)
		log.Printf("[Chat] Keywords válidas: %v", keywords)

		var results []model.InventoryItem
		fastPath := false
		if len(keywords) > 0 {
			direct := inventory.Filter(items, keywords)
			if 0 < len(direct) && len(direct) < fastPathLimit {
				results = direct
				fastPath = true
			}
		}

		if !fastPath {
			intent := AnalyzeIntent(client, req.Message)
			results = inventory.ApplyIntent(items, intent)
			if len(results) == 0 && len(keywords) > 0 {
				results = inventory.Filter(items, keywords)
			}
		}

		cat, err := mapping.Catalog()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		tips, err := knowRepo.Tips()
		if err != nil {
			log.Printf("[Chat] Error cargando tips: %v", err)
			tips = map[string]string{}
		}

		contextText := inventory.FormatContext(results, cat, tips)

		history, _ := session.Get(r.Context(), req.SessionID)

		answer, err := CallLLM(
			client,
			SystemPrompt(),
			contextText,
			history,
			req.Message,
		)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		// guarda histórico
		session.Append(r.Context(), req.SessionID, model.ChatMessage{
			Role:    "user",
			Content: req.Message,
		})
		session.Append(r.Context(), req.SessionID, model.ChatMessage{
			Role:    "assistant",
			Content: answer,
		})

		plans, err := quotaRepo.Mapping()
		if err != nil {
			log.Printf("[Chat] Error cargando cuotas: %v", err)
			plans = map[string]model.QuotaPlan{}
		}

		reply := Enrich(answer, cat, plans)
		if reply.Products != nil {
			observability.TablesParsedTotal.Inc()
		}

		json.NewEncoder(w).Encode(reply)
	}
}

// TipHandler atiende POST /generate-tip.
func TipHandler(client *openai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TipRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.Model == "" {
			http.Error(w, "Falta el nombre del modelo.", 400)
			return
		}

		json.NewEncoder(w).Encode(TipResponse{
			Tip: GenerateTip(client, req.Model, req.Specs),
		})
	}
}
