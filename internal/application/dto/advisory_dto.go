package dto

import "time"

// TipDTO recomendación del asesor.
type TipDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Items       []string `json:"items,omitempty"`
}

// TipsResponse respuesta de GET /api/advisory/tips.
type TipsResponse struct {
	Tips        []TipDTO  `json:"tips"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// ChatRequest body para POST /api/advisory/chat.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Answer string `json:"answer"`
}
