package entity

// Tipos de recomendación del asesor.
const (
	TipWarning = "WARNING"
	TipInfo    = "INFO"
	TipSuccess = "SUCCESS"
)

// IntelligenceTip recomendación generada por el subsistema asesor (IA).
type IntelligenceTip struct {
	Title       string
	Description string
	Type        string   // WARNING, INFO, SUCCESS
	Items       []string // nombres de artículos relacionados (opcional)
}
