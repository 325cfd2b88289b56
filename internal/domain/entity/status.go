package entity

// Status estado del ciclo de vida de una ocorrência.
//
//	OPEN ──────────────┬──> APPROVED  (terminal)
//	  │                └──> REJECTED  (terminal)
//	  └─> IN_ANALYSIS ─┘
//
// IN_ANALYSIS solo llega por datos sembrados o importados; ninguna operación lo produce.
type Status string

// Estados de una ocorrência.
const (
	StatusOpen       Status = "OPEN"
	StatusInAnalysis Status = "IN_ANALYSIS"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

// AllStatuses en orden de ciclo de vida.
func AllStatuses() []Status {
	return []Status{StatusOpen, StatusInAnalysis, StatusApproved, StatusRejected}
}

// Valid indica si el estado pertenece al conjunto cerrado.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInAnalysis, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal true para APPROVED y REJECTED (resolución ya registrada).
func (s Status) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Label texto del estado tal como lo ven los usuarios.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "ABERTO"
	case StatusInAnalysis:
		return "EM ANÁLISE"
	case StatusApproved:
		return "PROCEDENTE"
	case StatusRejected:
		return "NÃO PROCEDENTE"
	default:
		return string(s)
	}
}

// LitigationType clasificación del litigio.
type LitigationType string

// Tipos de litigio.
const (
	LitigationQuantity LitigationType = "QUANTIDADE"
	LitigationQuality  LitigationType = "QUALIDADE"
)

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t LitigationType) Valid() bool {
	return t == LitigationQuantity || t == LitigationQuality
}

// ParseStatus acepta el código (APPROVED) o el texto mostrado (PROCEDENTE).
func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses() {
		if s == string(st) || s == st.Label() {
			return st, true
		}
	}
	return "", false
}
