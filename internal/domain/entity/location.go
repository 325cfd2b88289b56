package entity

// Location unidad de origen de una ocorrência: una loja o el centro de distribución.
type Location string

// Locales conocidos.
const (
	LocationAsaNorte    Location = "ASA_NORTE"
	LocationSIA         Location = "SIA"
	LocationAguasClaras Location = "AGUAS_CLARAS"
	LocationCD          Location = "CD"
)

// AllLocations en el orden en que se muestran en reportes.
func AllLocations() []Location {
	return []Location{LocationAsaNorte, LocationSIA, LocationAguasClaras, LocationCD}
}

// Valid indica si el local pertenece al conjunto cerrado.
func (l Location) Valid() bool {
	switch l {
	case LocationAsaNorte, LocationSIA, LocationAguasClaras, LocationCD:
		return true
	default:
		return false
	}
}

// Label nombre comercial del local.
func (l Location) Label() string {
	switch l {
	case LocationAsaNorte:
		return "CLUBE ASA NORTE"
	case LocationSIA:
		return "CLUBE SIA"
	case LocationAguasClaras:
		return "CLUBE AGUAS CLARAS"
	case LocationCD:
		return "CENTRO DE DISTRIBUIÇÃO"
	default:
		return string(l)
	}
}

// ParseLocation acepta el código (ASA_NORTE) o el nombre comercial (CLUBE ASA NORTE).
func ParseLocation(s string) (Location, bool) {
	for _, l := range AllLocations() {
		if s == string(l) || s == l.Label() {
			return l, true
		}
	}
	return "", false
}
