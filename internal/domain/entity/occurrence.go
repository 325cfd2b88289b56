package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Occurrence ocorrência (litigio) reportada por una loja y resuelta por el CD.
//
// ID, Store, ReportedBy y CreatedAt se escriben una sola vez. Los campos de decisión
// (CDComments, CDDecisionBy, CDDecisionByName) existen si y solo si el estado es terminal.
type Occurrence struct {
	ID             string // protocolo
	Title          string
	Description    string // observações; obligatoria
	ProductCode    string // EAN/RMS genérico
	ProductName    string
	Store          Location
	ReportedBy     string
	ReportedByName string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	CDComments       *string
	CDDecisionBy     *string
	CDDecisionByName *string
	AIAnalysis       *string

	OccurrenceDetails
}

// OccurrenceDetails campos descriptivos opcionales del formulario de litigio.
// Son opacos para la política de acceso: nil = no informado, "" = informado vacío.
type OccurrenceDetails struct {
	// Logística
	ReceiptDate        *string `json:"receipt_date,omitempty"`
	LogisticsUnit      *string `json:"logistics_unit,omitempty"`
	ConjugatedDelivery *string `json:"conjugated_delivery,omitempty"` // S/N
	ConjugatedStores   *string `json:"conjugated_stores,omitempty"`

	// Transporte
	VehiclePlate *string `json:"vehicle_plate,omitempty"`
	DriverName   *string `json:"driver_name,omitempty"`
	Transporter  *string `json:"transporter,omitempty"`
	Seal1        *string `json:"seal1,omitempty"`
	Seal2        *string `json:"seal2,omitempty"`
	Seal3        *string `json:"seal3,omitempty"`

	// Personas
	ClaimantID   *string `json:"claimant_id,omitempty"`
	ClaimantName *string `json:"claimant_name,omitempty"`
	CheckerID    *string `json:"checker_id,omitempty"`
	CheckerName  *string `json:"checker_name,omitempty"`
	FiscalID     *string `json:"fiscal_id,omitempty"`
	FiscalName   *string `json:"fiscal_name,omitempty"`

	// Documentación
	IssueDate          *string `json:"issue_date,omitempty"`
	MissionNumber      *string `json:"mission_number,omitempty"`
	InvoiceNumber      *string `json:"invoice_number,omitempty"`
	SupportNumber      *string `json:"support_number,omitempty"`
	InventoryNumber    *string `json:"inventory_number,omitempty"`
	IsInventoryOpen    *string `json:"is_inventory_open,omitempty"`
	InventoryCloseDate *string `json:"inventory_close_date,omitempty"`

	// Producto
	RMSCode         *string          `json:"rms_code,omitempty"`
	EANCode         *string          `json:"ean_code,omitempty"`
	PackType        *string          `json:"pack_type,omitempty"` // EMB
	PackQuantity    *int             `json:"pack_quantity,omitempty"`
	PCB             *int             `json:"pcb,omitempty"`
	TotalQuantity   *decimal.Decimal `json:"total_quantity,omitempty"`
	TotalValueNoTax *decimal.Decimal `json:"total_value_no_tax,omitempty"` // S/ICMS
	TotalValueTax   *decimal.Decimal `json:"total_value_tax,omitempty"`    // C/ICMS

	// Litigio
	LitigationType      *LitigationType  `json:"litigation_type,omitempty"`
	ClaimedQuantityEmb  *decimal.Decimal `json:"claimed_quantity_emb,omitempty"`
	ClaimedQuantityUnit *decimal.Decimal `json:"claimed_quantity_unit,omitempty"` // UN/KG
	ClaimedValue        *decimal.Decimal `json:"claimed_value,omitempty"`

	// Calidad
	BatchNumber     *string `json:"batch_number,omitempty"`
	ManufactureDate *string `json:"manufacture_date,omitempty"`
	ExpiryDate      *string `json:"expiry_date,omitempty"`
}

// OccurrenceDraft datos parciales para crear una ocorrência. El Store asigna ID,
// estado y marcas de tiempo; los demás campos llegan del formulario tal cual.
type OccurrenceDraft struct {
	Title          string
	Description    string
	ProductCode    string
	ProductName    string
	Store          Location
	ReportedBy     string
	ReportedByName string
	AIAnalysis     *string

	OccurrenceDetails
}

// HasDecision true si la ocorrência lleva autor de la decisión del CD.
func (o *Occurrence) HasDecision() bool {
	return o.CDDecisionBy != nil && o.CDDecisionByName != nil
}

// CheckDecisionInvariant verifica que estado terminal ⇔ decisión registrada.
func (o *Occurrence) CheckDecisionInvariant() error {
	terminal := o.Status.IsTerminal()
	switch {
	case terminal && !o.HasDecision():
		return fmt.Errorf("ocorrência %s en estado %s sin autor de la decisión", o.ID, o.Status)
	case !terminal && (o.CDDecisionBy != nil || o.CDDecisionByName != nil || o.CDComments != nil):
		return fmt.Errorf("ocorrência %s en estado %s con datos de decisión", o.ID, o.Status)
	}
	return nil
}

// Clone copia superficial; los punteros se comparten y nunca se modifican en sitio.
func (o *Occurrence) Clone() *Occurrence {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// ClaimedAmount valor reclamado o cero si no fue informado.
func (o *Occurrence) ClaimedAmount() decimal.Decimal {
	if o.ClaimedValue == nil {
		return decimal.Zero
	}
	return *o.ClaimedValue
}
