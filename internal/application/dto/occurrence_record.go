package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

// OccurrenceRecord forma persistida de una ocorrência (documento SQLite y volcados del servicio).
// Los campos descriptivos se aplanan desde entity.OccurrenceDetails.
type OccurrenceRecord struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	ProductCode      string          `json:"product_code"`
	ProductName      string          `json:"product_name"`
	Store            entity.Location `json:"store"`
	ReportedBy       string          `json:"reported_by"`
	ReportedByName   string          `json:"reported_by_name"`
	Status           entity.Status   `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	CDComments       *string         `json:"cd_comments,omitempty"`
	CDDecisionBy     *string         `json:"cd_decision_by,omitempty"`
	CDDecisionByName *string         `json:"cd_decision_by_name,omitempty"`
	AIAnalysis       *string         `json:"ai_analysis,omitempty"`

	entity.OccurrenceDetails
}

// NewOccurrenceRecord copia la entidad a su forma persistida.
func NewOccurrenceRecord(o *entity.Occurrence) OccurrenceRecord {
	return OccurrenceRecord{
		ID:                o.ID,
		Title:             o.Title,
		Description:       o.Description,
		ProductCode:       o.ProductCode,
		ProductName:       o.ProductName,
		Store:             o.Store,
		ReportedBy:        o.ReportedBy,
		ReportedByName:    o.ReportedByName,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		CDComments:        o.CDComments,
		CDDecisionBy:      o.CDDecisionBy,
		CDDecisionByName:  o.CDDecisionByName,
		AIAnalysis:        o.AIAnalysis,
		OccurrenceDetails: o.OccurrenceDetails,
	}
}

// ToEntity reconstruye la entidad.
func (r OccurrenceRecord) ToEntity() *entity.Occurrence {
	return &entity.Occurrence{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		ProductCode:       r.ProductCode,
		ProductName:       r.ProductName,
		Store:             r.Store,
		ReportedBy:        r.ReportedBy,
		ReportedByName:    r.ReportedByName,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		CDComments:        r.CDComments,
		CDDecisionBy:      r.CDDecisionBy,
		CDDecisionByName:  r.CDDecisionByName,
		AIAnalysis:        r.AIAnalysis,
		OccurrenceDetails: r.OccurrenceDetails,
	}
}

// LegacyOccurrence ocorrência tal como la guardaba la aplicación web en localStorage
// (clave litigios_occurrences): camelCase, loja y estado como texto mostrado, números JSON.
type LegacyOccurrence struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ProductCode      string    `json:"productCode"`
	ProductName      string    `json:"productName"`
	Store            string    `json:"store"`
	ReportedBy       string    `json:"reportedBy"`
	ReportedByName   string    `json:"reportedByName"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	CDComments       *string   `json:"cdComments,omitempty"`
	CDDecisionBy     *string   `json:"cdDecisionBy,omitempty"`
	CDDecisionByName *string   `json:"cdDecisionByName,omitempty"`
	AIAnalysis       *string   `json:"aiAnalysis,omitempty"`

	ReceiptDate        *string `json:"receiptDate,omitempty"`
	LogisticsUnit      *string `json:"logisticsUnit,omitempty"`
	ConjugatedDelivery *string `json:"conjugatedDelivery,omitempty"`
	ConjugatedStores   *string `json:"conjugatedStores,omitempty"`

	VehiclePlate *string `json:"vehiclePlate,omitempty"`
	DriverName   *string `json:"driverName,omitempty"`
	Transporter  *string `json:"transporter,omitempty"`
	Seal1        *string `json:"seal1,omitempty"`
	Seal2        *string `json:"seal2,omitempty"`
	Seal3        *string `json:"seal3,omitempty"`

	ClaimantID   *string `json:"claimantId,omitempty"`
	ClaimantName *string `json:"claimantName,omitempty"`
	CheckerID    *string `json:"checkerId,omitempty"`
	CheckerName  *string `json:"checkerName,omitempty"`
	FiscalID     *string `json:"fiscalId,omitempty"`
	FiscalName   *string `json:"fiscalName,omitempty"`

	IssueDate          *string `json:"issueDate,omitempty"`
	MissionNumber      *string `json:"missionNumber,omitempty"`
	InvoiceNumber      *string `json:"invoiceNumber,omitempty"`
	SupportNumber      *string `json:"supportNumber,omitempty"`
	InventoryNumber    *string `json:"inventoryNumber,omitempty"`
	IsInventoryOpen    *string `json:"isInventoryOpen,omitempty"`
	InventoryCloseDate *string `json:"inventoryCloseDate,omitempty"`

	RMSCode         *string          `json:"rmsCode,omitempty"`
	EANCode         *string          `json:"eanCode,omitempty"`
	PackType        *string          `json:"packType,omitempty"`
	PackQuantity    *decimal.Decimal `json:"packQuantity,omitempty"`
	PCB             *decimal.Decimal `json:"pcb,omitempty"`
	TotalQuantity   *decimal.Decimal `json:"totalQuantity,omitempty"`
	TotalValueNoTax *decimal.Decimal `json:"totalValueNoTax,omitempty"`
	TotalValueTax   *decimal.Decimal `json:"totalValueTax,omitempty"`

	LitigationType      *entity.LitigationType `json:"litigationType,omitempty"`
	ClaimedQuantityEmb  *decimal.Decimal       `json:"claimedQuantityEmb,omitempty"`
	ClaimedQuantityUnit *decimal.Decimal       `json:"claimedQuantityUnit,omitempty"`
	ClaimedValue        *decimal.Decimal       `json:"claimedValue,omitempty"`

	BatchNumber     *string `json:"batchNumber,omitempty"`
	ManufactureDate *string `json:"manufactureDate,omitempty"`
	ExpiryDate      *string `json:"expiryDate,omitempty"`
}

// ToEntity traduce loja y estado (código o texto mostrado) y copia el resto.
// Las fechas quedan en UTC con milisegundos, la precisión de toISOString.
func (l LegacyOccurrence) ToEntity() (*entity.Occurrence, error) {
	store, ok := entity.ParseLocation(l.Store)
	if !ok {
		return nil, fmt.Errorf("ocorrência %s: loja %q desconocida", l.ID, l.Store)
	}
	status, ok := entity.ParseStatus(l.Status)
	if !ok {
		return nil, fmt.Errorf("ocorrência %s: estado %q desconocido", l.ID, l.Status)
	}
	return &entity.Occurrence{
		ID:               l.ID,
		Title:            l.Title,
		Description:      l.Description,
		ProductCode:      l.ProductCode,
		ProductName:      l.ProductName,
		Store:            store,
		ReportedBy:       l.ReportedBy,
		ReportedByName:   l.ReportedByName,
		Status:           status,
		CreatedAt:        l.CreatedAt.UTC().Truncate(time.Millisecond),
		UpdatedAt:        l.UpdatedAt.UTC().Truncate(time.Millisecond),
		CDComments:       l.CDComments,
		CDDecisionBy:     l.CDDecisionBy,
		CDDecisionByName: l.CDDecisionByName,
		AIAnalysis:       l.AIAnalysis,
		OccurrenceDetails: entity.OccurrenceDetails{
			ReceiptDate:         l.ReceiptDate,
			LogisticsUnit:       l.LogisticsUnit,
			ConjugatedDelivery:  l.ConjugatedDelivery,
			ConjugatedStores:    l.ConjugatedStores,
			VehiclePlate:        l.VehiclePlate,
			DriverName:          l.DriverName,
			Transporter:         l.Transporter,
			Seal1:               l.Seal1,
			Seal2:               l.Seal2,
			Seal3:               l.Seal3,
			ClaimantID:          l.ClaimantID,
			ClaimantName:        l.ClaimantName,
			CheckerID:           l.CheckerID,
			CheckerName:         l.CheckerName,
			FiscalID:            l.FiscalID,
			FiscalName:          l.FiscalName,
			IssueDate:           l.IssueDate,
			MissionNumber:       l.MissionNumber,
			InvoiceNumber:       l.InvoiceNumber,
			SupportNumber:       l.SupportNumber,
			InventoryNumber:     l.InventoryNumber,
			IsInventoryOpen:     l.IsInventoryOpen,
			InventoryCloseDate:  l.InventoryCloseDate,
			RMSCode:             l.RMSCode,
			EANCode:             l.EANCode,
			PackType:            l.PackType,
			PackQuantity:        intPart(l.PackQuantity),
			PCB:                 intPart(l.PCB),
			TotalQuantity:       l.TotalQuantity,
			TotalValueNoTax:     l.TotalValueNoTax,
			TotalValueTax:       l.TotalValueTax,
			LitigationType:      l.LitigationType,
			ClaimedQuantityEmb:  l.ClaimedQuantityEmb,
			ClaimedQuantityUnit: l.ClaimedQuantityUnit,
			ClaimedValue:        l.ClaimedValue,
			BatchNumber:         l.BatchNumber,
			ManufactureDate:     l.ManufactureDate,
			ExpiryDate:          l.ExpiryDate,
		},
	}, nil
}

func intPart(d *decimal.Decimal) *int {
	if d == nil {
		return nil
	}
	v := int(d.IntPart())
	return &v
}
