package occurrence

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

const day = 24 * time.Hour

// SeedOccurrences conjunto de demostración escrito en el primer arranque:
// dos de ASA_NORTE (una abierta, una en análisis), una aprobada en SIA y una rechazada en AGUAS_CLARAS.
// Las fechas son relativas a now.
func SeedOccurrences(now time.Time) []*entity.Occurrence {
	now = now.UTC()
	quality, quantity := entity.LitigationQuality, entity.LitigationQuantity

	asaOpen := &entity.Occurrence{
		ID:             "0449035006122025",
		Title:          "Produto Avariado na Entrega",
		Description:    "Cliente relatou que o produto chegou com a caixa amassada e o item quebrado.",
		ProductCode:    "3615004337761",
		ProductName:    "PNEU WESTLAKE 195 55R16 Z108 87V CR65782",
		Store:          entity.LocationAsaNorte,
		ReportedBy:     "gerente_an",
		ReportedByName: "Ana (Gerente AN)",
		Status:         entity.StatusOpen,
		CreatedAt:      now.Add(-2 * day),
		UpdatedAt:      now.Add(-2 * day),
	}
	asaOpen.ReceiptDate = ptr("2025-12-06T11:00")
	asaOpen.LogisticsUnit = ptr("CDBR")
	asaOpen.Transporter = ptr("TRANSPORTES FRAMENTO LTDA")
	asaOpen.VehiclePlate = ptr("TTN9I78")
	asaOpen.DriverName = ptr("FRAMETNO")
	asaOpen.MissionNumber = ptr("5294173")
	asaOpen.RMSCode = ptr("5186846")
	asaOpen.EANCode = ptr("3615004337761")
	asaOpen.PackType = ptr("CX")
	asaOpen.ClaimedQuantityEmb = dec(1)
	asaOpen.ClaimedValue = dec(150)
	asaOpen.LitigationType = &quality

	siaApproved := &entity.Occurrence{
		ID:               "0449035006122026",
		Title:            "Falta de Item no Pedido",
		Description:      "Pedido com 5 itens, cliente recebeu apenas 4. Conferido na entrega.",
		ProductCode:      "554433",
		ProductName:      "Kit Ferramentas Profissional",
		Store:            entity.LocationSIA,
		ReportedBy:       "gerente_sia",
		ReportedByName:   "Marcos (Gerente SIA)",
		Status:           entity.StatusApproved,
		CreatedAt:        now.Add(-5 * day),
		UpdatedAt:        now.Add(-1 * day),
		CDComments:       ptr("Verificado nas câmeras de segurança do CD, o item realmente não foi bipado na saída."),
		CDDecisionBy:     ptr("admin_cd"),
		CDDecisionByName: ptr("Carlos (Logística)"),
	}
	siaApproved.Transporter = ptr("LOG LOGISTICA")
	siaApproved.MissionNumber = ptr("555123")
	siaApproved.LitigationType = &quantity
	siaApproved.ClaimedValue = dec(450)
	siaApproved.ClaimedQuantityEmb = dec(1)

	acRejected := &entity.Occurrence{
		ID:               "0449035006122027",
		Title:            "Troca Recusada Indevidamente",
		Description:      "Cliente alega que defeito é de fábrica, loja recusou por mau uso, mas fiscalização técnica indica vício oculto.",
		ProductCode:      "998877",
		ProductName:      "Liquidificador Turbo",
		Store:            entity.LocationAguasClaras,
		ReportedBy:       "gerente_ac",
		ReportedByName:   "Julia (Gerente AC)",
		Status:           entity.StatusRejected,
		CreatedAt:        now.Add(-10 * day),
		UpdatedAt:        now.Add(-9 * day),
		CDComments:       ptr("Produto apresenta sinais claros de queda pelo cliente (plástico trincado na base). Não procede garantia."),
		CDDecisionBy:     ptr("admin_cd"),
		CDDecisionByName: ptr("Carlos (Logística)"),
	}
	acRejected.MissionNumber = ptr("999888")
	acRejected.LitigationType = &quality
	acRejected.ClaimedValue = dec(120)

	asaAnalysis := &entity.Occurrence{
		ID:             "0449035007122028",
		Title:          "Divergência de Validade",
		Description:    "Lote recebido com validade inferior a 30 dias.",
		ProductCode:    "112233",
		ProductName:    "Iogurte Natural 1L",
		Store:          entity.LocationAsaNorte,
		ReportedBy:     "gerente_an",
		ReportedByName: "Ana (Gerente AN)",
		Status:         entity.StatusInAnalysis,
		CreatedAt:      now.Add(-1 * day),
		UpdatedAt:      now.Add(-1 * day),
	}
	asaAnalysis.LitigationType = &quality
	asaAnalysis.ExpiryDate = ptr("2025-01-05")
	asaAnalysis.BatchNumber = ptr("LT9988")
	asaAnalysis.ClaimedValue = dec(800)

	return []*entity.Occurrence{asaOpen, siaApproved, acRejected, asaAnalysis}
}

func ptr(s string) *string { return &s }

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
