package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/growthdesk/crm-backend/internal/entity"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func sp(s string) *string { return &s }
func bp(b bool) *bool     { return &b }

// ============ TESTES DO MAPPER DE LEAD ============

// Coluna nula obrigatória vira "", opcional vira nil
func TestLeadFromRowCoalescesNulls(t *testing.T) {
	now := time.Now()
	row := leadRow{
		ID:          "l1",
		Name:        "Maria",
		CompanyName: "Acme Co",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	lead := leadFromRow(row)

	assert.Equal(t, "l1", lead.ID)
	assert.Equal(t, "Maria", lead.Name)
	assert.Equal(t, "Acme Co", lead.Company)
	assert.Equal(t, "", lead.Email)
	assert.Equal(t, "", lead.Status)
	assert.Equal(t, "", lead.Stage)
	assert.Nil(t, lead.Website)
	assert.Nil(t, lead.ProposalShared)
	assert.Nil(t, lead.Remark)
	assert.Equal(t, now, lead.CreatedAt)
}

// source nula recebe o default "Other"; valor presente passa intacto
func TestLeadFromRowSourceDefault(t *testing.T) {
	lead := leadFromRow(leadRow{ID: "1", Name: "X"})
	assert.Equal(t, entity.LeadSourceOther, lead.Source)

	lead = leadFromRow(leadRow{ID: "2", Name: "Y", Source: ns(entity.LeadSourceReferral)})
	assert.Equal(t, entity.LeadSourceReferral, lead.Source)

	// status não ganha default em lead
	assert.Equal(t, "", lead.Status)
}

func TestLeadFromRowFullRow(t *testing.T) {
	row := leadRow{
		ID:                    "l9",
		Name:                  "João",
		CompanyName:           "Beta LLC",
		Email:                 ns("joao@beta.example"),
		Mobile:                ns("+55 11 99999-0000"),
		Status:                ns(entity.LeadStatusLive),
		Source:                ns(entity.LeadSourceWebsite),
		Stage:                 ns("Qualificação"),
		NextAction:            ns("Enviar proposta"),
		NextInteractionDate:   ns("2026-09-01"),
		BDRepresentative:      ns("u1"),
		ProductsInterested:    ns("Consultoria"),
		Location:              ns("São Paulo"),
		Website:               ns("https://beta.example"),
		ProposalShared:        sql.NullBool{Bool: true, Valid: true},
		Remark:                ns("quente"),
		DateOfLastInteraction: ns("2026-08-20"),
	}

	lead := leadFromRow(row)

	assert.Equal(t, "joao@beta.example", lead.Email)
	assert.Equal(t, "+55 11 99999-0000", lead.Phone)
	assert.Equal(t, entity.LeadStatusLive, lead.Status)
	assert.Equal(t, "Qualificação", lead.Stage)
	assert.Equal(t, "2026-09-01", lead.NextActionDate)
	assert.Equal(t, "u1", lead.AssignedTo)
	assert.Equal(t, "Consultoria", *lead.ProductsInterested)
	assert.Equal(t, "https://beta.example", *lead.Website)
	assert.True(t, *lead.ProposalShared)
	assert.Equal(t, "2026-08-20", *lead.DateOfLastInteraction)
}

// Patch vazio não gera coluna nenhuma
func TestLeadPatchColumnsEmpty(t *testing.T) {
	cols, vals := leadPatchColumns(entity.LeadPatch{})
	assert.Empty(t, cols)
	assert.Empty(t, vals)
}

// Só campos presentes viram colunas, na ordem de declaração
func TestLeadPatchColumnsPartial(t *testing.T) {
	cols, vals := leadPatchColumns(entity.LeadPatch{
		Status:     sp(entity.LeadStatusClosed),
		AssignedTo: sp("u2"),
		Website:    sp("https://acme.example"),
	})

	assert.Equal(t, []string{"status", "bd_representative", "website"}, cols)
	assert.Equal(t, []any{entity.LeadStatusClosed, "u2", "https://acme.example"}, vals)
}

func TestLeadPatchColumnsBool(t *testing.T) {
	cols, vals := leadPatchColumns(entity.LeadPatch{ProposalShared: bp(false)})
	assert.Equal(t, []string{"proposal_shared"}, cols)
	assert.Equal(t, []any{false}, vals)
}

// ============ TESTES DO MAPPER DE PARTNER ============

// category nula vira "Business", status nulo vira "Active"
func TestPartnerFromRowDefaults(t *testing.T) {
	p := partnerFromRow(partnerRow{ID: "p1", CompanyName: "Alfa"})

	assert.Equal(t, "Business", p.Category)
	assert.Equal(t, entity.PartnerStatusActive, p.Status)
	assert.Equal(t, "Alfa", p.Name)
	assert.Nil(t, p.EngagementLetterSent)
}

func TestPartnerFromRowKeepsExplicitValues(t *testing.T) {
	p := partnerFromRow(partnerRow{
		ID:                   "p2",
		CompanyName:          "Beta",
		Category:             ns("Legal"),
		Status:               ns(entity.PartnerStatusInactive),
		EngagementLetterSent: sql.NullBool{Bool: false, Valid: true},
		AcceptanceStatus:     ns("Accepted"),
	})

	assert.Equal(t, "Legal", p.Category)
	assert.Equal(t, entity.PartnerStatusInactive, p.Status)
	assert.False(t, *p.EngagementLetterSent)
	assert.Equal(t, "Accepted", *p.AcceptanceStatus)
}

func TestPartnerPatchColumnsPartial(t *testing.T) {
	cols, vals := partnerPatchColumns(entity.PartnerPatch{
		Name:   sp("Gama"),
		Status: sp(entity.PartnerStatusActive),
	})

	assert.Equal(t, []string{"company_name", "status"}, cols)
	assert.Equal(t, []any{"Gama", entity.PartnerStatusActive}, vals)
}

// ============ TESTES DO MAPPER DE CLIENT ============

// end_date nula continua nula: engajamento em andamento, não string vazia
func TestClientFromRowKeepsNilEndDate(t *testing.T) {
	c := clientFromRow(clientRow{ID: "c1", Name: "Cliente A"})

	assert.Nil(t, c.EndDate)
	assert.Equal(t, entity.ClientStatusActive, c.Status)
	assert.Nil(t, c.CompanyName)
}

func TestClientFromRowWithEndDate(t *testing.T) {
	c := clientFromRow(clientRow{
		ID:          "c2",
		Name:        "Cliente B",
		CompanyName: "B Holdings",
		EndDate:     ns("2026-12-31"),
		Status:      ns(entity.ClientStatusCompleted),
	})

	assert.Equal(t, "2026-12-31", *c.EndDate)
	assert.Equal(t, entity.ClientStatusCompleted, c.Status)
	assert.Equal(t, "B Holdings", *c.CompanyName)
}

// company_name explícito vence; sem ele, name preenche company_name junto
func TestClientPatchCompanyNameFallback(t *testing.T) {
	cols, vals := clientPatchColumns(entity.ClientPatch{
		Name:        sp("Novo Nome"),
		CompanyName: sp("Razão Social"),
	})
	assert.Contains(t, cols, "company_name")
	assert.Contains(t, vals, "Razão Social")

	cols, _ = clientPatchColumns(entity.ClientPatch{Name: sp("Só Nome")})
	assert.Equal(t, []string{"name", "company_name"}, cols)

	// patch sem name nem company_name não toca company_name
	cols, _ = clientPatchColumns(entity.ClientPatch{Status: sp(entity.ClientStatusOnHold)})
	assert.NotContains(t, cols, "company_name")
}

// ============ TESTES DO MAPPER DE INTERACTION ============

func TestInteractionFromRowOptionalRefs(t *testing.T) {
	i := interactionFromRow(interactionRow{
		ID:     "i1",
		LeadID: ns("l1"),
		Type:   "Call",
		Date:   "2026-08-27",
	})

	assert.Equal(t, "l1", i.LeadID)
	assert.Nil(t, i.PartnerID)
	assert.Nil(t, i.ClientID)
	assert.Equal(t, "Call", i.Type)

	i = interactionFromRow(interactionRow{
		ID:        "i2",
		LeadID:    ns("l1"),
		PartnerID: ns("p1"),
		ClientID:  ns("c1"),
	})
	assert.Equal(t, "p1", *i.PartnerID)
	assert.Equal(t, "c1", *i.ClientID)
}

func TestInteractionPatchColumnsPartial(t *testing.T) {
	cols, vals := interactionPatchColumns(entity.InteractionPatch{
		Outcome:   sp("Positivo"),
		NextSteps: sp("Agendar reunião"),
	})

	assert.Equal(t, []string{"outcome", "next_steps"}, cols)
	assert.Equal(t, []any{"Positivo", "Agendar reunião"}, vals)
}
