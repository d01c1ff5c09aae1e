package entity

import (
	"time"
)

const (
	InteractionTypeCall     = "Call"
	InteractionTypeMeeting  = "Meeting"
	InteractionTypeEmail    = "Email"
	InteractionTypeNote     = "Note"
	InteractionTypeDocument = "Document"
)

// Interaction é o registro de contato com um Lead. A FK lead_id é
// garantida pelo banco, não validada aqui.
type Interaction struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"leadId"`
	Type        string    `json:"type"` // Call, Meeting, Email, Note, Document
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Outcome     string    `json:"outcome"`
	NextSteps   string    `json:"nextSteps"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`

	// O schema também relaciona interações a partners/clients; o app só
	// usa lead_id, mas as colunas existem e são preservadas.
	PartnerID *string `json:"partnerId,omitempty"`
	ClientID  *string `json:"clientId,omitempty"`
}

func (i Interaction) EntityID() string { return i.ID }

// Interações não participam da busca textual.
func (i Interaction) SearchText() []string { return nil }

type InteractionPatch struct {
	Type        *string `json:"type,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
	Outcome     *string `json:"outcome,omitempty"`
	NextSteps   *string `json:"nextSteps,omitempty"`
}

func (i Interaction) Merge(p InteractionPatch) Interaction {
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Date != nil {
		i.Date = *p.Date
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Outcome != nil {
		i.Outcome = *p.Outcome
	}
	if p.NextSteps != nil {
		i.NextSteps = *p.NextSteps
	}
	return i
}
