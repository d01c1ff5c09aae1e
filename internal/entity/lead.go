package entity

import (
	"time"
)

// Status do Lead
const (
	LeadStatusLive   = "Live"
	LeadStatusClosed = "Closed"
	LeadStatusLost   = "Lost"
)

// Origem do Lead. "Other" é o default aplicado pelo mapper quando a coluna vem nula.
const (
	LeadSourceWebsite  = "Website"
	LeadSourceReferral = "Referral"
	LeadSourceColdCall = "Cold Call"
	LeadSourceEvent    = "Event"
	LeadSourcePartner  = "Partner"
	LeadSourceOther    = "Other"
)

type Lead struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Company        string    `json:"company"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Status         string    `json:"status"` // Live, Closed, Lost
	Source         string    `json:"source"` // Website, Referral, Cold Call, Event, Partner, Other
	Stage          string    `json:"stage"`
	NextAction     string    `json:"nextAction"`
	NextActionDate string    `json:"nextActionDate"`
	AssignedTo     string    `json:"assignedTo"` // User.ID, resolvido pela Directory
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Campos opcionais (ausentes quando nulos no banco)
	ProductsInterested    *string `json:"productsInterested,omitempty"`
	Location              *string `json:"location,omitempty"`
	Website               *string `json:"website,omitempty"`
	ProposalShared        *bool   `json:"proposalShared,omitempty"`
	Remark                *string `json:"remark,omitempty"`
	DateOfLastInteraction *string `json:"dateOfLastInteraction,omitempty"`
}

func (l Lead) EntityID() string { return l.ID }

// SearchText define os campos cobertos pela busca textual.
func (l Lead) SearchText() []string {
	return []string{l.Name, l.Company, l.Email}
}

// LeadPatch carrega só os campos presentes numa edição parcial.
// Campo nil = não tocar na coluna correspondente.
type LeadPatch struct {
	Name                  *string `json:"name,omitempty"`
	Company               *string `json:"company,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	Status                *string `json:"status,omitempty"`
	Source                *string `json:"source,omitempty"`
	Stage                 *string `json:"stage,omitempty"`
	NextAction            *string `json:"nextAction,omitempty"`
	NextActionDate        *string `json:"nextActionDate,omitempty"`
	AssignedTo            *string `json:"assignedTo,omitempty"`
	ProductsInterested    *string `json:"productsInterested,omitempty"`
	Location              *string `json:"location,omitempty"`
	Website               *string `json:"website,omitempty"`
	ProposalShared        *bool   `json:"proposalShared,omitempty"`
	Remark                *string `json:"remark,omitempty"`
	DateOfLastInteraction *string `json:"dateOfLastInteraction,omitempty"`
}

// Merge aplica o patch por shallow merge, campo a campo.
func (l Lead) Merge(p LeadPatch) Lead {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Stage != nil {
		l.Stage = *p.Stage
	}
	if p.NextAction != nil {
		l.NextAction = *p.NextAction
	}
	if p.NextActionDate != nil {
		l.NextActionDate = *p.NextActionDate
	}
	if p.AssignedTo != nil {
		l.AssignedTo = *p.AssignedTo
	}
	if p.ProductsInterested != nil {
		l.ProductsInterested = p.ProductsInterested
	}
	if p.Location != nil {
		l.Location = p.Location
	}
	if p.Website != nil {
		l.Website = p.Website
	}
	if p.ProposalShared != nil {
		l.ProposalShared = p.ProposalShared
	}
	if p.Remark != nil {
		l.Remark = p.Remark
	}
	if p.DateOfLastInteraction != nil {
		l.DateOfLastInteraction = p.DateOfLastInteraction
	}
	return l
}
