package entity

import (
	"time"
)

const (
	PartnerStatusActive   = "Active"
	PartnerStatusInactive = "Inactive"
)

type Partner struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"` // company_name no banco
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"` // contact_number no banco
	Address       string    `json:"address"`
	Category      string    `json:"category"`
	Status        string    `json:"status"` // Active, Inactive
	AgreementDate string    `json:"agreementDate"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`

	// Metadados de contrato / carta de engajamento
	NatureOfContract          *string `json:"natureOfContract,omitempty"`
	EngagementLetterSent      *bool   `json:"engagementLetterSent,omitempty"`
	AcceptanceStatus          *string `json:"acceptanceStatus,omitempty"`
	EngagementLetterReference *string `json:"engagementLetterReference,omitempty"`
	BusinessRemark            *string `json:"businessRemark,omitempty"`
	InternalRemark            *string `json:"internalRemark,omitempty"`
}

func (p Partner) EntityID() string { return p.ID }

func (p Partner) SearchText() []string {
	return []string{p.Name, p.ContactPerson, p.Email}
}

type PartnerPatch struct {
	Name                      *string `json:"name,omitempty"`
	ContactPerson             *string `json:"contactPerson,omitempty"`
	Email                     *string `json:"email,omitempty"`
	Phone                     *string `json:"phone,omitempty"`
	Address                   *string `json:"address,omitempty"`
	Category                  *string `json:"category,omitempty"`
	Status                    *string `json:"status,omitempty"`
	AgreementDate             *string `json:"agreementDate,omitempty"`
	Notes                     *string `json:"notes,omitempty"`
	NatureOfContract          *string `json:"natureOfContract,omitempty"`
	EngagementLetterSent      *bool   `json:"engagementLetterSent,omitempty"`
	AcceptanceStatus          *string `json:"acceptanceStatus,omitempty"`
	EngagementLetterReference *string `json:"engagementLetterReference,omitempty"`
	BusinessRemark            *string `json:"businessRemark,omitempty"`
	InternalRemark            *string `json:"internalRemark,omitempty"`
}

func (p Partner) Merge(patch PartnerPatch) Partner {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ContactPerson != nil {
		p.ContactPerson = *patch.ContactPerson
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.AgreementDate != nil {
		p.AgreementDate = *patch.AgreementDate
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.NatureOfContract != nil {
		p.NatureOfContract = patch.NatureOfContract
	}
	if patch.EngagementLetterSent != nil {
		p.EngagementLetterSent = patch.EngagementLetterSent
	}
	if patch.AcceptanceStatus != nil {
		p.AcceptanceStatus = patch.AcceptanceStatus
	}
	if patch.EngagementLetterReference != nil {
		p.EngagementLetterReference = patch.EngagementLetterReference
	}
	if patch.BusinessRemark != nil {
		p.BusinessRemark = patch.BusinessRemark
	}
	if patch.InternalRemark != nil {
		p.InternalRemark = patch.InternalRemark
	}
	return p
}
