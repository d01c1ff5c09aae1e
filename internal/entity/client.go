package entity

import (
	"time"
)

const (
	ClientStatusActive    = "Active"
	ClientStatusCompleted = "Completed"
	ClientStatusOnHold    = "On Hold"
)

type Client struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ContactPerson   string    `json:"contactPerson"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"` // mobile no banco
	Address         string    `json:"address"`
	Industry        string    `json:"industry"`
	ServiceProvided string    `json:"serviceProvided"`
	StartDate       string    `json:"startDate"`
	EndDate         *string   `json:"endDate"` // nil = engajamento em andamento
	Status          string    `json:"status"`  // Active, Completed, On Hold
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`

	CompanyName       *string `json:"companyName,omitempty"`
	City              *string `json:"city,omitempty"`
	Country           *string `json:"country,omitempty"`
	BDRepresentative  *string `json:"bdRepresentative,omitempty"`
	EngagementDetails *string `json:"engagementDetails,omitempty"`
	Remark            *string `json:"remark,omitempty"`
}

func (c Client) EntityID() string { return c.ID }

func (c Client) SearchText() []string {
	fields := []string{c.Name, c.ContactPerson, c.Email}
	if c.CompanyName != nil {
		fields = append(fields, *c.CompanyName)
	}
	return fields
}

type ClientPatch struct {
	Name              *string `json:"name,omitempty"`
	ContactPerson     *string `json:"contactPerson,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Industry          *string `json:"industry,omitempty"`
	ServiceProvided   *string `json:"serviceProvided,omitempty"`
	StartDate         *string `json:"startDate,omitempty"`
	EndDate           *string `json:"endDate,omitempty"`
	Status            *string `json:"status,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	CompanyName       *string `json:"companyName,omitempty"`
	City              *string `json:"city,omitempty"`
	Country           *string `json:"country,omitempty"`
	BDRepresentative  *string `json:"bdRepresentative,omitempty"`
	EngagementDetails *string `json:"engagementDetails,omitempty"`
	Remark            *string `json:"remark,omitempty"`
}

func (c Client) Merge(patch ClientPatch) Client {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.ContactPerson != nil {
		c.ContactPerson = *patch.ContactPerson
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Industry != nil {
		c.Industry = *patch.Industry
	}
	if patch.ServiceProvided != nil {
		c.ServiceProvided = *patch.ServiceProvided
	}
	if patch.StartDate != nil {
		c.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		c.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.CompanyName != nil {
		c.CompanyName = patch.CompanyName
	}
	if patch.City != nil {
		c.City = patch.City
	}
	if patch.Country != nil {
		c.Country = patch.Country
	}
	if patch.BDRepresentative != nil {
		c.BDRepresentative = patch.BDRepresentative
	}
	if patch.EngagementDetails != nil {
		c.EngagementDetails = patch.EngagementDetails
	}
	if patch.Remark != nil {
		c.Remark = patch.Remark
	}
	return c
}
