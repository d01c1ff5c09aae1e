package handlers

import (
	"net/http"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/store"
)

func NewClientResource(s *store.Store[entity.Client, entity.ClientPatch]) *Resource[entity.Client, entity.ClientPatch] {
	return &Resource[entity.Client, entity.ClientPatch]{
		Name:  "clients",
		Store: s,

		Filter: func(r *http.Request) func(entity.Client) bool {
			status := r.URL.Query().Get("status")
			if status == "" {
				return nil
			}
			return func(c entity.Client) bool { return c.Status == status }
		},
	}
}
