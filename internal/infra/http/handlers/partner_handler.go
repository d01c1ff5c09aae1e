package handlers

import (
	"net/http"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/store"
)

func NewPartnerResource(s *store.Store[entity.Partner, entity.PartnerPatch]) *Resource[entity.Partner, entity.PartnerPatch] {
	return &Resource[entity.Partner, entity.PartnerPatch]{
		Name:  "partners",
		Store: s,

		Filter: func(r *http.Request) func(entity.Partner) bool {
			status := r.URL.Query().Get("status")
			if status == "" {
				return nil
			}
			return func(p entity.Partner) bool { return p.Status == status }
		},
	}
}
