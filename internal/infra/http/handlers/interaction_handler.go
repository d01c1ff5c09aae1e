package handlers

import (
	"net/http"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/store"
)

// Interações são consultadas por lead (timeline do LeadDetail), daí o
// filtro por lead_id no lugar de busca textual.
func NewInteractionResource(s *store.Store[entity.Interaction, entity.InteractionPatch]) *Resource[entity.Interaction, entity.InteractionPatch] {
	return &Resource[entity.Interaction, entity.InteractionPatch]{
		Name:  "interactions",
		Store: s,

		Filter: func(r *http.Request) func(entity.Interaction) bool {
			leadID := r.URL.Query().Get("lead_id")
			if leadID == "" {
				return nil
			}
			return func(i entity.Interaction) bool { return i.LeadID == leadID }
		},
	}
}
