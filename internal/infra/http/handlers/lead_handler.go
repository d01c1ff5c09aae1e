package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/growthdesk/crm-backend/internal/directory"
	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/infra/queue"
	"github.com/growthdesk/crm-backend/internal/store"
)

// NewLeadResource monta o recurso de leads: filtros por status/source e
// aviso por fila quando um lead é criado ou reatribuído com responsável.
func NewLeadResource(
	s *store.Store[entity.Lead, entity.LeadPatch],
	dir *directory.Directory,
	producer queue.ProducerInterface,
) *Resource[entity.Lead, entity.LeadPatch] {

	notify := func(ctx context.Context, lead entity.Lead, op string) {
		if producer == nil || dir == nil || lead.AssignedTo == "" {
			return
		}
		assignee, ok := dir.Get(lead.AssignedTo)
		if !ok {
			return
		}

		err := producer.PublishAssignment(ctx, queue.AssignmentPayload{
			Table:         "leads",
			Op:            op,
			RecordID:      lead.ID,
			RecordName:    lead.Name,
			AssigneeID:    assignee.ID,
			AssigneeName:  assignee.Name,
			AssigneeEmail: assignee.Email,
		})
		if err != nil {
			// Notificação nunca derruba a mutação que já foi confirmada.
			log.Printf("⚠️ [LEADS] publicação de atribuição falhou: %v", err)
		}
	}

	return &Resource[entity.Lead, entity.LeadPatch]{
		Name:  "leads",
		Store: s,

		Filter: func(r *http.Request) func(entity.Lead) bool {
			status := r.URL.Query().Get("status")
			source := r.URL.Query().Get("source")
			if status == "" && source == "" {
				return nil
			}
			return func(l entity.Lead) bool {
				if status != "" && l.Status != status {
					return false
				}
				if source != "" && l.Source != source {
					return false
				}
				return true
			}
		},

		AfterCreate: func(ctx context.Context, l entity.Lead) {
			notify(ctx, l, "INSERT")
		},
		AfterUpdate: func(ctx context.Context, l entity.Lead, patch entity.LeadPatch) {
			if patch.AssignedTo != nil {
				notify(ctx, l, "UPDATE")
			}
		},
	}
}
