package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/infra/http/middleware"
	"github.com/growthdesk/crm-backend/internal/store"
)

// listEnvelope expõe o contrato inteiro do store pra SPA: lista, flag de
// loading e o último erro remoto.
type listEnvelope[E any] struct {
	Data    []E    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Resource é o handler CRUD genérico de uma coleção. Os quatro recursos
// (leads, partners, clients, interactions) são instâncias dele; o que
// difere entre eles entra por Filter e pelos hooks.
type Resource[E store.Entity, P any] struct {
	Name  string
	Store *store.Store[E, P]

	// Filter traduz query string em predicado de listagem (opcional).
	Filter func(r *http.Request) func(E) bool

	// Hooks pós-mutação (notificações). Nunca falham a operação.
	AfterCreate func(ctx context.Context, e E)
	AfterUpdate func(ctx context.Context, e E, patch P)
}

func (h *Resource[E, P]) Mount(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Post("/refresh", h.HandleRefresh)
	r.Get("/{id}", h.HandleGet)
	r.Patch("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
}

func (h *Resource[E, P]) HandleList(w http.ResponseWriter, r *http.Request) {
	var data []E
	switch {
	case r.URL.Query().Get("q") != "":
		data = h.Store.Search(r.URL.Query().Get("q"))
	default:
		if h.Filter != nil {
			if pred := h.Filter(r); pred != nil {
				data = h.Store.Filter(pred)
				break
			}
		}
		data = h.Store.List()
	}

	writeJSON(w, http.StatusOK, listEnvelope[E]{
		Data:    data,
		Loading: h.Store.Loading(),
		Error:   h.Store.LastError(),
	})
}

func (h *Resource[E, P]) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, ok := h.Store.Get(id)
	if !ok {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Resource[E, P]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var draft E
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Store.Create(r.Context(), draft)
	if err != nil {
		middleware.RecordMutation(h.Name, "create", "error")
		http.Error(w, err.Error(), mutationStatus(err))
		return
	}
	middleware.RecordMutation(h.Name, "create", "ok")

	if h.AfterCreate != nil {
		h.AfterCreate(r.Context(), created)
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Resource[E, P]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch P
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	merged, found, err := h.Store.Update(r.Context(), id, patch)
	if err != nil {
		middleware.RecordMutation(h.Name, "update", "error")
		http.Error(w, err.Error(), mutationStatus(err))
		return
	}
	middleware.RecordMutation(h.Name, "update", "ok")

	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	if h.AfterUpdate != nil {
		h.AfterUpdate(r.Context(), merged, patch)
	}

	writeJSON(w, http.StatusOK, merged)
}

func (h *Resource[E, P]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.Delete(r.Context(), id); err != nil {
		middleware.RecordMutation(h.Name, "delete", "error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	middleware.RecordMutation(h.Name, "delete", "ok")

	w.WriteHeader(http.StatusNoContent)
}

// HandleRefresh é o reload manual da UI; devolve a lista recarregada.
func (h *Resource[E, P]) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Refresh(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope[E]{
		Data:    h.Store.List(),
		Loading: h.Store.Loading(),
		Error:   h.Store.LastError(),
	})
}

func mutationStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, entity.ErrLeadMissing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
