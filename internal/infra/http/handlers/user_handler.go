package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/growthdesk/crm-backend/internal/directory"
)

type UserHandler struct {
	Directory *directory.Directory
}

func NewUserHandler(dir *directory.Directory) *UserHandler {
	return &UserHandler{Directory: dir}
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Directory.All())
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, ok := h.Directory.Get(id)
	if !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
