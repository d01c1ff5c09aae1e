// Package directory guarda os usuários em memória pra resolver os
// campos "assigned to" de leads e interações.
package directory

import (
	"context"

	"github.com/growthdesk/crm-backend/internal/entity"
)

type UserSource interface {
	SelectAll(ctx context.Context) ([]entity.User, error)
}

// Directory é carregada uma vez no boot e nunca mais muda; por isso
// dispensa lock.
type Directory struct {
	byID  map[string]entity.User
	order []entity.User
}

func Load(ctx context.Context, src UserSource) (*Directory, error) {
	users, err := src.SelectAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	return &Directory{byID: byID, order: users}, nil
}

// Get resolve um id; ausência não é erro.
func (d *Directory) Get(id string) (entity.User, bool) {
	u, ok := d.byID[id]
	return u, ok
}

func (d *Directory) All() []entity.User {
	out := make([]entity.User, len(d.order))
	copy(out, d.order)
	return out
}
