package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// UserRepository é somente leitura: a tabela users é gerida fora desta
// camada (auth), aqui só alimenta a Directory.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) SelectAll(ctx context.Context) ([]entity.User, error) {
	query := `SELECT id, name, email, role, avatar FROM users`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var u entity.User
		var avatar sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &avatar); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Avatar = ptrFromNull(avatar)
		users = append(users, u)
	}
	return users, rows.Err()
}
