package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
)

type interactionRow struct {
	ID          string
	LeadID      sql.NullString
	PartnerID   sql.NullString
	ClientID    sql.NullString
	Type        string
	Date        string
	Description sql.NullString
	Outcome     sql.NullString
	NextSteps   sql.NullString
	UserID      sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const interactionColumns = `id, lead_id, partner_id, client_id, type, date,
		description, outcome, next_steps, user_id, created_at, updated_at`

func (r *interactionRow) scan(s interface{ Scan(...any) error }) error {
	return s.Scan(
		&r.ID, &r.LeadID, &r.PartnerID, &r.ClientID, &r.Type, &r.Date,
		&r.Description, &r.Outcome, &r.NextSteps, &r.UserID,
		&r.CreatedAt, &r.UpdatedAt,
	)
}

func interactionFromRow(r interactionRow) entity.Interaction {
	return entity.Interaction{
		ID:          r.ID,
		LeadID:      fromNull(r.LeadID),
		Type:        r.Type,
		Date:        r.Date,
		Description: fromNull(r.Description),
		Outcome:     fromNull(r.Outcome),
		NextSteps:   fromNull(r.NextSteps),
		UserID:      fromNull(r.UserID),
		CreatedAt:   r.CreatedAt,
		PartnerID:   ptrFromNull(r.PartnerID),
		ClientID:    ptrFromNull(r.ClientID),
	}
}

func interactionPatchColumns(p entity.InteractionPatch) ([]string, []any) {
	var cols []string
	var vals []any

	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	if p.Type != nil {
		add("type", *p.Type)
	}
	if p.Date != nil {
		add("date", *p.Date)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Outcome != nil {
		add("outcome", *p.Outcome)
	}
	if p.NextSteps != nil {
		add("next_steps", *p.NextSteps)
	}

	return cols, vals
}

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) SelectAll(ctx context.Context) ([]entity.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM interactions ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select interactions: %w", err)
	}
	defer rows.Close()

	var interactions []entity.Interaction
	for rows.Next() {
		var row interactionRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		interactions = append(interactions, interactionFromRow(row))
	}
	return interactions, rows.Err()
}

// Insert depende da FK lead_id; lead inexistente volta como ErrLeadMissing.
func (r *InteractionRepository) Insert(ctx context.Context, draft entity.Interaction) (entity.Interaction, error) {
	query := `
		INSERT INTO interactions (lead_id, partner_id, client_id, type, date,
			description, outcome, next_steps, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + interactionColumns

	var row interactionRow
	err := row.scan(r.DB.QueryRowContext(ctx, query,
		nullString(draft.LeadID),
		draft.PartnerID,
		draft.ClientID,
		draft.Type,
		draft.Date,
		nullString(draft.Description),
		nullString(draft.Outcome),
		nullString(draft.NextSteps),
		nullString(draft.UserID),
	))
	if err != nil {
		return entity.Interaction{}, fmt.Errorf("insert interaction: %w", wrapPgError(err))
	}

	return interactionFromRow(row), nil
}

func (r *InteractionRepository) Update(ctx context.Context, id string, patch entity.InteractionPatch) error {
	cols, vals := interactionPatchColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	set := make([]string, len(cols))
	for i, c := range cols {
		set[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	query := fmt.Sprintf("UPDATE interactions SET %s WHERE id = $%d", strings.Join(set, ", "), len(vals)+1)
	vals = append(vals, id)

	if _, err := r.DB.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("update interaction: %w", wrapPgError(err))
	}
	return nil
}

func (r *InteractionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM interactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete interaction: %w", err)
	}
	return nil
}
