package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// leadRow espelha a tabela leads coluna a coluna (snake_case, nuláveis).
type leadRow struct {
	ID                    string
	Name                  string
	CompanyName           string
	Email                 sql.NullString
	Mobile                sql.NullString
	Status                sql.NullString
	Source                sql.NullString
	Stage                 sql.NullString
	NextAction            sql.NullString
	NextInteractionDate   sql.NullString
	BDRepresentative      sql.NullString
	ProductsInterested    sql.NullString
	Location              sql.NullString
	Website               sql.NullString
	ProposalShared        sql.NullBool
	Remark                sql.NullString
	DateOfLastInteraction sql.NullString
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

const leadColumns = `id, name, company_name, email, mobile, status, source, stage,
		next_action, next_interaction_date, bd_representative, products_interested,
		location, website, proposal_shared, remark, date_of_last_interaction,
		created_at, updated_at`

func (r *leadRow) scan(s interface{ Scan(...any) error }) error {
	return s.Scan(
		&r.ID, &r.Name, &r.CompanyName, &r.Email, &r.Mobile, &r.Status, &r.Source,
		&r.Stage, &r.NextAction, &r.NextInteractionDate, &r.BDRepresentative,
		&r.ProductsInterested, &r.Location, &r.Website, &r.ProposalShared,
		&r.Remark, &r.DateOfLastInteraction, &r.CreatedAt, &r.UpdatedAt,
	)
}

// leadFromRow é o mapper de entrada: coluna nula vira "" nos campos de
// texto obrigatórios e nil nos opcionais. O default de source ("Other")
// é aplicado aqui, e só aqui.
func leadFromRow(r leadRow) entity.Lead {
	source := fromNull(r.Source)
	if source == "" {
		source = entity.LeadSourceOther
	}

	return entity.Lead{
		ID:                    r.ID,
		Name:                  r.Name,
		Company:               r.CompanyName,
		Email:                 fromNull(r.Email),
		Phone:                 fromNull(r.Mobile),
		Status:                fromNull(r.Status),
		Source:                source,
		Stage:                 fromNull(r.Stage),
		NextAction:            fromNull(r.NextAction),
		NextActionDate:        fromNull(r.NextInteractionDate),
		AssignedTo:            fromNull(r.BDRepresentative),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
		ProductsInterested:    ptrFromNull(r.ProductsInterested),
		Location:              ptrFromNull(r.Location),
		Website:               ptrFromNull(r.Website),
		ProposalShared:        boolPtrFromNull(r.ProposalShared),
		Remark:                ptrFromNull(r.Remark),
		DateOfLastInteraction: ptrFromNull(r.DateOfLastInteraction),
	}
}

// leadPatchColumns é o mapper de saída de edições parciais: só campos
// presentes viram colunas, inverso exato do leadFromRow.
func leadPatchColumns(p entity.LeadPatch) ([]string, []any) {
	var cols []string
	var vals []any

	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Company != nil {
		add("company_name", *p.Company)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Phone != nil {
		add("mobile", *p.Phone)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.Source != nil {
		add("source", *p.Source)
	}
	if p.Stage != nil {
		add("stage", *p.Stage)
	}
	if p.NextAction != nil {
		add("next_action", *p.NextAction)
	}
	if p.NextActionDate != nil {
		add("next_interaction_date", *p.NextActionDate)
	}
	if p.AssignedTo != nil {
		add("bd_representative", *p.AssignedTo)
	}
	if p.ProductsInterested != nil {
		add("products_interested", *p.ProductsInterested)
	}
	if p.Location != nil {
		add("location", *p.Location)
	}
	if p.Website != nil {
		add("website", *p.Website)
	}
	if p.ProposalShared != nil {
		add("proposal_shared", *p.ProposalShared)
	}
	if p.Remark != nil {
		add("remark", *p.Remark)
	}
	if p.DateOfLastInteraction != nil {
		add("date_of_last_interaction", *p.DateOfLastInteraction)
	}

	return cols, vals
}

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) SelectAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var row leadRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, leadFromRow(row))
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Insert(ctx context.Context, draft entity.Lead) (entity.Lead, error) {
	query := `
		INSERT INTO leads (name, company_name, email, mobile, status, source, stage,
			next_action, next_interaction_date, bd_representative, products_interested,
			location, website, proposal_shared, remark, date_of_last_interaction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + leadColumns

	var row leadRow
	err := row.scan(r.DB.QueryRowContext(ctx, query,
		draft.Name,
		draft.Company,
		nullString(draft.Email),
		nullString(draft.Phone),
		nullString(draft.Status),
		nullString(draft.Source),
		nullString(draft.Stage),
		nullString(draft.NextAction),
		nullString(draft.NextActionDate),
		nullString(draft.AssignedTo),
		draft.ProductsInterested,
		draft.Location,
		draft.Website,
		draft.ProposalShared,
		draft.Remark,
		draft.DateOfLastInteraction,
	))
	if err != nil {
		return entity.Lead{}, fmt.Errorf("insert lead: %w", wrapPgError(err))
	}

	return leadFromRow(row), nil
}

func (r *LeadRepository) Update(ctx context.Context, id string, patch entity.LeadPatch) error {
	cols, vals := leadPatchColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	set := make([]string, len(cols))
	for i, c := range cols {
		set[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d", strings.Join(set, ", "), len(vals)+1)
	vals = append(vals, id)

	if _, err := r.DB.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("update lead: %w", wrapPgError(err))
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
