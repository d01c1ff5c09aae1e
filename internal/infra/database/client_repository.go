package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
)

type clientRow struct {
	ID                string
	Name              string
	CompanyName       string
	ContactPerson     sql.NullString
	Email             sql.NullString
	Mobile            sql.NullString
	Address           sql.NullString
	Industry          sql.NullString
	ServiceProvided   sql.NullString
	StartDate         sql.NullString
	EndDate           sql.NullString
	Status            sql.NullString
	Notes             sql.NullString
	BDRepresentative  sql.NullString
	City              sql.NullString
	Country           sql.NullString
	EngagementDetails sql.NullString
	Remark            sql.NullString
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const clientColumns = `id, name, company_name, contact_person, email, mobile, address,
		industry, service_provided, start_date, end_date, status, notes,
		bd_representative, city, country, engagement_details, remark,
		created_at, updated_at`

func (r *clientRow) scan(s interface{ Scan(...any) error }) error {
	return s.Scan(
		&r.ID, &r.Name, &r.CompanyName, &r.ContactPerson, &r.Email, &r.Mobile,
		&r.Address, &r.Industry, &r.ServiceProvided, &r.StartDate, &r.EndDate,
		&r.Status, &r.Notes, &r.BDRepresentative, &r.City, &r.Country,
		&r.EngagementDetails, &r.Remark, &r.CreatedAt, &r.UpdatedAt,
	)
}

// end_date nula fica nula (engajamento em andamento), não vira "".
func clientFromRow(r clientRow) entity.Client {
	status := fromNull(r.Status)
	if status == "" {
		status = entity.ClientStatusActive
	}

	return entity.Client{
		ID:                r.ID,
		Name:              r.Name,
		ContactPerson:     fromNull(r.ContactPerson),
		Email:             fromNull(r.Email),
		Phone:             fromNull(r.Mobile),
		Address:           fromNull(r.Address),
		Industry:          fromNull(r.Industry),
		ServiceProvided:   fromNull(r.ServiceProvided),
		StartDate:         fromNull(r.StartDate),
		EndDate:           ptrFromNull(r.EndDate),
		Status:            status,
		Notes:             fromNull(r.Notes),
		CreatedAt:         r.CreatedAt,
		CompanyName:       nullString(r.CompanyName),
		City:              ptrFromNull(r.City),
		Country:           ptrFromNull(r.Country),
		BDRepresentative:  ptrFromNull(r.BDRepresentative),
		EngagementDetails: ptrFromNull(r.EngagementDetails),
		Remark:            ptrFromNull(r.Remark),
	}
}

func clientPatchColumns(p entity.ClientPatch) ([]string, []any) {
	var cols []string
	var vals []any

	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.ContactPerson != nil {
		add("contact_person", *p.ContactPerson)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Phone != nil {
		add("mobile", *p.Phone)
	}
	if p.Address != nil {
		add("address", *p.Address)
	}
	if p.Industry != nil {
		add("industry", *p.Industry)
	}
	if p.ServiceProvided != nil {
		add("service_provided", *p.ServiceProvided)
	}
	if p.StartDate != nil {
		add("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		add("end_date", *p.EndDate)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	// company_name cai pro name quando só o name veio (regra herdada do app)
	switch {
	case p.CompanyName != nil:
		add("company_name", *p.CompanyName)
	case p.Name != nil:
		add("company_name", *p.Name)
	}
	if p.City != nil {
		add("city", *p.City)
	}
	if p.Country != nil {
		add("country", *p.Country)
	}
	if p.BDRepresentative != nil {
		add("bd_representative", *p.BDRepresentative)
	}
	if p.EngagementDetails != nil {
		add("engagement_details", *p.EngagementDetails)
	}
	if p.Remark != nil {
		add("remark", *p.Remark)
	}

	return cols, vals
}

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) SelectAll(ctx context.Context) ([]entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select clients: %w", err)
	}
	defer rows.Close()

	var clients []entity.Client
	for rows.Next() {
		var row clientRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, clientFromRow(row))
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Insert(ctx context.Context, draft entity.Client) (entity.Client, error) {
	companyName := draft.Name
	if draft.CompanyName != nil && *draft.CompanyName != "" {
		companyName = *draft.CompanyName
	}

	query := `
		INSERT INTO clients (name, company_name, contact_person, email, mobile,
			address, industry, service_provided, start_date, end_date, status,
			notes, bd_representative, city, country, engagement_details, remark)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + clientColumns

	var row clientRow
	err := row.scan(r.DB.QueryRowContext(ctx, query,
		draft.Name,
		companyName,
		nullString(draft.ContactPerson),
		nullString(draft.Email),
		nullString(draft.Phone),
		nullString(draft.Address),
		nullString(draft.Industry),
		nullString(draft.ServiceProvided),
		nullString(draft.StartDate),
		draft.EndDate,
		nullString(draft.Status),
		nullString(draft.Notes),
		draft.BDRepresentative,
		draft.City,
		draft.Country,
		draft.EngagementDetails,
		draft.Remark,
	))
	if err != nil {
		return entity.Client{}, fmt.Errorf("insert client: %w", wrapPgError(err))
	}

	return clientFromRow(row), nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, patch entity.ClientPatch) error {
	cols, vals := clientPatchColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	set := make([]string, len(cols))
	for i, c := range cols {
		set[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	query := fmt.Sprintf("UPDATE clients SET %s WHERE id = $%d", strings.Join(set, ", "), len(vals)+1)
	vals = append(vals, id)

	if _, err := r.DB.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("update client: %w", wrapPgError(err))
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
