package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
)

type partnerRow struct {
	ID                        string
	CompanyName               string
	ContactPerson             sql.NullString
	Email                     sql.NullString
	ContactNumber             sql.NullString
	Address                   sql.NullString
	Category                  sql.NullString
	Status                    sql.NullString
	AgreementDate             sql.NullString
	Notes                     sql.NullString
	NatureOfContract          sql.NullString
	BusinessRemark            sql.NullString
	InternalRemark            sql.NullString
	EngagementLetterSent      sql.NullBool
	AcceptanceStatus          sql.NullString
	EngagementLetterReference sql.NullString
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

const partnerColumns = `id, company_name, contact_person, email, contact_number, address,
		category, status, agreement_date, notes, nature_of_contract, business_remark,
		internal_remark, engagement_letter_sent, acceptance_status,
		engagement_letter_reference, created_at, updated_at`

func (r *partnerRow) scan(s interface{ Scan(...any) error }) error {
	return s.Scan(
		&r.ID, &r.CompanyName, &r.ContactPerson, &r.Email, &r.ContactNumber,
		&r.Address, &r.Category, &r.Status, &r.AgreementDate, &r.Notes,
		&r.NatureOfContract, &r.BusinessRemark, &r.InternalRemark,
		&r.EngagementLetterSent, &r.AcceptanceStatus, &r.EngagementLetterReference,
		&r.CreatedAt, &r.UpdatedAt,
	)
}

// Defaults do mapper de entrada: category nula vira "Business", status
// nulo vira "Active" (comportamento herdado do app).
func partnerFromRow(r partnerRow) entity.Partner {
	category := fromNull(r.Category)
	if category == "" {
		category = "Business"
	}
	status := fromNull(r.Status)
	if status == "" {
		status = entity.PartnerStatusActive
	}

	return entity.Partner{
		ID:                        r.ID,
		Name:                      r.CompanyName,
		ContactPerson:             fromNull(r.ContactPerson),
		Email:                     fromNull(r.Email),
		Phone:                     fromNull(r.ContactNumber),
		Address:                   fromNull(r.Address),
		Category:                  category,
		Status:                    status,
		AgreementDate:             fromNull(r.AgreementDate),
		Notes:                     fromNull(r.Notes),
		CreatedAt:                 r.CreatedAt,
		NatureOfContract:          ptrFromNull(r.NatureOfContract),
		EngagementLetterSent:      boolPtrFromNull(r.EngagementLetterSent),
		AcceptanceStatus:          ptrFromNull(r.AcceptanceStatus),
		EngagementLetterReference: ptrFromNull(r.EngagementLetterReference),
		BusinessRemark:            ptrFromNull(r.BusinessRemark),
		InternalRemark:            ptrFromNull(r.InternalRemark),
	}
}

func partnerPatchColumns(p entity.PartnerPatch) ([]string, []any) {
	var cols []string
	var vals []any

	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	if p.Name != nil {
		add("company_name", *p.Name)
	}
	if p.ContactPerson != nil {
		add("contact_person", *p.ContactPerson)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Phone != nil {
		add("contact_number", *p.Phone)
	}
	if p.Address != nil {
		add("address", *p.Address)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.AgreementDate != nil {
		add("agreement_date", *p.AgreementDate)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	if p.NatureOfContract != nil {
		add("nature_of_contract", *p.NatureOfContract)
	}
	if p.EngagementLetterSent != nil {
		add("engagement_letter_sent", *p.EngagementLetterSent)
	}
	if p.AcceptanceStatus != nil {
		add("acceptance_status", *p.AcceptanceStatus)
	}
	if p.EngagementLetterReference != nil {
		add("engagement_letter_reference", *p.EngagementLetterReference)
	}
	if p.BusinessRemark != nil {
		add("business_remark", *p.BusinessRemark)
	}
	if p.InternalRemark != nil {
		add("internal_remark", *p.InternalRemark)
	}

	return cols, vals
}

type PartnerRepository struct {
	DB *sql.DB
}

func NewPartnerRepository(db *sql.DB) *PartnerRepository {
	return &PartnerRepository{DB: db}
}

func (r *PartnerRepository) SelectAll(ctx context.Context) ([]entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select partners: %w", err)
	}
	defer rows.Close()

	var partners []entity.Partner
	for rows.Next() {
		var row partnerRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		partners = append(partners, partnerFromRow(row))
	}
	return partners, rows.Err()
}

func (r *PartnerRepository) Insert(ctx context.Context, draft entity.Partner) (entity.Partner, error) {
	query := `
		INSERT INTO partners (company_name, contact_person, email, contact_number,
			address, category, status, agreement_date, notes, nature_of_contract,
			business_remark, internal_remark, engagement_letter_sent,
			acceptance_status, engagement_letter_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + partnerColumns

	var row partnerRow
	err := row.scan(r.DB.QueryRowContext(ctx, query,
		draft.Name,
		nullString(draft.ContactPerson),
		nullString(draft.Email),
		nullString(draft.Phone),
		nullString(draft.Address),
		nullString(draft.Category),
		nullString(draft.Status),
		nullString(draft.AgreementDate),
		nullString(draft.Notes),
		draft.NatureOfContract,
		draft.BusinessRemark,
		draft.InternalRemark,
		draft.EngagementLetterSent,
		draft.AcceptanceStatus,
		draft.EngagementLetterReference,
	))
	if err != nil {
		return entity.Partner{}, fmt.Errorf("insert partner: %w", wrapPgError(err))
	}

	return partnerFromRow(row), nil
}

func (r *PartnerRepository) Update(ctx context.Context, id string, patch entity.PartnerPatch) error {
	cols, vals := partnerPatchColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	set := make([]string, len(cols))
	for i, c := range cols {
		set[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	query := fmt.Sprintf("UPDATE partners SET %s WHERE id = $%d", strings.Join(set, ", "), len(vals)+1)
	vals = append(vals, id)

	if _, err := r.DB.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("update partner: %w", wrapPgError(err))
	}
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}
