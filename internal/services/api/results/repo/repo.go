// Package repo provides postgres access for complaint results
package repo

import (
	"context"
	"errors"

	"complaints/internal/modkit/repokit"
	perr "complaints/internal/platform/errors"
	"complaints/internal/platform/store"
	"complaints/internal/services/api/results/domain"
)

// Repo is the minimal persistence surface for results
type Repo interface {
	Search(ctx context.Context, f Filter) (Page, error)
	Complaint(ctx context.Context, id string) (domain.Complaint, error)
	Agreements(ctx context.Context, companyKeys []string) (map[string][]domain.Agreement, error)
}

// Filter is a folded search request
// Companies and Products hold normalize keys, States upper case codes
type Filter struct {
	From         int
	Size         int
	Term         string
	Companies    []string
	Products     []string
	States       []string
	HasNarrative bool
}

// Page is one window of matching complaints plus the full match count
type Page struct {
	Items []domain.Complaint
	// Keys holds the company key of each item, same order as Items
	Keys  []string
	Total int
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// shared predicate, $1 term $2 companies $3 products $4 states $5 narratives only
const where = `
where ($1 = '' or search_doc @@ plainto_tsquery('english', $1))
and (cardinality($2::text[]) = 0 or company_key = any($2))
and (cardinality($3::text[]) = 0 or product_key = any($3))
and (cardinality($4::text[]) = 0 or state = any($4))
and (not $5 or has_narrative)
`

const columns = `
complaint_id, company, company_key,
coalesce(company_public_response, ''), coalesce(company_response, ''),
coalesce(complaint_what_happened, ''),
coalesce(consumer_consent_provided, ''), coalesce(consumer_disputed, ''),
date_received, coalesce(date_sent_to_company, date_received),
coalesce(issue, ''), product, coalesce(state, ''),
coalesce(sub_issue, ''), coalesce(sub_product, ''),
coalesce(submitted_via, ''), coalesce(timely, ''), coalesce(zip_code, ''),
has_narrative
`

type keyed struct {
	c   domain.Complaint
	key string
}

func scanComplaint(r store.Row) (keyed, error) {
	var k keyed
	c := &k.c
	err := r.Scan(
		&c.ComplaintID, &c.Company, &k.key,
		&c.CompanyPublicResponse, &c.CompanyResponse,
		&c.ComplaintWhatHappened,
		&c.ConsumerConsentProvided, &c.ConsumerDisputed,
		&c.DateReceived, &c.DateSentToCompany,
		&c.Issue, &c.Product, &c.State,
		&c.SubIssue, &c.SubProduct,
		&c.SubmittedVia, &c.Timely, &c.ZipCode,
		&c.HasNarrative,
	)
	c.DateReceived = c.DateReceived.UTC()
	c.DateSentToCompany = c.DateSentToCompany.UTC()
	return k, err
}

func (r *queries) Search(ctx context.Context, f Filter) (Page, error) {
	args := []any{f.Term, nonNil(f.Companies), nonNil(f.Products), nonNil(f.States), f.HasNarrative}

	total, err := store.Scalar[int64](ctx, r.q, `select count(*) from complaints`+where, args...)
	if err != nil {
		return Page{}, wrap(err, "complaint search failed")
	}

	const page = `
order by date_received desc, complaint_id asc
offset $6 limit $7
`
	rows, err := store.Many(ctx, r.q, scanComplaint,
		`select`+columns+`from complaints`+where+page,
		append(args, f.From, f.Size)...)
	if err != nil {
		return Page{}, wrap(err, "complaint search failed")
	}

	out := Page{Items: make([]domain.Complaint, 0, len(rows)), Keys: make([]string, 0, len(rows)), Total: int(total)}
	for _, k := range rows {
		out.Items = append(out.Items, k.c)
		out.Keys = append(out.Keys, k.key)
	}
	return out, nil
}

func (r *queries) Complaint(ctx context.Context, id string) (domain.Complaint, error) {
	k, err := store.One(ctx, r.q, scanComplaint,
		`select`+columns+`from complaints where complaint_id = $1`, id)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Complaint{}, perr.NotFoundf("complaint %s not found", id)
	}
	if err != nil {
		return domain.Complaint{}, wrap(err, "complaint lookup failed")
	}
	ags, err := r.Agreements(ctx, []string{k.key})
	if err != nil {
		return domain.Complaint{}, err
	}
	k.c.Agreements = ags[k.key]
	if k.c.Agreements == nil {
		k.c.Agreements = []domain.Agreement{}
	}
	return k.c, nil
}

func (r *queries) Agreements(ctx context.Context, companyKeys []string) (map[string][]domain.Agreement, error) {
	out := map[string][]domain.Agreement{}
	if len(companyKeys) == 0 {
		return out, nil
	}
	const sql = `
select company_key, pk, issuer, name, offered, slug, withdrawn, size, uri
from agreements
where company_key = any($1)
order by company_key asc, pk asc
`
	rows, err := r.q.Query(ctx, sql, companyKeys)
	if err != nil {
		return nil, wrap(err, "agreement lookup failed")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key string
			a   domain.Agreement
		)
		if err := rows.Scan(&key, &a.PK, &a.Issuer, &a.Name, &a.Offered, &a.Slug, &a.Withdrawn, &a.Size, &a.URI); err != nil {
			return nil, wrap(err, "agreement lookup failed")
		}
		out[key] = append(out[key], a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err, "agreement lookup failed")
	}
	return out, nil
}

// wrap maps driver errors to display safe project errors
func wrap(err error, msg string) error {
	if perr.IsUndefinedTable(err) {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "complaint data is not loaded yet")
	}
	return perr.FromPostgres(err, msg)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
