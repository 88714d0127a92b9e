package service

import (
	"context"
	"sync"
	"time"

	"complaints/internal/core/displaystate"
	"complaints/internal/core/resultstate"
	"complaints/internal/modkit/repokit"
	"complaints/internal/services/api/results/domain"
	"complaints/internal/services/api/results/repo"
)

// fakeDB runs Tx inline and records how many transactions were opened
type fakeDB struct{ txs int }

func (d *fakeDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (d *fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (d *fakeDB) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (d *fakeDB) Tx(_ context.Context, fn func(repokit.Queryer) error) error {
	d.txs++
	return fn(d)
}

type fakeRepo struct {
	items    []domain.Complaint
	total    int
	err      error
	agErr    error
	one      domain.Complaint
	oneErr   error
	lastF    repo.Filter
	searches int
}

func (r *fakeRepo) Search(_ context.Context, f repo.Filter) (repo.Page, error) {
	r.searches++
	r.lastF = f
	if r.err != nil {
		return repo.Page{}, r.err
	}
	p := repo.Page{Items: make([]domain.Complaint, 0, len(r.items)), Total: r.total}
	for _, c := range r.items {
		p.Items = append(p.Items, c)
		p.Keys = append(p.Keys, c.Company)
	}
	return p, nil
}

func (r *fakeRepo) Complaint(_ context.Context, id string) (domain.Complaint, error) {
	if r.oneErr != nil {
		return domain.Complaint{}, r.oneErr
	}
	c := r.one
	c.ComplaintID = id
	return c, nil
}

func (r *fakeRepo) Agreements(_ context.Context, keys []string) (map[string][]domain.Agreement, error) {
	if r.agErr != nil {
		return nil, r.agErr
	}
	out := map[string][]domain.Agreement{}
	for _, k := range keys {
		if k == "foo" {
			out[k] = []domain.Agreement{fixtureAgreement()}
		}
	}
	return out, nil
}

type fixedFreshness struct{ f resultstate.Freshness }

func (x fixedFreshness) Current() resultstate.Freshness { return x.f }

type fixedCount struct {
	n   int
	err error
}

func (c fixedCount) Count(context.Context) (int, error) { return c.n, c.err }

type recordingObserver struct {
	mu    sync.Mutex
	kinds []displaystate.Kind
}

func (o *recordingObserver) SearchResolved(k displaystate.Kind, _ time.Duration) {
	o.mu.Lock()
	o.kinds = append(o.kinds, k)
	o.mu.Unlock()
}

func fixtureAgreement() domain.Agreement {
	return domain.Agreement{
		Issuer:  "Acme Bank",
		Name:    "Acme Card",
		Offered: "Jan. 15, 2018",
		PK:      2979,
		Slug:    "acme-bank",
		Size:    "110KB",
		URI:     "https://consumerfinance.gov",
	}
}

func fixtureComplaint() domain.Complaint {
	return domain.Complaint{
		Company:                 "foo",
		CompanyPublicResponse:   "Closed",
		CompanyResponse:         "Closed",
		ComplaintID:             "1",
		ComplaintWhatHappened:   "Lorem Ipsum",
		ConsumerConsentProvided: "Yes",
		ConsumerDisputed:        "No",
		DateReceived:            time.Date(2013, 2, 3, 12, 0, 0, 0, time.UTC),
		DateSentToCompany:       time.Date(2013, 1, 1, 12, 0, 0, 0, time.UTC),
		Issue:                   "Foo",
		Product:                 "Bar",
		State:                   "DC",
		SubIssue:                "Baz",
		SubProduct:              "Qaz",
		SubmittedVia:            "email",
		Timely:                  "yes",
		ZipCode:                 "200XX",
		HasNarrative:            true,
	}
}

func newSvc(r *fakeRepo, f resultstate.Freshness, docs fixedCount, opts ...Option) *Svc {
	return New(&fakeDB{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r }),
		fixedFreshness{f: f}, docs, opts...)
}
