package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

// RecordFields returns a record's columns as a flat map for the generic
// JSON endpoint. The dispatch over models is closed: an unknown model is
// entity.ErrUnknownModel, never a dynamic lookup.
func (s *Service) RecordFields(ctx context.Context, model entity.Model, id uuid.UUID) (map[string]any, error) {
	switch model {
	case entity.ModelLead:
		l, err := s.repo.Lead(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":       l.ID,
			"name":     l.Name,
			"email":    l.Email,
			"phone":    l.Phone,
			"company":  l.Company,
			"notes":    l.Notes,
			"status":   l.Status,
			"owner_id": l.OwnerID,
		}, nil
	case entity.ModelAccount:
		a, err := s.repo.Account(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":       a.ID,
			"name":     a.Name,
			"industry": a.Industry,
			"email":    a.Email,
			"phone":    a.Phone,
			"address":  a.Address,
			"notes":    a.Notes,
			"owner_id": a.OwnerID,
		}, nil
	case entity.ModelContact:
		c, err := s.repo.Contact(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":         c.ID,
			"name":       c.Name,
			"email":      c.Email,
			"phone":      c.Phone,
			"title":      c.Title,
			"account_id": c.AccountID,
			"owner_id":   c.OwnerID,
		}, nil
	case entity.ModelDeal:
		d, err := s.repo.Deal(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":         d.ID,
			"name":       d.Name,
			"amount":     d.Amount,
			"stage":      d.Stage,
			"close_date": d.CloseDate,
			"account_id": d.AccountID,
			"owner_id":   d.OwnerID,
		}, nil
	case entity.ModelProduct:
		p, err := s.repo.Product(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"price":       p.Price,
			"description": p.Description,
			"owner_id":    p.OwnerID,
		}, nil
	case entity.ModelPricebook:
		p, err := s.repo.Pricebook(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"owner_id":    p.OwnerID,
		}, nil
	case entity.ModelPricebookEntry:
		e, err := s.repo.PricebookEntry(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":           e.ID,
			"product_id":   e.ProductID,
			"pricebook_id": e.PricebookID,
			"unit_price":   e.UnitPrice,
			"owner_id":     e.OwnerID,
		}, nil
	case entity.ModelQuote:
		q, err := s.repo.Quote(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":              q.ID,
			"deal_id":         q.DealID,
			"total":           q.Total,
			"expiration_date": q.ExpirationDate,
			"owner_id":        q.OwnerID,
		}, nil
	case entity.ModelQuoteLineItem:
		i, err := s.repo.QuoteLineItem(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":         i.ID,
			"quote_id":   i.QuoteID,
			"product_id": i.ProductID,
			"quantity":   i.Quantity,
			"price":      i.Price,
			"owner_id":   i.OwnerID,
		}, nil
	case entity.ModelTask:
		t, err := s.repo.Task(ctx, id)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"id":          t.ID,
			"description": t.Description,
			"due_date":    t.DueDate,
			"status":      t.Status,
			"model":       t.Model,
			"record_id":   t.RecordID,
			"owner_id":    t.OwnerID,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownModel, model)
	}
}

// SearchHit is one global-search result: a display name plus the path of
// the record behind it.
type SearchHit struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Path string    `json:"path"`
}

type SearchResults struct {
	Leads    []SearchHit `json:"leads"`
	Accounts []SearchHit `json:"accounts"`
	Contacts []SearchHit `json:"contacts"`
	Deals    []SearchHit `json:"deals"`
}

// Search runs the global name search over leads, accounts, contacts and
// deals. An empty query matches everything, as on the list pages.
func (s *Service) Search(ctx context.Context, q string) (SearchResults, error) {
	var results SearchResults

	leads, err := s.repo.Leads(ctx, q)
	if err != nil {
		return SearchResults{}, err
	}

	for _, l := range leads {
		hit, err := newSearchHit(entity.ModelLead, l.ID, l.Name)
		if err != nil {
			return SearchResults{}, err
		}

		results.Leads = append(results.Leads, hit)
	}

	accounts, err := s.repo.Accounts(ctx, q)
	if err != nil {
		return SearchResults{}, err
	}

	for _, a := range accounts {
		hit, err := newSearchHit(entity.ModelAccount, a.ID, a.Name)
		if err != nil {
			return SearchResults{}, err
		}

		results.Accounts = append(results.Accounts, hit)
	}

	contacts, err := s.repo.Contacts(ctx, q)
	if err != nil {
		return SearchResults{}, err
	}

	for _, c := range contacts {
		hit, err := newSearchHit(entity.ModelContact, c.ID, c.Name)
		if err != nil {
			return SearchResults{}, err
		}

		results.Contacts = append(results.Contacts, hit)
	}

	deals, err := s.repo.Deals(ctx, q)
	if err != nil {
		return SearchResults{}, err
	}

	for _, d := range deals {
		hit, err := newSearchHit(entity.ModelDeal, d.ID, d.Name)
		if err != nil {
			return SearchResults{}, err
		}

		results.Deals = append(results.Deals, hit)
	}

	return results, nil
}

func newSearchHit(model entity.Model, id uuid.UUID, name string) (SearchHit, error) {
	path, err := model.RoutePath(id)
	if err != nil {
		return SearchHit{}, err
	}

	return SearchHit{ID: id, Name: name, Path: path}, nil
}
