package supabase

import (
	"context"
	"time"

	"github.com/supabase-community/postgrest-go"

	"muebleria/api/internal/core/domain"
)

const inquiriesTable = "inquiries"

// InquiryRepo persists and reads leads. Writes go through the
// privileged handle: row-level security blocks anonymous inserts.
type InquiryRepo struct {
	handles *Handles
}

func NewInquiryRepo(handles *Handles) *InquiryRepo {
	return &InquiryRepo{handles: handles}
}

// inquiryInsert is the exact column set we are allowed to write.
// id and created_at are assigned by the store.
type inquiryInsert struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Message   string  `json:"message"`
	ProductID *string `json:"product_id"`
	Status    string  `json:"status"`
}

// Insert writes exactly one row and returns it with the store-assigned
// identifier. No deduplication: identical submissions make distinct rows.
func (r *InquiryRepo) Insert(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	client, err := r.handles.Get(true)
	if err != nil {
		return nil, err
	}

	row := inquiryInsert{
		Name:      inq.Name,
		Email:     inq.Email,
		Phone:     inq.Phone,
		Message:   inq.Message,
		ProductID: inq.ProductID,
		Status:    inq.Status,
	}

	var created domain.Inquiry
	_, err = client.From(inquiriesTable).
		Insert(row, false, "", "representation", "").
		Single().
		ExecuteToWithContext(ctx, &created)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &created, nil
}

func (r *InquiryRepo) CountAll(ctx context.Context) (int64, error) {
	client, err := r.handles.Get(false)
	if err != nil {
		return 0, err
	}
	_, count, err := client.From(inquiriesTable).
		Select("id", "exact", true).
		ExecuteWithContext(ctx)
	if err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}

func (r *InquiryRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	client, err := r.handles.Get(false)
	if err != nil {
		return 0, err
	}
	_, count, err := client.From(inquiriesTable).
		Select("id", "exact", true).
		Gte("created_at", since.UTC().Format(time.RFC3339)).
		ExecuteWithContext(ctx)
	if err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}

func (r *InquiryRepo) ListRecent(ctx context.Context, limit int) ([]domain.Inquiry, error) {
	client, err := r.handles.Get(false)
	if err != nil {
		return nil, err
	}
	var inquiries []domain.Inquiry
	_, err = client.From(inquiriesTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteToWithContext(ctx, &inquiries)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return inquiries, nil
}
