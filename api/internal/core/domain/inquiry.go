package domain

import (
	"context"
	"time"
)

// InquiryStatusNew is the only workflow state this service ever writes.
// Subsequent states (contacted, closed, ...) are owned by the store and
// whoever administers it, not by this application.
const InquiryStatusNew = "new"

// Inquiry represents a captured lead, exactly one row per successful
// form submission. Never updated or deleted here.
type Inquiry struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	ProductID *string   `json:"product_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ContactRequest is the wire payload of the contact form.
// The tags are the single source of truth for the submission schema.
type ContactRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=50"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,min=10,phone"`
	Message   string  `json:"message" validate:"required,min=10,max=500"`
	ProductID *string `json:"product_id" validate:"omitempty,uuid"`
}

// DashboardStats is the aggregate view served to the admin dashboard.
type DashboardStats struct {
	TotalProducts   int64     `json:"totalProducts"`
	TotalInquiries  int64     `json:"totalInquiries"`
	InquiriesToday  int64     `json:"inquiriesToday"`
	RecentInquiries []Inquiry `json:"recentInquiries"`
}

// InquiryRepository defines the persistence operations of the workflow.
// Insert must go through the privileged handle: the public handle is
// blocked from writing inquiries by row-level security.
type InquiryRepository interface {
	Insert(ctx context.Context, inq *Inquiry) (*Inquiry, error)
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]Inquiry, error)
}

// Notifier sends the two transactional emails of a submission.
// Both sends are advisory: the workflow logs failures and moves on.
type Notifier interface {
	// SendInternalAlert notifies the business inbox about a new inquiry.
	SendInternalAlert(ctx context.Context, inq *Inquiry) error
	// SendConfirmation acknowledges receipt to the submitter.
	SendConfirmation(ctx context.Context, inq *Inquiry) error
}
