package domain

import "time"

// ApplicationStatus represents the review state of a seller application.
type ApplicationStatus string

// Application statuses.
const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsFinal reports whether the application has already been reviewed.
func (s ApplicationStatus) IsFinal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// SellerCategories are the product categories a seller may declare.
var SellerCategories = []string{
	"Paintings",
	"Sculptures",
	"Photography",
	"Digital Art",
	"Prints",
	"Mixed Media",
	"Ceramics",
	"Textiles",
}

// SellerApplication is a request from a customer to become a seller.
type SellerApplication struct {
	ID            string            `json:"id"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	Username      string            `json:"username"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Category      string            `json:"category"`
	Background    string            `json:"background"`
	AgreesToTerms bool              `json:"agrees_to_terms"`
	SubmittedBy   string            `json:"submitted_by"`
	Status        ApplicationStatus `json:"status"`
	SubmittedAt   time.Time         `json:"submitted_at"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty"`
}

// FullName joins first and last name.
func (a *SellerApplication) FullName() string {
	return a.FirstName + " " + a.LastName
}
