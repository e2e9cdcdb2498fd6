package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReportService handles the fixed read-only report queries
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// NeverBorrowedBook represents a book with zero issuance records
type NeverBorrowedBook struct {
	BookName      string `json:"book_name"`
	BookPublisher string `json:"book_publisher"`
}

// OutstandingBook represents a pending issuance joined to member and book
type OutstandingBook struct {
	Member           string    `json:"member"`
	Book             string    `json:"book"`
	IssuanceDate     time.Time `json:"issuance_date"`
	TargetReturnDate time.Time `json:"target_return_date"`
	Publisher        string    `json:"publisher"`
}

// TopBorrowedBook represents per-book borrow counts.
// Counts scan into int64, which serializes as a plain JSON number.
type TopBorrowedBook struct {
	BookName        string `json:"book_name"`
	TimesBorrowed   int64  `json:"times_borrowed"`
	MembersBorrowed int64  `json:"members_borrowed"`
}

// GetNeverBorrowedBooks returns books that have never been issued
// (anti-join on issuances)
func (s *ReportService) GetNeverBorrowedBooks(ctx context.Context) ([]NeverBorrowedBook, error) {
	books := []NeverBorrowedBook{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT b.book_name, b.book_publisher
		FROM books b
		LEFT JOIN issuances i ON b.book_id = i.book_id
		WHERE i.book_id IS NULL`).
		Scan(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetOutstandingBooks returns issuances whose status is exactly "pending",
// joined to member and book. The status literal is part of the contract.
func (s *ReportService) GetOutstandingBooks(ctx context.Context) ([]OutstandingBook, error) {
	books := []OutstandingBook{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT m.mem_name AS member,
		       b.book_name AS book,
		       i.issuance_date,
		       i.target_return_date,
		       b.book_publisher AS publisher
		FROM issuances i
		JOIN books b ON i.book_id = b.book_id
		JOIN members m ON i.member_id = m.mem_id
		WHERE i.issuance_status = 'pending'`).
		Scan(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetTopBorrowedBooks returns the 10 most borrowed books by issuance count,
// with the number of distinct members per book. Order among equal counts
// is whatever the engine produces.
func (s *ReportService) GetTopBorrowedBooks(ctx context.Context) ([]TopBorrowedBook, error) {
	books := []TopBorrowedBook{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT b.book_name,
		       COUNT(i.book_id) AS times_borrowed,
		       COUNT(DISTINCT i.member_id) AS members_borrowed
		FROM issuances i
		JOIN books b ON i.book_id = b.book_id
		GROUP BY b.book_id, b.book_name
		ORDER BY times_borrowed DESC
		LIMIT 10`).
		Scan(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}
