package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Catalog Masters (seeded, read-only over HTTP)
// ============================================================

// Category represents categories table
type Category struct {
	CatID      uint   `gorm:"column:cat_id;primaryKey" json:"cat_id"`
	CatName    string `gorm:"column:cat_name;size:100;not null" json:"cat_name"`
	SubCatName string `gorm:"column:sub_cat_name;size:100" json:"sub_cat_name"`
}

func (Category) TableName() string {
	return "categories"
}

// Collection represents collections table
type Collection struct {
	CollectionID   uint   `gorm:"column:collection_id;primaryKey" json:"collection_id"`
	CollectionName string `gorm:"column:collection_name;size:100;not null" json:"collection_name"`
}

func (Collection) TableName() string {
	return "collections"
}

// ============================================================
// Library Entities
// ============================================================

// Member represents members table
type Member struct {
	MemID    uint   `gorm:"column:mem_id;primaryKey" json:"mem_id"`
	MemName  string `gorm:"column:mem_name;size:100;not null" json:"mem_name"`
	MemPhone string `gorm:"column:mem_phone;size:30;not null" json:"mem_phone"`
	MemEmail string `gorm:"column:mem_email;size:100;not null" json:"mem_email"`
}

func (Member) TableName() string {
	return "members"
}

// Book represents books table.
// Category/Collection FKs are enforced at the database level (RESTRICT),
// so an insert racing a referent delete fails atomically.
type Book struct {
	BookID           uint      `gorm:"column:book_id;primaryKey" json:"book_id"`
	BookName         string    `gorm:"column:book_name;size:200;not null" json:"book_name"`
	BookLaunchDate   time.Time `gorm:"column:book_launch_date;not null" json:"book_launch_date"`
	BookPublisher    string    `gorm:"column:book_publisher;size:150;not null" json:"book_publisher"`
	BookCatID        uint      `gorm:"column:book_cat_id;not null;index" json:"book_cat_id"`
	BookCollectionID uint      `gorm:"column:book_collection_id;not null;index" json:"book_collection_id"`

	Category   *Category   `gorm:"foreignKey:BookCatID;references:CatID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Collection *Collection `gorm:"foreignKey:BookCollectionID;references:CollectionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"collection,omitempty"`
}

func (Book) TableName() string {
	return "books"
}

// Issuance represents issuances table.
// One row per loan event; a book may have many issuances over time.
// IssuanceDate is set server-side on create and never updated.
type Issuance struct {
	IssuanceID       uint      `gorm:"column:issuance_id;primaryKey" json:"issuance_id"`
	BookID           uint      `gorm:"column:book_id;not null;index" json:"book_id"`
	MemberID         uint      `gorm:"column:member_id;not null;index" json:"member_id"`
	IssuedBy         string    `gorm:"column:issued_by;size:100;not null" json:"issued_by"`
	IssuanceDate     time.Time `gorm:"column:issuance_date;not null" json:"issuance_date"`
	TargetReturnDate time.Time `gorm:"column:target_return_date;not null" json:"target_return_date"`
	IssuanceStatus   string    `gorm:"column:issuance_status;size:20;not null" json:"issuance_status"`

	Book   *Book   `gorm:"foreignKey:BookID;references:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"book,omitempty"`
	Member *Member `gorm:"foreignKey:MemberID;references:MemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"member,omitempty"`
}

func (Issuance) TableName() string {
	return "issuances"
}

// IsOverdue reports whether a pending issuance is past its target return date.
func (i *Issuance) IsOverdue(now time.Time) bool {
	return i.IssuanceStatus == "pending" && now.After(i.TargetReturnDate)
}

// Contact represents contacts table. Write-once; no update path exists.
type Contact struct {
	ContactID uint      `gorm:"column:contact_id;primaryKey" json:"contact_id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Email     string    `gorm:"column:email;size:100;not null" json:"email"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// AutoMigrate runs auto migration for all tables.
// Referents first so FK constraints resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Category{},
		&Collection{},
		&Member{},
		&Book{},
		&Issuance{},
		&Contact{},
	)
}
