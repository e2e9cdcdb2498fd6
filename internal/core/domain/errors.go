package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Entity errors
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrIssuanceNotFound   = errors.New("issuance record not found")
	ErrContactNotFound    = errors.New("contact message not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCollectionNotFound = errors.New("collection not found")
)

// Referential integrity errors
var (
	ErrMemberHasIssuances = errors.New("member has existing issuance records")
	ErrBookHasIssuances   = errors.New("book has existing issuance records")
)
