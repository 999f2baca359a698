package constants

// Context keys shared between middleware and handlers.
const (
	ContextKeyUserID     = "user_id"
	ContextKeyHousehold  = "household"
	ContextKeyMembership = "household_member"
	ContextKeyItem       = "shopping_item"
)

// Pagination bounds.
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DietaryNotesNone is the placeholder stored when a profile has no
// dietary notes, kept for compatibility with existing clients.
const DietaryNotesNone = "keine"
