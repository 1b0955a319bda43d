// FILE: internal/entity/search_record_entity.go
package entity

type WithdrawalStatus string
type ContentStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "Pending"
	WithdrawalStatusApproved WithdrawalStatus = "Approved"
	WithdrawalStatusRejected WithdrawalStatus = "Rejected"

	ContentStatusApproved    ContentStatus = "Approved"
	ContentStatusUnderReview ContentStatus = "Under Review"
	ContentStatusFlagged     ContentStatus = "Flagged"
)

// Transaction.Type is free-form ("Game Win", "Top-up", ...).
type Transaction struct {
	Id     string
	User   string
	Type   string
	Amount int64
	Date   string
	Status string
}

type Withdrawal struct {
	Id     string
	User   string
	Amount int64
	Status WithdrawalStatus
	Date   string
	Phone  string
}

type Content struct {
	Id       string
	Title    string
	Creator  string
	Category string
	Status   ContentStatus
	Views    int64
}
