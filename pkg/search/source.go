package search

import "adminsearch-be/internal/entity"

// Source is the read-only record set an Engine scans. Implementations must
// return records in a stable order; that order is the result order.
type Source interface {
	Users() []entity.User
	Transactions() []entity.Transaction
	Withdrawals() []entity.Withdrawal
	Contents() []entity.Content
}
