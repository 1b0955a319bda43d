package search

import (
	"fmt"

	"adminsearch-be/internal/entity"
)

type ResultType string

const (
	ResultTypeUser        ResultType = "user"
	ResultTypeTransaction ResultType = "transaction"
	ResultTypeWithdrawal  ResultType = "withdrawal"
	ResultTypeContent     ResultType = "content"
)

func (t ResultType) Valid() bool {
	switch t {
	case ResultTypeUser, ResultTypeTransaction, ResultTypeWithdrawal, ResultTypeContent:
		return true
	}
	return false
}

// Result is one matching record. The concrete type tells which category it
// came from and carries that category's record unchanged.
type Result interface {
	ID() string
	Type() ResultType
	Title() string
	Description() string
}

type UserResult struct {
	User entity.User
}

func (r UserResult) ID() string       { return r.User.Id }
func (r UserResult) Type() ResultType { return ResultTypeUser }
func (r UserResult) Title() string    { return r.User.Name }
func (r UserResult) Description() string {
	return fmt.Sprintf("%s • %s", r.User.Role, r.User.Email)
}

type TransactionResult struct {
	Transaction entity.Transaction
}

func (r TransactionResult) ID() string       { return r.Transaction.Id }
func (r TransactionResult) Type() ResultType { return ResultTypeTransaction }
func (r TransactionResult) Title() string {
	return fmt.Sprintf("%s - %s", r.Transaction.Type, r.Transaction.User)
}
func (r TransactionResult) Description() string {
	return fmt.Sprintf("%s • %s", r.Transaction.Id, r.Transaction.Date)
}

type WithdrawalResult struct {
	Withdrawal entity.Withdrawal
}

func (r WithdrawalResult) ID() string       { return r.Withdrawal.Id }
func (r WithdrawalResult) Type() ResultType { return ResultTypeWithdrawal }
func (r WithdrawalResult) Title() string {
	return fmt.Sprintf("Withdrawal - %s", r.Withdrawal.User)
}
func (r WithdrawalResult) Description() string {
	return fmt.Sprintf("%s • %s", r.Withdrawal.Phone, r.Withdrawal.Date)
}

type ContentResult struct {
	Content entity.Content
}

func (r ContentResult) ID() string       { return r.Content.Id }
func (r ContentResult) Type() ResultType { return ResultTypeContent }
func (r ContentResult) Title() string    { return r.Content.Title }
func (r ContentResult) Description() string {
	return fmt.Sprintf("by %s • %d views", r.Content.Creator, r.Content.Views)
}
