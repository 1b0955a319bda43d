package memory

import (
	"slices"

	"adminsearch-be/internal/entity"
)

// RecordSource serves a fixed dataset. Every accessor hands out a copy so
// callers cannot mutate the backing slices.
type RecordSource struct {
	users        []entity.User
	transactions []entity.Transaction
	withdrawals  []entity.Withdrawal
	contents     []entity.Content
}

func NewRecordSource(users []entity.User, transactions []entity.Transaction, withdrawals []entity.Withdrawal, contents []entity.Content) *RecordSource {
	return &RecordSource{
		users:        slices.Clone(users),
		transactions: slices.Clone(transactions),
		withdrawals:  slices.Clone(withdrawals),
		contents:     slices.Clone(contents),
	}
}

// NewSampleRecordSource returns the dashboard's demo dataset.
func NewSampleRecordSource() *RecordSource {
	return NewRecordSource(sampleUsers, sampleTransactions, sampleWithdrawals, sampleContents)
}

func (s *RecordSource) Users() []entity.User               { return slices.Clone(s.users) }
func (s *RecordSource) Transactions() []entity.Transaction { return slices.Clone(s.transactions) }
func (s *RecordSource) Withdrawals() []entity.Withdrawal   { return slices.Clone(s.withdrawals) }
func (s *RecordSource) Contents() []entity.Content         { return slices.Clone(s.contents) }

var sampleUsers = []entity.User{
	{Id: "user-1", Name: "Rahul Sharma", Email: "rahul@example.com", Phone: "+91 98765 43210", Status: entity.UserStatusActive, Role: entity.UserRoleConsumer},
	{Id: "user-2", Name: "Priya Patel", Email: "priya@example.com", Phone: "+91 87654 32109", Status: entity.UserStatusActive, Role: entity.UserRoleCreator},
	{Id: "user-3", Name: "Amit Kumar", Email: "amit@example.com", Phone: "+91 76543 21098", Status: entity.UserStatusBlocked, Role: entity.UserRoleConsumer},
	{Id: "user-4", Name: "Sneha Reddy", Email: "sneha@example.com", Phone: "+91 65432 10987", Status: entity.UserStatusActive, Role: entity.UserRoleCreator},
	{Id: "user-5", Name: "Vikram Singh", Email: "vikram@example.com", Phone: "+91 54321 09876", Status: entity.UserStatusActive, Role: entity.UserRoleConsumer},
}

var sampleTransactions = []entity.Transaction{
	{Id: "txn-1", User: "Rahul Sharma", Type: "Game Win", Amount: 500, Date: "2024-01-15", Status: "Completed"},
	{Id: "txn-2", User: "Priya Patel", Type: "Top-up", Amount: 1000, Date: "2024-01-14", Status: "Completed"},
	{Id: "txn-3", User: "Amit Kumar", Type: "Ad Reward", Amount: 50, Date: "2024-01-14", Status: "Completed"},
	{Id: "txn-4", User: "Sneha Reddy", Type: "Creator Payout", Amount: 3200, Date: "2024-01-13", Status: "Completed"},
	{Id: "txn-5", User: "Vikram Singh", Type: "Game Entry", Amount: 200, Date: "2024-01-12", Status: "Completed"},
}

var sampleWithdrawals = []entity.Withdrawal{
	{Id: "wd-1", User: "Rahul Sharma", Amount: 2500, Status: entity.WithdrawalStatusPending, Date: "2024-01-15", Phone: "+91 98765 43210"},
	{Id: "wd-2", User: "Priya Patel", Amount: 5000, Status: entity.WithdrawalStatusApproved, Date: "2024-01-14", Phone: "+91 87654 32109"},
	{Id: "wd-3", User: "Amit Kumar", Amount: 1000, Status: entity.WithdrawalStatusRejected, Date: "2024-01-13", Phone: "+91 76543 21098"},
	{Id: "wd-4", User: "Sneha Reddy", Amount: 7500, Status: entity.WithdrawalStatusPending, Date: "2024-01-12", Phone: "+91 65432 10987"},
}

var sampleContents = []entity.Content{
	{Id: "content-1", Title: "Gaming Tips & Tricks", Creator: "Priya Patel", Category: "Gaming", Status: entity.ContentStatusApproved, Views: 15420},
	{Id: "content-2", Title: "Tech Review", Creator: "Sneha Reddy", Category: "Technology", Status: entity.ContentStatusFlagged, Views: 8930},
	{Id: "content-3", Title: "Cooking Masterclass", Creator: "Priya Patel", Category: "Lifestyle", Status: entity.ContentStatusUnderReview, Views: 3210},
	{Id: "content-4", Title: "Fitness Journey", Creator: "Vikram Singh", Category: "Health", Status: entity.ContentStatusApproved, Views: 12050},
}
