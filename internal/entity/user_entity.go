// FILE: internal/entity/user_entity.go
package entity

type UserRole string
type UserStatus string

const (
	UserRoleConsumer UserRole = "Consumer"
	UserRoleCreator  UserRole = "Creator"

	UserStatusActive  UserStatus = "Active"
	UserStatusBlocked UserStatus = "Blocked"
)

type User struct {
	Id     string
	Name   string
	Email  string
	Phone  string
	Status UserStatus
	Role   UserRole
}
