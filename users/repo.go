package users

type UserRepo interface {
	Upsert(user *User) error
	GetByUsername(username string) (*User, error)
}
