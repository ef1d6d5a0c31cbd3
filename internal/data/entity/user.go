package entity

type User struct {
	BaseNoDelete
	Username     string `db:"username"`
	Email        string `db:"email"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	PasswordHash string `db:"password"`
	IsStaff      bool   `db:"is_staff"`
}
