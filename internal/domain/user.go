package domain

const (
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

type User struct {
	ID        int64  `db:"id" json:"id"`
	Fullname  string `db:"fullname" json:"fullname"`
	Phone     string `db:"phone" json:"phone"`
	Password  string `db:"password" json:"-"`
	Role      string `db:"role" json:"role"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
