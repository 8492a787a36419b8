package entities

type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Manager  bool   `json:"is_manager"`
}

func (u User) PrimaryKey() int64 { return u.ID }
