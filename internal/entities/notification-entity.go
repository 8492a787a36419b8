package entities

type Notification struct {
	ID        int64  `json:"notification_id"`
	Type      string `json:"notification_type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (n Notification) PrimaryKey() int64 { return n.ID }
