package domain

// User is the customer as far as notifications are concerned.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
