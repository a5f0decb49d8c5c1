package models

import "gorm.io/datatypes"

// Message is one direct message between two accounts. A conversation is the
// unordered pair {sender, receiver}; history is displayed ascending by time.
type Message struct {
	BaseModel

	Content     string                      `json:"content"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	SenderID   uint    `json:"sender_id"`
	Sender     Account `json:"sender"`
	ReceiverID uint    `json:"receiver_id"`
	Receiver   Account `json:"receiver"`
}

// BelongsToPair reports whether the message travels between the two given
// accounts, in either direction.
func (v Message) BelongsToPair(a, b uint) bool {
	return (v.SenderID == a && v.ReceiverID == b) || (v.SenderID == b && v.ReceiverID == a)
}
