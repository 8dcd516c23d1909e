package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is the single thread between one student and one provider.
type Conversation struct {
	gorm.Model
	StudentID     uint      `json:"student_id" gorm:"uniqueIndex:idx_conversation_pair"`
	Student       User      `json:"student" gorm:"foreignKey:StudentID"`
	ProviderID    uint      `json:"provider_id" gorm:"uniqueIndex:idx_conversation_pair"`
	Provider      User      `json:"provider" gorm:"foreignKey:ProviderID"`
	LastMessageAt time.Time `json:"last_message_at"`
	Messages      []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID"`
}

type Message struct {
	gorm.Model
	ConversationID uint       `json:"conversation_id"`
	SenderID       uint       `json:"sender_id"`
	Sender         User       `json:"sender" gorm:"foreignKey:SenderID"`
	Body           string     `json:"body"`
	ReadAt         *time.Time `json:"read_at"`
}
