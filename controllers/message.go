package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// ListConversations returns the user's conversations ordered by recency.
// Both students and providers use this; the side is picked from the role claim.
func ListConversations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	query := db.DB.Preload("Student").Preload("Provider").
		Order("last_message_at desc")
	if role == "provider" {
		query = query.Where("provider_id = ?", userID)
	} else {
		query = query.Where("student_id = ?", userID)
	}

	var conversations []models.Conversation
	if err := query.Find(&conversations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch conversations",
			Error:   err.Error(),
		})
	}

	for i := range conversations {
		conversations[i].Student.Password = ""
		conversations[i].Student.OTP = ""
		conversations[i].Provider.Password = ""
		conversations[i].Provider.OTP = ""
	}
	return c.JSON(conversations)
}

// GetMessages returns a conversation's messages, oldest first, and marks the
// other party's messages as read
func GetMessages(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var conversation models.Conversation
	if err := db.DB.
		Where("id = ? AND (student_id = ? OR provider_id = ?)", id, userID, userID).
		First(&conversation).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}

	var messages []models.Message
	if err := db.DB.
		Where("conversation_id = ?", conversation.ID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch messages",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	db.DB.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND read_at IS NULL", conversation.ID, userID).
		Update("read_at", now)

	return c.JSON(messages)
}

// SendMessageInput is a chat message submission
type SendMessageInput struct {
	RecipientID uint   `json:"recipient_id"`
	Body        string `json:"body"`
}

// SendMessage posts a message to the recipient, creating the conversation
// on first contact
func SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	input := new(SendMessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if strings.TrimSpace(input.Body) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message body cannot be empty",
		})
	}

	studentID, providerID := userID, input.RecipientID
	if role == "provider" {
		studentID, providerID = input.RecipientID, userID
	}

	var message models.Message
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var conversation models.Conversation
		err := tx.Where("student_id = ? AND provider_id = ?", studentID, providerID).
			First(&conversation).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			conversation = models.Conversation{
				StudentID:  studentID,
				ProviderID: providerID,
			}
			err = tx.Create(&conversation).Error
		}
		if err != nil {
			return err
		}

		message = models.Message{
			ConversationID: conversation.ID,
			SenderID:       userID,
			Body:           input.Body,
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&conversation).Update("last_message_at", time.Now()).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to send message",
			Error:   err.Error(),
		})
	}

	utils.Notify(input.RecipientID, "new_message",
		"New message", "You have received a new message.")

	return c.Status(fiber.StatusCreated).JSON(message)
}
