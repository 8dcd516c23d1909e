package student

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/pricing"
	"github.com/scholarlink/scholarlink-api/utils"
)

// GetMyProfile returns the logged-in student's profile
func GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.StudentProfile
	if err := db.DB.Where("student_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}
	return c.JSON(profile)
}

// UpdateMyProfile edits the student's profile
func UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.StudentProfile
	if err := db.DB.Where("student_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	type ProfileInput struct {
		Institution   *string                `json:"institution"`
		Program       *string                `json:"program"`
		AcademicLevel *pricing.AcademicLevel `json:"academic_level"`
		Interests     *models.StringSlice    `json:"interests"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.AcademicLevel != nil && !pricing.ValidLevel(*input.AcademicLevel) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown academic level",
		})
	}

	if input.Institution != nil {
		profile.Institution = *input.Institution
	}
	if input.Program != nil {
		profile.Program = *input.Program
	}
	if input.AcademicLevel != nil {
		profile.AcademicLevel = *input.AcademicLevel
	}
	if input.Interests != nil {
		profile.Interests = *input.Interests
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}
	return c.JSON(profile)
}

// UpdateAvatar uploads a new profile picture to Cloudinary
func UpdateAvatar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.StudentProfile
	if err := db.DB.Where("student_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Avatar file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("student-%d-avatar", userID), "avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload avatar",
		})
	}

	profile.AvatarURL = url
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save avatar",
		})
	}
	return c.JSON(profile)
}
