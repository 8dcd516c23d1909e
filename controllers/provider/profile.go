package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// GetMyProfile returns the logged-in provider's profile
func GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.ProviderProfile
	if err := db.DB.Where("provider_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}
	return c.JSON(profile)
}

// UpdateMyProfile edits the provider's public profile
func UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.ProviderProfile
	if err := db.DB.Where("provider_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	type ProfileInput struct {
		Headline          *string             `json:"headline"`
		Bio               *string             `json:"bio"`
		Institution       *string             `json:"institution"`
		Country           *string             `json:"country"`
		City              *string             `json:"city"`
		Expertise         *models.StringSlice `json:"expertise"`
		Languages         *models.StringSlice `json:"languages"`
		ResearchInterests *models.StringSlice `json:"research_interests"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Headline != nil {
		profile.Headline = *input.Headline
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Institution != nil {
		profile.Institution = *input.Institution
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.Expertise != nil {
		profile.Expertise = *input.Expertise
	}
	if input.Languages != nil {
		profile.Languages = *input.Languages
	}
	if input.ResearchInterests != nil {
		profile.ResearchInterests = *input.ResearchInterests
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

	var profile models.ProviderProfile
	if err := db.DB.Where("provider_id = ?", userID).First(&profile).Error; err != nil {
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

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("provider-%d-avatar", userID), "avatars")
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

	return c.JSON(fiber.Map{"avatar_url": url})
}
