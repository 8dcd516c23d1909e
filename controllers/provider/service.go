package provider

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/scholarlink/scholarlink-api/controllers"
	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/pricing"
)

// ListMyServices returns every service owned by the logged-in provider,
// drafts included
func ListMyServices(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var services []models.Service
	if err := db.DB.
		Preload("Prices").
		Preload("AddOns").
		Where("provider_id = ?", userID).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(services)
}

// CreateService creates a draft service for the logged-in provider
func CreateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(models.Service)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !pricing.ValidCategory(input.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown service category",
		})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	service := models.Service{
		ProviderID:      userID,
		Category:        input.Category,
		Title:           input.Title,
		Description:     input.Description,
		Currency:        models.DefaultCurrency,
		DurationMinutes: pricing.DefaultMinutes(input.Category),
		IsActive:        false,
	}

	// Free consultations are born with their fixed shape
	if service.Category.IsFree() {
		service.ApplyFreeConsultationDefaults()
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// loadOwnService fetches a service and checks ownership
func loadOwnService(c *fiber.Ctx) (*models.Service, error) {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Preload("Prices").Preload("AddOns").
		Where("id = ? AND provider_id = ?", id, userID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService edits a service's title and description
func UpdateService(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	type UpdateInput struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.Title != nil {
		service.Title = *input.Title
	}
	if input.Description != nil {
		service.Description = *input.Description
	}

	if err := db.DB.Save(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}
	controllers.InvalidateCatalogCache()
	return c.JSON(service)
}

// SetDurationChoice sets the service duration from a category choice token
func SetDurationChoice(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	type DurationInput struct {
		Token string `json:"token"`
	}
	input := new(DurationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := service.SetDurationToken(input.Token); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "That duration is not offered for this category",
			"choices": pricing.AllowedChoices(service.Category),
		})
	}

	if err := db.DB.Save(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update duration",
		})
	}
	controllers.InvalidateCatalogCache()
	return c.JSON(service)
}

// SetPrice upserts one academic-level tier
func SetPrice(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	type PriceInput struct {
		AcademicLevel pricing.AcademicLevel `json:"academic_level"`
		Amount        int64                 `json:"amount"`
	}
	input := new(PriceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !pricing.ValidLevel(input.AcademicLevel) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown academic level",
		})
	}
	if input.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Price cannot be negative",
		})
	}
	if service.Category.IsFree() && input.Amount != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Free consultations cannot carry a price",
		})
	}

	// One-statement upsert; concurrent writers resolve through idx_service_level
	price := models.ServicePrice{
		ServiceID:     service.ID,
		AcademicLevel: input.AcademicLevel,
		Amount:        input.Amount,
		Currency:      service.Currency,
	}
	if err := models.UpsertPrice(db.DB, &price); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save price tier",
		})
	}

	controllers.InvalidateCatalogCache()
	return c.JSON(price)
}

// RemovePrice deletes one academic-level tier. Absent tiers are a no-op.
func RemovePrice(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	level := c.Params("level")
	db.DB.Where("service_id = ? AND academic_level = ?", service.ID, level).
		Delete(&models.ServicePrice{})

	controllers.InvalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}

// PutAddOn upserts an add-on on the service
func PutAddOn(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	type AddOnInput struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Amount      int64  `json:"amount"`
	}
	input := new(AddOnInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !pricing.NameAllowed(service.Category, input.Name) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "That add-on is not available for this category",
			"allowed": pricing.AllowedNames(service.Category),
		})
	}
	if input.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Add-on price cannot be negative",
		})
	}

	addOn := models.ServiceAddOn{
		ServiceID:   service.ID,
		Name:        input.Name,
		Description: input.Description,
		Amount:      input.Amount,
		Currency:    service.Currency,
		Active:      true,
	}
	if err := models.UpsertAddOn(db.DB, &addOn); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save add-on",
		})
	}

	controllers.InvalidateCatalogCache()
	return c.JSON(addOn)
}

// RemoveAddOn deletes an add-on by name. Absent names are a no-op.
func RemoveAddOn(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	name := c.Params("name")
	db.DB.Where("service_id = ? AND name = ?", service.ID, name).
		Delete(&models.ServiceAddOn{})

	controllers.InvalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}

// SwitchCategory changes the service category. Switching to free consultation
// zeroes every tier, drops add-ons and resets the duration; that pricing is
// not restored by switching back.
func SwitchCategory(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	type CategoryInput struct {
		Category pricing.ServiceCategory `json:"category"`
	}
	input := new(CategoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !pricing.ValidCategory(input.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown service category",
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		service.Category = input.Category
		service.DurationMinutes = pricing.DefaultMinutes(input.Category)

		if input.Category.IsFree() {
			// Replace tiers with zeros and drop every add-on
			if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServicePrice{}).Error; err != nil {
				return err
			}
			if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceAddOn{}).Error; err != nil {
				return err
			}
			service.ApplyFreeConsultationDefaults()
			for i := range service.Prices {
				if err := tx.Create(&service.Prices[i]).Error; err != nil {
					return err
				}
			}
		} else {
			// Drop add-ons the new category does not allow
			for _, addOn := range service.AddOns {
				if !pricing.NameAllowed(input.Category, addOn.Name) {
					if err := tx.Delete(&models.ServiceAddOn{}, addOn.ID).Error; err != nil {
						return err
					}
				}
			}
		}

		return tx.Model(&models.Service{}).Where("id = ?", service.ID).
			Updates(map[string]interface{}{
				"category":         service.Category,
				"duration_minutes": service.DurationMinutes,
			}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to switch category",
		})
	}

	controllers.InvalidateCatalogCache()

	reloaded, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reload service",
		})
	}
	return c.JSON(reloaded)
}

// PublishService puts the service on the public catalog
func PublishService(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if err := service.Publish(); err != nil {
		if errors.Is(err, models.ErrEmptyPriceTable) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Add at least one price tier before publishing",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to publish service",
		})
	}

	if err := db.DB.Model(service).Update("is_active", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to publish service",
		})
	}
	controllers.InvalidateCatalogCache()
	return c.JSON(service)
}

// DeactivateService takes the service off the catalog without deleting it
func DeactivateService(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	service.Deactivate()
	if err := db.DB.Model(service).Update("is_active", false).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to deactivate service",
		})
	}
	controllers.InvalidateCatalogCache()
	return c.JSON(service)
}

// DeleteService hard-deletes a service. Refused while pending or confirmed
// bookings still reference it; deactivate instead.
func DeleteService(c *fiber.Ctx) error {
	service, err := loadOwnService(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	var activeBookings int64
	db.DB.Model(&models.Booking{}).
		Where("service_id = ? AND status IN ?", service.ID,
			[]models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&activeBookings)
	if activeBookings > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": models.ErrHasActiveBookings.Error(),
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServicePrice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceAddOn{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, service.ID).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}

	controllers.InvalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}
