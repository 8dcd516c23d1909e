package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/redis"
)

const catalogCacheKey = "catalog:active-services"
const catalogCacheTTL = 60 * time.Second

// GetAllServices returns the public catalog of active services
func GetAllServices(c *fiber.Ctx) error {
	// Category and provider filters bypass the cache
	category := c.Query("category")
	providerID := c.Query("provider_id")

	if category == "" && providerID == "" && redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, catalogCacheKey).Result(); err == nil {
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}
	}

	query := db.DB.
		Preload("Prices").
		Preload("AddOns", "active = ?", true).
		Preload("Provider").
		Where("is_active = ?", true)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if providerID != "" {
		query = query.Where("provider_id = ?", providerID)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for i := range services {
		services[i].Provider.Password = ""
		services[i].Provider.OTP = ""
	}

	if category == "" && providerID == "" && redis.Client != nil {
		if payload, err := json.Marshal(services); err == nil {
			redis.Client.Set(redis.Ctx, catalogCacheKey, payload, catalogCacheTTL)
		}
	}

	return c.JSON(services)
}

// GetService returns one service with its tiers and add-ons
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.
		Preload("Prices").
		Preload("AddOns").
		Preload("Provider").
		First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	service.Provider.Password = ""
	service.Provider.OTP = ""
	return c.JSON(service)
}

// InvalidateCatalogCache drops the cached public catalog after a service
// changes. Safe to call with redis down.
func InvalidateCatalogCache() {
	if redis.Client != nil {
		redis.Client.Del(redis.Ctx, catalogCacheKey)
	}
}
