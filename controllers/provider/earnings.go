package provider

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/redis"
	"github.com/scholarlink/scholarlink-api/utils"
)

// withdrawalCooldown is the minimum gap between withdrawal requests, enforced
// server-side so a retried or scripted submission cannot double-request.
const withdrawalCooldown = 30 * time.Second

// GetEarnings returns the provider's earnings summary: gross from completed
// and paid bookings, minus withdrawals already requested or paid out.
func GetEarnings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type SumResult struct {
		Total int64
	}

	var gross SumResult
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ? AND payment_status = ?",
			userID, models.StatusCompleted, models.PaymentPaid).
		Select("COALESCE(SUM(total_price), 0) as total").
		Scan(&gross)

	var withdrawn SumResult
	db.DB.Model(&models.Withdrawal{}).
		Where("provider_id = ? AND status IN ?", userID,
			[]models.WithdrawalStatus{models.WithdrawalPending, models.WithdrawalPaid}).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&withdrawn)

	return c.JSON(fiber.Map{
		"gross_earnings":    gross.Total,
		"withdrawn":         withdrawn.Total,
		"available_balance": gross.Total - withdrawn.Total,
		"currency":          models.DefaultCurrency,
	})
}

// RequestWithdrawal creates a payout request against the available balance
func RequestWithdrawal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	// One request per cooldown window per provider
	cooldownKey := fmt.Sprintf("withdrawal-cooldown:%d", userID)
	if redis.Client != nil {
		set, err := redis.Client.SetNX(redis.Ctx, cooldownKey, 1, withdrawalCooldown).Result()
		if err == nil && !set {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Please wait a moment before requesting another withdrawal",
			})
		}
	}

	type WithdrawalInput struct {
		Amount  int64  `json:"amount"`
		Method  string `json:"method"`
		Account string `json:"account"`
	}
	input := new(WithdrawalInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Withdrawal amount must be positive",
		})
	}
	if input.Method == "" || input.Account == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Payout method and account are required",
		})
	}

	// Check the available balance
	type SumResult struct {
		Total int64
	}
	var gross SumResult
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ? AND payment_status = ?",
			userID, models.StatusCompleted, models.PaymentPaid).
		Select("COALESCE(SUM(total_price), 0) as total").
		Scan(&gross)

	var withdrawn SumResult
	db.DB.Model(&models.Withdrawal{}).
		Where("provider_id = ? AND status IN ?", userID,
			[]models.WithdrawalStatus{models.WithdrawalPending, models.WithdrawalPaid}).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&withdrawn)

	available := gross.Total - withdrawn.Total
	if input.Amount > available {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":             "Withdrawal amount exceeds available balance",
			"available_balance": available,
		})
	}

	withdrawal := models.Withdrawal{
		ProviderID: userID,
		Reference:  uuid.NewString(),
		Amount:     input.Amount,
		Currency:   models.DefaultCurrency,
		Method:     input.Method,
		Account:    input.Account,
		Status:     models.WithdrawalPending,
	}
	if err := db.DB.Create(&withdrawal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create withdrawal request",
		})
	}

	utils.Notify(userID, "payment",
		"Withdrawal requested",
		fmt.Sprintf("Your withdrawal request of %d %s has been received and is pending review.",
			withdrawal.Amount, withdrawal.Currency))

	return c.Status(fiber.StatusCreated).JSON(withdrawal)
}

// ListMyWithdrawals returns the provider's withdrawal history
func ListMyWithdrawals(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var withdrawals []models.Withdrawal
	if err := db.DB.Where("provider_id = ?", userID).
		Order("created_at desc").
		Find(&withdrawals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch withdrawals",
		})
	}
	return c.JSON(withdrawals)
}
