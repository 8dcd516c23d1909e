package db

import (
	"fmt"
	"log"

	"github.com/scholarlink/scholarlink-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.ProviderProfile{},
		&models.StudentProfile{},
		&models.Service{},
		&models.ServicePrice{},
		&models.ServiceAddOn{},
		&models.Booking{},
		&models.Payment{},
		&models.Withdrawal{},
		&models.Conversation{},
		&models.Message{},
		&models.Notification{},
		&models.ThesisMilestone{},
		&models.MilestoneDocument{},
		&models.Review{},
		&models.WeeklySlot{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// One provider can hold a given slot only once while the booking is still
	// live. Terminal bookings release the slot. This is what turns a double
	// submission into a SlotAlreadyBooked error instead of a silent double
	// booking.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_provider_slot
		ON bookings (provider_id, scheduled_at)
		WHERE status IN ('pending', 'confirmed') AND deleted_at IS NULL
	`).Error
	if err != nil {
		log.Fatal("Failed to create booking slot index: ", err)
	}

	seedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}

func seedRoles() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "provider", Description: "Research consultant who publishes services"},
		{Name: "student", Description: "Student who books consultations"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if DB.Where("name = ?", role.Name).First(&existingRole).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "create_service", Description: "Create services", Resource: "services", Action: "create"},
		{Name: "read_services", Description: "View services", Resource: "services", Action: "read"},
		{Name: "update_service", Description: "Update services", Resource: "services", Action: "update"},
		{Name: "delete_service", Description: "Delete services", Resource: "services", Action: "delete"},

		{Name: "create_booking", Description: "Create bookings", Resource: "bookings", Action: "create"},
		{Name: "read_bookings", Description: "View bookings", Resource: "bookings", Action: "read"},
		{Name: "update_booking", Description: "Update bookings", Resource: "bookings", Action: "update"},
		{Name: "delete_booking", Description: "Cancel bookings", Resource: "bookings", Action: "delete"},

		{Name: "create_availability", Description: "Create availability", Resource: "availability", Action: "create"},
		{Name: "update_availability", Description: "Update availability", Resource: "availability", Action: "update"},
		{Name: "delete_availability", Description: "Delete availability", Resource: "availability", Action: "delete"},

		{Name: "read_roles", Description: "View roles", Resource: "roles", Action: "read"},
		{Name: "read_permissions", Description: "View permissions", Resource: "permissions", Action: "read"},
	}

	for _, permission := range permissions {
		var existingPermission models.Permission
		if DB.Where("name = ?", permission.Name).First(&existingPermission).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	assignPermissions("provider", []string{
		"create_service", "read_services", "update_service", "delete_service",
		"read_bookings", "update_booking",
		"create_availability", "update_availability", "delete_availability",
	})
	assignPermissions("student", []string{
		"read_services", "create_booking", "read_bookings", "delete_booking",
	})

	var adminRole models.Role
	if DB.Where("name = ?", "admin").First(&adminRole).RowsAffected > 0 {
		var allPermissions []models.Permission
		DB.Find(&allPermissions)
		DB.Model(&adminRole).Association("Permissions").Replace(allPermissions)
	}
}

func assignPermissions(roleName string, permissionNames []string) {
	var role models.Role
	if DB.Where("name = ?", roleName).First(&role).RowsAffected == 0 {
		return
	}
	var perms []models.Permission
	DB.Where("name IN ?", permissionNames).Find(&perms)
	DB.Model(&role).Association("Permissions").Replace(perms)
}
