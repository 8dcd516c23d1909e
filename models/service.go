package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scholarlink/scholarlink-api/pricing"
)

// DefaultCurrency is the single deployment-wide currency code. Pricing is not
// negotiated per transaction.
const DefaultCurrency = "XAF"

// Service is a provider's published consultation offering: a category, a
// duration, tiered prices per academic level and optional add-ons.
type Service struct {
	gorm.Model
	ProviderID      uint                    `json:"provider_id"`
	Provider        User                    `json:"provider" gorm:"foreignKey:ProviderID"`
	Category        pricing.ServiceCategory `json:"category"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	DurationMinutes int                     `json:"duration_minutes"`
	Currency        string                  `json:"currency"`
	IsActive        bool                    `json:"is_active"`
	Prices          []ServicePrice          `json:"prices" gorm:"foreignKey:ServiceID"`
	AddOns          []ServiceAddOn          `json:"add_ons" gorm:"foreignKey:ServiceID"`
}

// ServicePrice is one academic-level tier. The composite unique index keeps at
// most one tier per level per service.
type ServicePrice struct {
	gorm.Model
	ServiceID     uint                  `json:"service_id" gorm:"uniqueIndex:idx_service_level"`
	AcademicLevel pricing.AcademicLevel `json:"academic_level" gorm:"uniqueIndex:idx_service_level"`
	Amount        int64                 `json:"amount"`
	Currency      string                `json:"currency"`
}

// ServiceAddOn is an optional paid enhancement attached to a service.
type ServiceAddOn struct {
	gorm.Model
	ServiceID   uint   `json:"service_id" gorm:"uniqueIndex:idx_service_addon"`
	Name        string `json:"name" gorm:"uniqueIndex:idx_service_addon"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active" gorm:"default:true"`
}

// UpsertPrice writes a tier in one statement. Concurrent writers for the same
// level resolve through idx_service_level instead of surfacing a unique
// violation; a soft-deleted tier is resurrected.
func UpsertPrice(db *gorm.DB, price *ServicePrice) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_id"}, {Name: "academic_level"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "currency", "updated_at", "deleted_at"}),
	}).Create(price).Error
}

// UpsertAddOn writes an add-on in one statement, keyed by idx_service_addon.
func UpsertAddOn(db *gorm.DB, addOn *ServiceAddOn) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "amount", "currency", "active", "updated_at", "deleted_at"}),
	}).Create(addOn).Error
}

// PriceTable projects the persisted tiers into the pricing engine's form.
func (s *Service) PriceTable() pricing.PriceTable {
	table := make(pricing.PriceTable, 0, len(s.Prices))
	for _, price := range s.Prices {
		table = append(table, pricing.PriceEntry{
			Level:    price.AcademicLevel,
			Amount:   price.Amount,
			Currency: price.Currency,
		})
	}
	return table
}

// AddOnCatalog projects the persisted add-ons into the pricing engine's form.
func (s *Service) AddOnCatalog() pricing.AddOnCatalog {
	catalog := make(pricing.AddOnCatalog, 0, len(s.AddOns))
	for _, addOn := range s.AddOns {
		catalog = append(catalog, pricing.AddOn{
			Name:        addOn.Name,
			Description: addOn.Description,
			Amount:      addOn.Amount,
			Currency:    addOn.Currency,
			Active:      addOn.Active,
		})
	}
	return catalog
}

// SetDurationToken validates the duration choice against the service's
// category and stores the canonical minutes.
func (s *Service) SetDurationToken(token string) error {
	minutes, err := pricing.ToMinutes(s.Category, token)
	if err != nil {
		return err
	}
	s.DurationMinutes = minutes
	return nil
}

// DurationToken returns the current duration as a category choice token.
func (s *Service) DurationToken() string {
	return pricing.FromMinutes(s.Category, s.DurationMinutes)
}

// ApplyFreeConsultationDefaults zeroes every tier, drops all add-ons and forces
// the duration to one hour. Called when the category switches to free
// consultation. One-way: switching back does not restore prior pricing.
func (s *Service) ApplyFreeConsultationDefaults() {
	currency := s.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	prices := make([]ServicePrice, 0, len(pricing.AllLevels))
	for _, level := range pricing.AllLevels {
		prices = append(prices, ServicePrice{
			ServiceID:     s.ID,
			AcademicLevel: level,
			Amount:        0,
			Currency:      currency,
		})
	}
	s.Prices = prices
	s.AddOns = nil
	s.DurationMinutes = pricing.DefaultMinutes(pricing.FreeConsultation)
}

// Publish activates the service. A service with no tiers cannot be booked, so
// publishing it is refused.
func (s *Service) Publish() error {
	if len(s.Prices) == 0 {
		return ErrEmptyPriceTable
	}
	s.IsActive = true
	return nil
}

// Deactivate takes the service off the catalog without deleting it. Existing
// bookings keep referencing it.
func (s *Service) Deactivate() {
	s.IsActive = false
}
