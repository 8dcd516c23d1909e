package pricing

// AddOn is an optional paid enhancement to a service.
type AddOn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
}

// AddOnCatalog holds a service's add-ons, keyed by name.
type AddOnCatalog []AddOn

const (
	AddOnFormatting = "Formatting & Language Polishing"
	AddOnCitations  = "Citation & Reference Check"
)

// AllowedNames returns the add-on names a category may offer. Consultation
// categories offer none. The express-review wording differs per category
// because turnaround depends on the scope of the review.
func AllowedNames(category ServiceCategory) []string {
	switch category {
	case ChapterReview:
		return []string{AddOnFormatting, AddOnCitations, "Express Review (24–72 hours)"}
	case FullThesisReview:
		return []string{AddOnFormatting, AddOnCitations, "Express Review (72 hours)"}
	case FullThesisCycleSupport:
		return []string{AddOnFormatting, AddOnCitations, "Express Review"}
	default:
		return nil
	}
}

// NameAllowed reports whether name is a valid add-on for the category.
func NameAllowed(category ServiceCategory, name string) bool {
	for _, allowed := range AllowedNames(category) {
		if allowed == name {
			return true
		}
	}
	return false
}

// AddAddOn upserts an add-on by name. The name must be in the category's
// allowed set and the amount non-negative.
func AddAddOn(catalog AddOnCatalog, category ServiceCategory, name, description string, amount int64, currency string) (AddOnCatalog, error) {
	if !NameAllowed(category, name) {
		return catalog, ErrNameNotAllowedForCategory
	}
	if amount < 0 {
		return catalog, ErrInvalidAmount
	}
	for i, addOn := range catalog {
		if addOn.Name == name {
			catalog[i].Description = description
			catalog[i].Amount = amount
			catalog[i].Currency = currency
			catalog[i].Active = true
			return catalog, nil
		}
	}
	return append(catalog, AddOn{Name: name, Description: description, Amount: amount, Currency: currency, Active: true}), nil
}

// RemoveAddOn removes an add-on by name. Removing an absent name is a no-op.
func RemoveAddOn(catalog AddOnCatalog, name string) AddOnCatalog {
	for i, addOn := range catalog {
		if addOn.Name == name {
			return append(catalog[:i], catalog[i+1:]...)
		}
	}
	return catalog
}

// AddOnFor returns the add-on with the given name, if present.
func AddOnFor(catalog AddOnCatalog, name string) (AddOn, bool) {
	for _, addOn := range catalog {
		if addOn.Name == name {
			return addOn, true
		}
	}
	return AddOn{}, false
}
