package pricing

// PriceEntry is one academic-level tier of a service's pricing.
// Amount is in whole currency units (no fractional cents in XAF).
type PriceEntry struct {
	Level    AcademicLevel `json:"level"`
	Amount   int64         `json:"amount"`
	Currency string        `json:"currency"`
}

// PriceTable maps academic levels to amounts. At most one entry per level.
type PriceTable []PriceEntry

// SetPrice upserts the entry for level: an existing tier is replaced, otherwise
// a new one is appended.
func SetPrice(table PriceTable, level AcademicLevel, amount int64, currency string) (PriceTable, error) {
	if amount < 0 {
		return table, ErrInvalidAmount
	}
	for i, entry := range table {
		if entry.Level == level {
			table[i].Amount = amount
			table[i].Currency = currency
			return table, nil
		}
	}
	return append(table, PriceEntry{Level: level, Amount: amount, Currency: currency}), nil
}

// RemovePrice removes the entry for level. Removing an absent level is a no-op.
func RemovePrice(table PriceTable, level AcademicLevel) PriceTable {
	for i, entry := range table {
		if entry.Level == level {
			return append(table[:i], table[i+1:]...)
		}
	}
	return table
}

// PriceFor returns the tier amount for level.
func PriceFor(table PriceTable, level AcademicLevel) (int64, error) {
	for _, entry := range table {
		if entry.Level == level {
			return entry.Amount, nil
		}
	}
	return 0, ErrNoPricingForLevel
}

// EntryFor returns the full tier entry for level.
func EntryFor(table PriceTable, level AcademicLevel) (PriceEntry, error) {
	for _, entry := range table {
		if entry.Level == level {
			return entry, nil
		}
	}
	return PriceEntry{}, ErrNoPricingForLevel
}

// ZeroTable returns a table with every academic level priced at zero, used when
// a service switches to the free consultation category.
func ZeroTable(currency string) PriceTable {
	table := make(PriceTable, 0, len(AllLevels))
	for _, level := range AllLevels {
		table = append(table, PriceEntry{Level: level, Amount: 0, Currency: currency})
	}
	return table
}
