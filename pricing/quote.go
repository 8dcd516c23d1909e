package pricing

// Quote is the priced breakdown of a booking selection. All amounts are in
// whole currency units; Total is always BasePrice + AddOnPrice.
type Quote struct {
	BasePrice  int64  `json:"base_price"`
	AddOnPrice int64  `json:"add_on_price"`
	Total      int64  `json:"total"`
	Currency   string `json:"currency"`
}

// ComputePrice reduces a client's selection to a final charge. The base price
// is the tier for the chosen academic level. The selection is a set: repeated
// add-on names count once. Selected names that are missing or inactive
// contribute nothing, so a stale client selection cannot fail the computation.
func ComputePrice(table PriceTable, catalog AddOnCatalog, level AcademicLevel, selectedAddOns []string) (Quote, error) {
	entry, err := EntryFor(table, level)
	if err != nil {
		return Quote{}, err
	}

	var addOnPrice int64
	seen := make(map[string]struct{}, len(selectedAddOns))
	for _, name := range selectedAddOns {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		addOn, ok := AddOnFor(catalog, name)
		if !ok || !addOn.Active {
			continue
		}
		addOnPrice += addOn.Amount
	}

	return Quote{
		BasePrice:  entry.Amount,
		AddOnPrice: addOnPrice,
		Total:      entry.Amount + addOnPrice,
		Currency:   entry.Currency,
	}, nil
}
