package reports

// PricePerSqm is defined only for a known sale price over a positive area.
// nil means not applicable.
func PricePerSqm(salePrice *float64, areaSqm float64) *float64 {
	if salePrice == nil || areaSqm <= 0 {
		return nil
	}
	value := *salePrice / areaSqm
	return &value
}
