package numcompare

// countryCallingCodes marks the one- and two-digit values assigned as ITU
// country calling codes (or the prefix of one).
var countryCallingCodes = [100]bool{
	true, true, false, false, false, false, false, true, false, false,
	false, false, false, false, false, false, false, false, false, false,
	true, false, false, false, false, false, false, true, true, false,
	true, true, true, true, true, false, true, false, false, true,
	true, false, false, true, true, true, true, true, true, true,
	false, true, true, true, true, true, true, true, true, false,
	true, true, true, true, true, true, true, false, false, false,
	false, false, false, false, false, false, false, false, false, false,
	false, true, true, true, true, false, true, false, false, true,
	true, true, true, true, true, true, false, false, true, false,
}

// IsCountryCallingCode reports whether ccc is a valid 1-2 digit code.
func IsCountryCallingCode(ccc int) bool {
	return ccc > 0 && ccc < len(countryCallingCodes) && countryCallingCodes[ccc]
}
