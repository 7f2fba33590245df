package constvars

const (
	RegexClinicRef                    = `^[A-Z]{2,5}-\d{3,6}$`
	RegexContainAtLeastOneSpecialChar = `[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};':"\\|,.<>\/?]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
)
