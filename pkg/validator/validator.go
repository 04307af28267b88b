package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/edgarceron/toptal-project/internal/domain"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(username, email, fullName, password, role string) ValidationErrors {
	errs := make(ValidationErrors)

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if strings.TrimSpace(fullName) == "" {
		errs.Add("full_name", "Full name is required")
	}

	if role != string(domain.RoleRealtor) && role != string(domain.RoleRegular) {
		errs.Add("user_type", "User type must be realtor or regular")
	}

	validatePassword(password, errs)

	return errs
}

func ValidateApartment(title, description string, location domain.GeoPoint, price float64, bedrooms int, dateAdded string, image []byte) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		errs.Add("description", "Description must not be empty")
	}

	validateLocation(location, errs)

	if price <= 0 {
		errs.Add("price", "Price must be a positive number")
	}
	if bedrooms <= 0 {
		errs.Add("bedrooms", "Bedrooms must be a positive integer")
	}
	if !validISODate(dateAdded) {
		errs.Add("dateadded", "Date added must be in a valid ISO 8601 format")
	}
	if len(image) == 0 {
		errs.Add("image", "Image is required")
	}

	return errs
}

func ValidateApartmentPatch(title, description *string, location *domain.GeoPoint, price *float64, bedrooms *int) ValidationErrors {
	errs := make(ValidationErrors)

	if title != nil && strings.TrimSpace(*title) == "" {
		errs.Add("title", "Title must not be empty")
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		errs.Add("description", "Description must not be empty")
	}
	if location != nil {
		validateLocation(*location, errs)
	}
	if price != nil && *price <= 0 {
		errs.Add("price", "Price must be a positive number")
	}
	if bedrooms != nil && *bedrooms <= 0 {
		errs.Add("bedrooms", "Bedrooms must be a positive integer")
	}

	return errs
}

func ValidateGeoSearch(radius float64, unit string, lat, lon float64, page int64) ValidationErrors {
	errs := make(ValidationErrors)

	if radius <= 0 {
		errs.Add("radius", "Radius must be a positive number")
	}
	if unit != "km" && unit != "mi" {
		errs.Add("radius_unit", "Radius unit must be km or mi")
	}
	if lat < -90 || lat > 90 {
		errs.Add("lat", "Latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		errs.Add("lon", "Longitude must be between -180 and 180")
	}
	if page < 1 {
		errs.Add("page", "Page must be a positive integer")
	}

	return errs
}

func validateLocation(location domain.GeoPoint, errs ValidationErrors) {
	if location.Type != "Point" {
		errs.Add("location", `Location type must be "Point"`)
		return
	}
	if len(location.Coordinates) != 2 {
		errs.Add("location", "Location coordinates must be a pair of two elements")
		return
	}
	lon, lat := location.Coordinates[0], location.Coordinates[1]
	if lon < -180 || lon > 180 {
		errs.Add("location", "Longitude must be between -180 and 180")
	}
	if lat < -90 || lat > 90 {
		errs.Add("location", "Latitude must be between -90 and 90")
	}
}

func validISODate(value string) bool {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	missing := []string{}
	if !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "one number")
	}

	if len(missing) > 0 {
		errs.Add("password", fmt.Sprintf("Password must contain at least %s", strings.Join(missing, ", ")))
	}
}
