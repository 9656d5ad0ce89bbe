package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/brandscope/api/pkg/errors"
)

// Brand name length bounds after trimming surrounding whitespace.
const (
	BrandNameMinLen = 2
	BrandNameMaxLen = 100
)

// Industries is the set of industry categories a brand can belong to.
var Industries = map[string]struct{}{
	"food":       {},
	"restaurant": {},
	"cafe":       {},
	"cpg":        {},
}

// Brand is a tracked brand owned by exactly one identity. An identity owns
// at most one brand.
type Brand struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	BrandName       string    `json:"brand_name"`
	InstagramHandle *string   `json:"instagram_handle"`
	Industry        string    `json:"industry"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidateBrandName trims surrounding whitespace and checks the length bounds.
// Lengths are counted in characters, not bytes, so multibyte names are not
// penalized. It returns the trimmed name on success.
func ValidateBrandName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", apperrors.InvalidInput("brand name is required")
	}
	length := utf8.RuneCountInString(name)
	if length < BrandNameMinLen {
		return "", apperrors.InvalidInput("brand name must be at least 2 characters")
	}
	if length > BrandNameMaxLen {
		return "", apperrors.InvalidInput("brand name must be at most 100 characters")
	}
	return name, nil
}

// ValidateIndustry checks the industry against the known category set.
func ValidateIndustry(industry string) error {
	if _, ok := Industries[industry]; !ok {
		return apperrors.InvalidInput("industry must be one of: food, restaurant, cafe, cpg")
	}
	return nil
}
