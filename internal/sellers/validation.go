package sellers

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/go-playground/validator/v10"
)

// MaxBackgroundWords bounds the background field.
const MaxBackgroundWords = 200

var (
	alphaSpacePattern  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	sellerEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@(gmail\.com|yahoo\.com)$`)
	sellerPhonePattern = regexp.MustCompile(`^09\d{9}$`)
)

// ApplicationInput is the seller application form.
type ApplicationInput struct {
	FirstName     string `json:"first_name" form:"firstName" validate:"required,alpha_space"`
	LastName      string `json:"last_name" form:"lastName" validate:"required,alpha_space"`
	Username      string `json:"username" form:"username" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required,seller_email"`
	Phone         string `json:"phone" form:"phone" validate:"required,seller_phone"`
	Category      string `json:"category" form:"category" validate:"required,seller_category"`
	Background    string `json:"background" form:"background" validate:"required,maxwords=200"`
	AgreesToTerms bool   `json:"agrees_to_terms" form:"agreesToTerms" validate:"required"`
}

// NewValidator returns a validator with the seller form rules registered.
// Field names in errors come from the form tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	must(v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
		return alphaSpacePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("seller_email", func(fl validator.FieldLevel) bool {
		return sellerEmailPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("seller_phone", func(fl validator.FieldLevel) bool {
		return sellerPhonePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("seller_category", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.SellerCategories, fl.Field().String())
	}))
	must(v.RegisterValidation("maxwords", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return CountWords(fl.Field().String()) <= limit
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

var fieldMessages = map[string]map[string]string{
	"firstName": {
		"required":    "First name is required.",
		"alpha_space": "First name must contain only letters.",
	},
	"lastName": {
		"required":    "Last name is required.",
		"alpha_space": "Last name must contain only letters.",
	},
	"username": {
		"required": "Username is required.",
	},
	"email": {
		"required":     "Email is required.",
		"seller_email": "Please input registered email.",
	},
	"phone": {
		"required":     "Phone number is required.",
		"seller_phone": "Phone number must be exactly 11 digits and start with 09",
	},
	"category": {
		"required":        "Please select a main product category.",
		"seller_category": "Please select a main product category.",
	},
	"background": {
		"required": "Background is required.",
		"maxwords": "Background must not exceed 200 words.",
	},
	"agreesToTerms": {
		"required": "Please agree to the terms and conditions.",
	},
}

// Validate checks input against the seller form rules.
func Validate(v *validator.Validate, input ApplicationInput) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = "Invalid value."
		}
		fields[fe.Field()] = msg
	}
	return &ValidationError{Fields: fields}
}
