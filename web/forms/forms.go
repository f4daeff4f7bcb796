// Package forms declares the entity form payloads and their
// validation rules. Rule failures map to per-field messages the
// templates render next to the offending input.
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CategoryForm is the create/update payload for a category.
type CategoryForm struct {
	CatName string `form:"cat_name" validate:"required,min=3,alpha"`
	Summary string `form:"summary" validate:"required,min=10,max=300"`
	StoreID int64  `form:"store_id" validate:"required"`
}

// LocationForm is the create/update payload for a location.
type LocationForm struct {
	State       string   `form:"state" validate:"required,len=2"`
	Address     string   `form:"address" validate:"required,min=6,max=50"`
	PhoneNumber string   `form:"phone_number" validate:"required,min=10,max=16"`
	ZipCode     string   `form:"zip_code" validate:"required,max=10"`
	StoreID     int64    `form:"store_id" validate:"required"`
	Open        []string `form:"open" validate:"dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
}

// MaterialForm is the create/update payload for a material.
type MaterialForm struct {
	MatName    string  `form:"mat_name" validate:"required,min=3"`
	Stock      int     `form:"stock" validate:"min=0"`
	Price      float64 `form:"price" validate:"required,gt=0"`
	CategoryID int64   `form:"category_id" validate:"required"`
}

// FieldError is one user-facing validation message.
type FieldError struct {
	Field   string
	Message string
}

var validate = validator.New()

// Validate runs the struct's rules and returns user-facing messages,
// or nil when the payload is valid.
func Validate(form interface{}) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "Invalid form submission."}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldName(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required field.", label)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters. Please abbreviate state.", label, fe.Param())
	case "alpha":
		return fmt.Sprintf("%s must only contain alphabetic characters.", label)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be a weekday name.", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

// fieldName maps a struct field to its form input name.
func fieldName(field string) string {
	switch field {
	case "CatName":
		return "cat_name"
	case "Summary":
		return "summary"
	case "StoreID":
		return "store_id"
	case "State":
		return "state"
	case "Address":
		return "address"
	case "PhoneNumber":
		return "phone_number"
	case "ZipCode":
		return "zip_code"
	case "Open":
		return "open"
	case "MatName":
		return "mat_name"
	case "Stock":
		return "stock"
	case "Price":
		return "price"
	case "CategoryID":
		return "category_id"
	default:
		return field
	}
}

// fieldLabel maps a struct field to the label used in messages.
func fieldLabel(field string) string {
	switch field {
	case "CatName", "MatName":
		return "Name"
	case "StoreID":
		return "Store"
	case "CategoryID":
		return "Category"
	case "PhoneNumber":
		return "Phone number"
	case "ZipCode":
		return "Zip code"
	case "Open":
		return "Open days"
	default:
		return field
	}
}
