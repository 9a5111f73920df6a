package handler

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lawfirm-cms/internal/infrastructure/sheets"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 200)),
	)
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

var columnName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// WriteRequest is the body of the admin create and update endpoints.
// Keys are column headers of the target sheet.
type WriteRequest struct {
	Data map[string]any `json:"data"`
}

func (r WriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Data,
			validation.Required,
			validation.Length(1, 50),
			validation.By(validColumns),
		),
	)
}

func validColumns(value interface{}) error {
	data, _ := value.(map[string]any)
	for k := range data {
		if !columnName.MatchString(k) {
			return validation.NewError("validation_invalid_column", "invalid column name "+k)
		}
	}
	return nil
}

// sheetRule checks a :sheet path parameter.
var sheetRule = validation.By(func(value interface{}) error {
	name, _ := value.(string)
	if !sheets.IsKnownTable(name) {
		return validation.NewError("validation_unknown_sheet", "unknown sheet")
	}
	return nil
})
