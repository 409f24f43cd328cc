// Package model declares the records exchanged with API clients.
//
// Records carry their constraints in `validate` tags; request records also
// name the request part each field is read from.
package model

import "github.com/deppfellow/person-api/internal/validation"

// HairColor is one of a fixed set of colours.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
)

// HairColors lists every accepted HairColor.
var HairColors = []HairColor{HairColorWhite, HairColorBrown, HairColorBlack, HairColorBlonde, HairColorRed}

// Person is the full person record as submitted by clients.
type Person struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=50" example:"Facundo"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=50" example:"García Martoni"`
	Age       int        `json:"age" validate:"required,gt=0,lte=115" example:"25"`
	HairColor *HairColor `json:"hair_color" validate:"omitempty,oneof=white brown black blonde red" example:"black"`
	IsMarried *bool      `json:"is_married" example:"false"`
	Email     string     `json:"email" validate:"required,email" example:"facundo@example.com"`
	Password  string     `json:"password" validate:"required,min=8" example:"s3cretpassword"`
}

func (p *Person) Validate() error {
	return validation.Struct(p)
}

// Output returns the person without its password.
func (p *Person) Output() PersonOutput {
	return PersonOutput{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
		HairColor: p.HairColor,
		IsMarried: p.IsMarried,
		Email:     p.Email,
	}
}

// PersonOutput is Person as returned to clients. It has no password field,
// so secrets cannot leak into a response.
type PersonOutput struct {
	FirstName string     `json:"first_name" example:"Facundo"`
	LastName  string     `json:"last_name" example:"García Martoni"`
	Age       int        `json:"age" example:"25"`
	HairColor *HairColor `json:"hair_color" example:"black"`
	IsMarried *bool      `json:"is_married" example:"false"`
	Email     string     `json:"email" example:"facundo@example.com"`
}

// Location is where a person lives.
type Location struct {
	City    string `json:"city" validate:"required,min=1,max=50" example:"Bogotá"`
	State   string `json:"state" validate:"required,min=1,max=50" example:"Cundinamarca"`
	Country string `json:"country" validate:"required,min=1,max=50" example:"Colombia"`
}

func (l *Location) Validate() error {
	return validation.Struct(l)
}

// LoginOutput is returned by a successful login. Only the username is echoed.
type LoginOutput struct {
	Username string `json:"username" validate:"max=20" example:"miguel2021"`
}

// ImageOutput describes an uploaded image.
type ImageOutput struct {
	Filename string  `json:"filename" example:"avatar.png"`
	Format   string  `json:"format" example:"image/png"`
	SizeKB   float64 `json:"size_kb" example:"12.35"`
}
