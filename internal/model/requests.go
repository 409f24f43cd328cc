package model

import (
	"mime/multipart"

	"github.com/deppfellow/person-api/internal/validation"
)

// HomeRequest has no inputs.
type HomeRequest struct{}

func (r *HomeRequest) Validate() error {
	return nil
}

// PersonDetailQuery reads a person's name and age from the query string.
type PersonDetailQuery struct {
	Name string `query:"name" json:"-" validate:"omitempty,min=1,max=50" description:"The person name, 1 to 50 characters" example:"Rocío"`
	Age  string `query:"age" json:"-" validate:"required" description:"The person age" example:"25"`
}

func (r *PersonDetailQuery) Validate() error {
	return validation.Struct(r)
}

// PersonIDPath reads a positive person id from the path.
type PersonIDPath struct {
	PersonID int `param:"person_id" json:"-" validate:"gt=0" description:"The person id" example:"3"`
}

func (r *PersonIDPath) Validate() error {
	return validation.Struct(r)
}

// UpdatePersonRequest reads a person id from the path and a person plus
// location from the JSON body: {"person": {...}, "location": {...}}.
type UpdatePersonRequest struct {
	PersonID int      `param:"person_id" json:"-" validate:"gt=0" description:"The person id" example:"3"`
	Person   Person   `json:"person"`
	Location Location `json:"location"`
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// LoginRequest reads credentials from a form body.
type LoginRequest struct {
	Username string `form:"username" json:"-" validate:"required,max=20" example:"miguel2021"`
	Password string `form:"password" json:"-" validate:"required" example:"s3cretpassword"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// ContactRequest reads a contact message from a form body, plus the
// optional User-Agent header and ads cookie.
type ContactRequest struct {
	FirstName string `form:"first_name" json:"-" validate:"required,min=1,max=20" example:"Ana"`
	LastName  string `form:"last_name" json:"-" validate:"required,min=1,max=20" example:"Díaz"`
	Email     string `form:"email" json:"-" validate:"required,email" example:"ana@example.com"`
	Message   string `form:"message" json:"-" validate:"required,min=20" example:"I would like to know more about the course."`
	UserAgent string `header:"User-Agent" json:"-"`
	Ads       string `cookie:"ads" json:"-"`
}

func (r *ContactRequest) Validate() error {
	return validation.Struct(r)
}

// ImageUploadRequest reads a single multipart file named "image".
type ImageUploadRequest struct {
	Image *multipart.FileHeader `file:"image" json:"-" validate:"required" description:"The image to describe"`
}

func (r *ImageUploadRequest) Validate() error {
	return validation.Struct(r)
}
