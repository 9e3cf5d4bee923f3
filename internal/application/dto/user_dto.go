package dto

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const minPasswordLength = 8

// UserForm formulario de alta/edición de usuarios (registro de tienda + flags de staff).
type UserForm struct {
	Username    string `form:"username" validate:"required,max=150,username"`
	Email       string `form:"email" validate:"omitempty,max=254,email"`
	FirstName   string `form:"first_name" validate:"max=150"`
	LastName    string `form:"last_name" validate:"max=150"`
	Age         string `form:"age" validate:"omitempty,number"`
	Password1   string `form:"password1"`
	Password2   string `form:"password2"`
	IsStaff     bool   `form:"is_staff"`
	IsSuperuser bool   `form:"is_superuser"`
}

// Normalize recorta espacios de los campos de texto (no de las contraseñas).
func (f *UserForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Age = strings.TrimSpace(f.Age)
}

// Validate valida el formulario. En alta la contraseña es obligatoria; en edición
// una contraseña vacía conserva la actual.
func (f *UserForm) Validate(requirePassword bool) error {
	f.Normalize()
	ve := validateStruct(f)

	if f.Age != "" {
		if n, err := strconv.Atoi(f.Age); err != nil || n < 1 || n > 150 {
			ve.Add("age", "edad fuera de rango")
		}
	}

	switch {
	case f.Password1 == "" && requirePassword:
		ve.Add("password1", "este campo es obligatorio")
	case f.Password1 != "" && utf8.RuneCountInString(f.Password1) < minPasswordLength:
		ve.Add("password1", "mínimo 8 caracteres")
	}
	if f.Password1 != f.Password2 {
		ve.Add("password2", "las contraseñas no coinciden")
	}
	return ve.OrNil()
}

// ParsedAge edad como puntero (nil si no se informó). Llamar después de Validate.
func (f *UserForm) ParsedAge() *int {
	if f.Age == "" {
		return nil
	}
	n, err := strconv.Atoi(f.Age)
	if err != nil {
		return nil
	}
	return &n
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string
	Username    string
	Email       string
	FirstName   string
	LastName    string
	FullName    string
	Age         *int
	IsStaff     bool
	IsSuperuser bool
	IsActive    bool
	DateJoined  time.Time
	UpdatedAt   time.Time
}

// Form devuelve el formulario de edición precargado con el usuario.
func (u *UserResponse) Form() UserForm {
	f := UserForm{
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
	}
	if u.Age != nil {
		f.Age = strconv.Itoa(*u.Age)
	}
	return f
}

// LoginForm formulario de inicio de sesión.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// Validate valida credenciales no vacías.
func (f *LoginForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	return validateStruct(f).OrNil()
}

// Session resultado de un login correcto.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
	User      UserResponse
}
