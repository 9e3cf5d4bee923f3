package entity

import "time"

// User cuenta del back-office o de la tienda. Nunca se borra físicamente:
// la baja limpia IsActive.
type User struct {
	ID           string
	Username     string // único
	Email        string
	FirstName    string
	LastName     string
	Age          *int   // opcional
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsStaff      bool
	IsSuperuser  bool
	IsActive     bool
	DateJoined   time.Time
	UpdatedAt    time.Time
}

// CanAccessAdmin indica si la cuenta puede iniciar sesión en el back-office.
func (u *User) CanAccessAdmin() bool {
	return u.IsActive && (u.IsStaff || u.IsSuperuser)
}

// FullName nombre para mostrar; cae en el username si no hay nombre.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}
