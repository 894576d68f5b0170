package entity

import "time"

// Business representa un negocio de un usuario. Es el límite de alcance de las cuentas.
// UserID es el identificador opaco del proveedor de identidad; no se guarda ningún usuario localmente.
type Business struct {
	ID        int64
	Name      string
	Address   string
	UserID    string
	CreatedAt time.Time
}
