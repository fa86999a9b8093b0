package entity

import "time"

// User usuario de la consola. El email es la identidad visible:
// chats, notificaciones y marketplace lo usan como clave de participante.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
