// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound  = errors.New("user: not found")
	ErrInvalidID = errors.New("user: invalid id")
)

// Perfil is one document of the "users" collection (docId = auth uid).
type Perfil struct {
	ID        string `json:"id" firestore:"id"`
	Nombre    string `json:"nombre" firestore:"nombre"`
	Correo    string `json:"correo" firestore:"correo"`
	Telefono  string `json:"telefono" firestore:"telefono"`
	Direccion string `json:"direccion" firestore:"direccion"`
	FotoURL   string `json:"fotoUrl" firestore:"fotoUrl"`

	CreadoEn      time.Time `json:"creadoEn" firestore:"creadoEn"`
	ActualizadoEn time.Time `json:"actualizadoEn" firestore:"actualizadoEn"`
}

// Patch represents partial profile updates. A nil field means "no change".
type Patch struct {
	Nombre    *string
	Telefono  *string
	Direccion *string
	FotoURL   *string
}

// New creates a profile for an authenticated uid.
func New(uid, nombre, correo string, now time.Time) (Perfil, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return Perfil{}, ErrInvalidID
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Perfil{
		ID:            id,
		Nombre:        strings.TrimSpace(nombre),
		Correo:        strings.TrimSpace(correo),
		CreadoEn:      now.UTC(),
		ActualizadoEn: now.UTC(),
	}, nil
}

// Apply merges a patch into the profile.
func (p *Perfil) Apply(patch Patch, now time.Time) {
	if p == nil {
		return
	}
	if patch.Nombre != nil {
		p.Nombre = strings.TrimSpace(*patch.Nombre)
	}
	if patch.Telefono != nil {
		p.Telefono = strings.TrimSpace(*patch.Telefono)
	}
	if patch.Direccion != nil {
		p.Direccion = strings.TrimSpace(*patch.Direccion)
	}
	if patch.FotoURL != nil {
		p.FotoURL = strings.TrimSpace(*patch.FotoURL)
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	p.ActualizadoEn = now.UTC()
}
