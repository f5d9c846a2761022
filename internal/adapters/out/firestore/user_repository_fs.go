// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "zapateria/internal/domain/user"
)

// UserRepositoryFS implements user.RepositoryPort (collection: users,
// docId = auth uid).
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

func (r *UserRepositoryFS) GetByID(ctx context.Context, uid string) (userdom.Perfil, error) {
	if r == nil || r.Client == nil {
		return userdom.Perfil{}, errors.New("user_repository_fs: firestore client is nil")
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return userdom.Perfil{}, userdom.ErrInvalidID
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return userdom.Perfil{}, userdom.ErrNotFound
		}
		return userdom.Perfil{}, err
	}

	var doc perfilDoc
	if err := snap.DataTo(&doc); err != nil {
		return userdom.Perfil{}, err
	}

	p := doc.toDomain()
	p.ID = uid
	return p, nil
}

func (r *UserRepositoryFS) Upsert(ctx context.Context, p userdom.Perfil) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(p.ID)
	if uid == "" {
		return userdom.ErrInvalidID
	}

	_, err := r.col().Doc(uid).Set(ctx, perfilDocFromDomain(p))
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type perfilDoc struct {
	ID        string `firestore:"id"`
	Nombre    string `firestore:"nombre"`
	Correo    string `firestore:"correo"`
	Telefono  string `firestore:"telefono"`
	Direccion string `firestore:"direccion"`
	FotoURL   string `firestore:"fotoUrl"`

	CreadoEn      time.Time `firestore:"creadoEn"`
	ActualizadoEn time.Time `firestore:"actualizadoEn"`
}

func perfilDocFromDomain(p userdom.Perfil) perfilDoc {
	return perfilDoc(p)
}

func (d perfilDoc) toDomain() userdom.Perfil {
	return userdom.Perfil(d)
}
