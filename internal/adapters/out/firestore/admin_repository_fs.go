// internal/adapters/out/firestore/admin_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AdminGateFS implements user.AdminGatePort: the back-office gate is a
// bare existence check against the "admins" collection, keyed by uid.
type AdminGateFS struct {
	Client *firestore.Client
}

func NewAdminGateFS(client *firestore.Client) *AdminGateFS {
	return &AdminGateFS{Client: client}
}

func (r *AdminGateFS) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if r == nil || r.Client == nil {
		return false, errors.New("admin_repository_fs: firestore client is nil")
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return false, nil
	}

	_, err := r.Client.Collection("admins").Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
