// internal/infra/secrets/secretmanager.go
package secrets

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

var ErrNotConfigured = errors.New("secrets: provider not configured")

// Provider resolves secret values from Google Secret Manager.
// Used at boot to fetch the SendGrid API key when it is not present in env.
type Provider struct {
	sm *secretmanager.Client
}

func NewProvider(ctx context.Context) (*Provider, error) {
	c, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Provider{sm: c}, nil
}

// Access fetches a secret version payload.
// name accepts either a full resource name
// ("projects/p/secrets/s/versions/latest") or a bare secret id, in which
// case projectID is used and "latest" is assumed.
func (p *Provider) Access(ctx context.Context, projectID, name string) (string, error) {
	if p == nil || p.sm == nil {
		return "", ErrNotConfigured
	}

	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("secrets: secret name is empty")
	}
	if !strings.HasPrefix(n, "projects/") {
		prj := strings.TrimSpace(projectID)
		if prj == "" {
			return "", errors.New("secrets: projectID is empty")
		}
		n = "projects/" + prj + "/secrets/" + n + "/versions/latest"
	}

	resp, err := p.sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: n})
	if err != nil {
		return "", errors.New("secrets: AccessSecretVersion failed (" + n + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("secrets: empty payload (" + n + ")")
	}

	return strings.TrimSpace(string(resp.Payload.Data)), nil
}

func (p *Provider) Close() error {
	if p == nil || p.sm == nil {
		return nil
	}
	return p.sm.Close()
}
