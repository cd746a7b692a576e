package registry_gateway

import (
	"context"
	"errors"
	"time"

	"toolbox/domain"
	"toolbox/driver/registry_client"

	appErrors "toolbox/utils/errors"
)

// GemFetcher is satisfied by *registry_client.Client.
type GemFetcher interface {
	FetchGem(ctx context.Context, name string) (*registry_client.GemInfo, error)
}

// RegistryGateway implements release_port.RegistryPort for RubyGems.org.
type RegistryGateway struct {
	client GemFetcher
}

func NewRegistryGateway(client GemFetcher) *RegistryGateway {
	return &RegistryGateway{client: client}
}

// LatestReleaseDate returns the calendar date on which the current version was published.
func (g *RegistryGateway) LatestReleaseDate(ctx context.Context, packageID string) (time.Time, bool, error) {
	info, err := g.client.FetchGem(ctx, packageID)
	if errors.Is(err, registry_client.ErrGemNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, appErrors.ClassifyExternalServiceError("gateway", "RegistryGateway", "LatestReleaseDate", err, map[string]interface{}{
			"package_id": packageID,
		})
	}
	if info.VersionCreatedAt.IsZero() {
		return time.Time{}, false, nil
	}
	return domain.DateOf(info.VersionCreatedAt), true, nil
}
