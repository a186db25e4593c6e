package services

import (
	"context"

	"github.com/lyrapkg/lyra/internal/client/client"
	"github.com/lyrapkg/lyra/internal/client/models"
	"github.com/lyrapkg/lyra/internal/logging"
)

// RegistryService exposes the read-only registry views. A false second
// return means the data could not be loaded; the reason is only logged.
type RegistryService interface {
	Packages(ctx context.Context) ([]models.Package, bool)
	User(ctx context.Context, id string) (models.OtherUserProfile, bool)
}

type registryService struct {
	client client.Client
	log    logging.Logger
}

func NewRegistryService(c client.Client, log logging.Logger) RegistryService {
	if log == nil {
		log = logging.NewNoop()
	}
	return &registryService{client: c, log: log}
}

func (r *registryService) Packages(ctx context.Context) ([]models.Package, bool) {
	pkgs, err := r.client.GetPackages(ctx)
	if err != nil {
		r.log.Debug(ctx, "packages fetch failed", "failure", fromClient(err), "err", err)
		return nil, false
	}
	return pkgs, true
}

func (r *registryService) User(ctx context.Context, id string) (models.OtherUserProfile, bool) {
	p, err := r.client.GetUser(ctx, id)
	if err != nil {
		r.log.Debug(ctx, "user fetch failed", "id", id, "failure", fromClient(err), "err", err)
		return models.OtherUserProfile{}, false
	}
	return p, true
}
