package cmd

import (
	"vanrebal/internal/config"
	"vanrebal/internal/repository"
	"vanrebal/internal/service"
)

// Dependencies holds the wired services the commands run against.
type Dependencies struct {
	RebalanceService    service.RebalanceService
	DistributionService service.DistributionService
}

// InitializeDependencies wires repositories into services. The alpaca
// repository stays nil unless credentials are configured, which tells the
// rebalance service to skip the equity lookup.
func InitializeDependencies(cfg config.Config) Dependencies {
	vanguardRepository := repository.NewVanguardRepository()
	quoteRepository := repository.NewQuoteRepository()
	distributionRepository := repository.NewDistributionRepository()

	var alpacaRepository repository.AlpacaRepository
	if key := config.GetAlpacaKey(cfg); key != "" {
		alpacaRepository = repository.NewAlpacaRepository(key, config.GetAlpacaSecret(cfg), cfg.Alpaca.Endpoint)
	}

	rebalanceService := service.NewRebalanceService(
		vanguardRepository,
		quoteRepository,
		alpacaRepository,
	)
	distributionService := service.NewDistributionService(
		distributionRepository,
		quoteRepository,
	)

	return Dependencies{
		RebalanceService:    rebalanceService,
		DistributionService: distributionService,
	}
}
