package services

import (
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// claims may be nil, in which case in-flight claims are disabled.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, claims portsrepo.ClaimStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger engine is the only writer of balances; every other service goes through it.
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.LedgerRepo)

	idempotencyOpts := []IdempotencyServiceOption{}
	if claims != nil {
		idempotencyOpts = append(idempotencyOpts, WithClaimStore(claims, cfg.IdempotencyClaimTTL))
	}
	container.Idempotency = NewIdempotencyService(repos.ExternalTransactionRepo, repos.LedgerRepo, idempotencyOpts...)

	container.Account = NewAccountService(repos.AccountRepo, container.Ledger)
	container.Seamless = NewSeamlessWalletService(repos, container.Ledger, container.Idempotency, cfg.SeamlessSecretKey)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.IdempotencySvc    = (*idempotencyService)(nil)
	_ portssvc.SeamlessWalletSvc = (*seamlessWalletService)(nil)
)
