package components

import (
	"merchstore/internal/domain/billing"
	"merchstore/internal/pkg/clock"
	"merchstore/internal/usecase/commands"
	"merchstore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		// Real gateway integration lives outside this service; the in-process
		// fake satisfies the same contract.
		billing.NewFakeGateway,
		func(g *billing.FakeGateway) billing.PaymentGateway { return g },
		commands.NewProductCommands,
		commands.NewInventoryCommands,
		commands.NewCheckoutCommands,
		queries.NewProductQueries,
	),
)
