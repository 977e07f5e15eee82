package di

import (
	"github.com/ca-srg/weekbound/interface/cli"
	"github.com/ca-srg/weekbound/interface/presenter"
	usecase "github.com/ca-srg/weekbound/usecase/interface"
)

// newCLIController creates a new CLI controller
func newCLIController(
	windowService usecase.WindowService,
	consolePresenter presenter.ConsolePresenter,
	jsonPresenter presenter.JSONPresenter,
) *cli.CLIController {
	return cli.NewCLIController(
		windowService,
		consolePresenter,
		jsonPresenter,
	)
}
