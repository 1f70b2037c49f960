package version

import (
	"fmt"

	"github.com/newnancity/nanmanager/internal/cmd/base"
	"github.com/newnancity/nanmanager/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the nanctl version"
}

func (c *Command) Help() string {
	return `Usage: nanctl version

  Prints the nanctl version and the API version it targets.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("nanctl %s (API %s)", version.Version, version.APIVersion))
	return 0
}
