package commands

import (
	"fmt"
	"io"

	"github.com/NielsdaWheelz/mcpsetup/internal/config"
	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
)

// ShowConfig implements `mcpsetup config`: the resolved configuration as
// YAML, preceded by a comment naming the project root it applies to.
func ShowConfig(cfg *config.Config, layout config.Layout, stdout io.Writer) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to render config", err)
	}
	out := fmt.Sprintf("# project root: %s\n%s", layout.Root, data)
	if _, err := io.WriteString(stdout, out); err != nil {
		return errors.Wrap(errors.EInternal, "failed to write config", err)
	}
	return nil
}
