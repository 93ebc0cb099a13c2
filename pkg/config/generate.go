package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	accerrors "github.com/acc-tools/accinst/pkg/errors"
)

// GenerateManifestContent renders the default manifest as TOML, suitable as
// a starting point for a distribution's install.toml.
func GenerateManifestContent() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", accerrors.Wrap(err, accerrors.ErrInternal, "failed to render default manifest")
	}

	var b strings.Builder
	b.WriteString("# accinst distribution manifest.\n")
	b.WriteString("# Place this file as install.toml at the distribution root.\n\n")
	b.Write(data)
	return b.String(), nil
}
