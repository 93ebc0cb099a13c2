// Package config loads the distribution manifest that tells accinst what it
// is installing: tool name, payload source file, resource subtree, the
// placeholder token and platform-reserved subtrees.
//
// Configuration is layered: compiled defaults, then install.toml or
// install.yaml at the distribution root, then ACCINST_* environment
// variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	accerrors "github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/types"
)

// Manifest file names probed at the distribution root, in order.
const (
	ManifestFileTOML = "install.toml"
	ManifestFileYAML = "install.yaml"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// ACCINST_TOOL_NAME.
const EnvPrefix = "ACCINST_"

//go:embed embedded/defaults.toml
var defaultManifest []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Default returns the compiled-in manifest defaults, which describe the
// stock acc distribution layout.
func Default() types.Manifest {
	// The embedded defaults are the single source of truth; a parse failure
	// here is a build defect, not a runtime condition.
	m, err := unmarshalManifest(loadDefaults())
	if err != nil {
		panic(err)
	}
	return m
}

// Load reads the distribution manifest for the given source root. A missing
// manifest file is not an error; the defaults already describe the stock
// distribution. A present but unreadable or unparseable file is.
func Load(sourceRoot string) (types.Manifest, error) {
	k := loadDefaults()

	for _, name := range []string{ManifestFileTOML, ManifestFileYAML} {
		path := filepath.Join(sourceRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(name, ".yaml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return types.Manifest{}, accerrors.Wrapf(err, accerrors.ErrManifestLoad,
				"failed to load manifest from %s", path)
		}
		break
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return types.Manifest{}, accerrors.Wrap(err, accerrors.ErrManifestLoad,
			"failed to load environment overrides")
	}

	m, err := unmarshalManifest(k)
	if err != nil {
		return types.Manifest{}, err
	}
	if err := validate(m); err != nil {
		return types.Manifest{}, err
	}
	return m, nil
}

func loadDefaults() *koanf.Koanf {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultManifest}, toml.Parser()); err != nil {
		panic("invalid embedded manifest defaults: " + err.Error())
	}
	return k
}

func unmarshalManifest(k *koanf.Koanf) (types.Manifest, error) {
	var m types.Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return types.Manifest{}, accerrors.Wrap(err, accerrors.ErrManifestLoad,
			"failed to decode manifest")
	}
	return m, nil
}

func validate(m types.Manifest) error {
	switch {
	case m.ToolName == "":
		return accerrors.New(accerrors.ErrManifestLoad, "manifest field tool_name is empty")
	case m.ExecutableSource == "":
		return accerrors.New(accerrors.ErrManifestLoad, "manifest field executable_source is empty")
	case m.ResourceDir == "":
		return accerrors.New(accerrors.ErrManifestLoad, "manifest field resource_dir is empty")
	case m.PlaceholderToken == "":
		return accerrors.New(accerrors.ErrManifestLoad, "manifest field placeholder_token is empty")
	}
	return nil
}
