package install

import (
	"bytes"
	"path/filepath"

	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/types"
)

// Substitute replaces the first occurrence of token in src with replacement
// and reports whether the token was present. The original tool silently
// no-ops on a missing token; the caller is expected to surface the false
// return as a warning instead.
func Substitute(src []byte, token, replacement string) ([]byte, bool) {
	idx := bytes.Index(src, []byte(token))
	if idx < 0 {
		return src, false
	}
	out := make([]byte, 0, len(src)-len(token)+len(replacement))
	out = append(out, src[:idx]...)
	out = append(out, replacement...)
	out = append(out, src[idx+len(token):]...)
	return out, true
}

// templateExecutable loads the payload executable source and substitutes the
// placeholder token with the resolved resource path. Fails with
// TEMPLATE_UNREADABLE only when the source cannot be read.
func templateExecutable(fs types.FS, cfg types.InstallConfig, resourcePath string) ([]byte, bool, error) {
	srcPath := filepath.Join(cfg.SourceRoot, cfg.Manifest.ExecutableSource)
	data, err := fs.ReadFile(srcPath)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrTemplate,
			"cannot read payload executable %q", srcPath)
	}
	body, found := Substitute(data, cfg.Manifest.PlaceholderToken, resourcePath)
	return body, found, nil
}
