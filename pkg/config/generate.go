package config

import (
	"bytes"

	"github.com/arthur-debert/relayout/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// MarshalTOML renders the configuration as a TOML document that Load can
// read back as a project config
func (c *Config) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
