// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sentriefraud/ruleengine/vm"
)

// EngineBuildVersion is the engine's own semantic build version. It is not
// written into bytecode containers: their additive semver trailer carries
// bytecode.ContainerVersion (see SPEC_FULL.md §4.3).
var EngineBuildVersion = semver.MustParse("0.1.0")

// Config holds the resource ceilings and pool sizing a host may tune; the
// zero value falls back to the spec's suggested defaults (SPEC_FULL.md
// §4.5 "Engine configuration").
type Config struct {
	VMLimits   vm.Limits `toml:"vm_limits"`
	VMPoolSize int32     `toml:"vm_pool_size"`
}

// DefaultConfig returns the suggested defaults: spec-sized VM limits and a
// small VM pool.
func DefaultConfig() Config {
	return Config{
		VMLimits:   vm.DefaultLimits(),
		VMPoolSize: 8,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	c.VMLimits = c.VMLimits.WithDefaults()
	if c.VMPoolSize <= 0 {
		c.VMPoolSize = d.VMPoolSize
	}
	return c
}

// LoadConfig reads a TOML document at path, the same way the teacher's pack
// loader reads `sentrie.toml`; a missing file yields DefaultConfig().
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "engine: reading config %q", path)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "engine: parsing config %q", path)
	}
	return cfg.withDefaults(), nil
}
