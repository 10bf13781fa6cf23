package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hashicorp/errwrap"
)

// FileName is the default name of the configuration file.
var FileName = "newton.json"

// MaxDegree bounds the degree of the interpolating polynomials built by the
// command line tool.
const MaxDegree = 50

// MaxPrecision bounds the bits of precision of the big.Float path. The
// constant Pi of utils/bignum is exact to about 3300 bits only.
const MaxPrecision = 3000

var ErrInvalidConfig = errors.New("invalid configuration")

type PlotConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Output string  `json:"output,omitempty"`
}

type Config struct {
	Function  string     `json:"function,omitempty"`
	A         float64    `json:"a"`
	B         float64    `json:"b"`
	Degree    int        `json:"degree"`
	Samples   int        `json:"samples"`
	Precision uint       `json:"precision"`
	Seed      string     `json:"seed,omitempty"`
	Plot      PlotConfig `json:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		A:         -5,
		B:         5,
		Degree:    10,
		Samples:   400,
		Precision: 53,
		Plot: PlotConfig{
			Width:  10,
			Height: 6,
		},
	}
}

// Validate checks that the interval and sizes can be used to build an interpolant.
func (conf *Config) Validate() error {

	if math.IsNaN(conf.A) || math.IsNaN(conf.B) || math.IsInf(conf.A, 0) || math.IsInf(conf.B, 0) || conf.A >= conf.B {
		return fmt.Errorf("%w: interval [%v, %v] requires a < b", ErrInvalidConfig, conf.A, conf.B)
	}

	if conf.Degree < 1 || conf.Degree > MaxDegree {
		return fmt.Errorf("%w: degree %d not in [1, %d]", ErrInvalidConfig, conf.Degree, MaxDegree)
	}

	if conf.Samples < 2 {
		return fmt.Errorf("%w: %d samples, at least 2 are required", ErrInvalidConfig, conf.Samples)
	}

	if conf.Precision < 53 || conf.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d not in [53, %d] bits", ErrInvalidConfig, conf.Precision, MaxPrecision)
	}

	if conf.Plot.Width <= 0 || conf.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %vx%v", ErrInvalidConfig, conf.Plot.Width, conf.Plot.Height)
	}

	return nil
}

// ReadConfig decodes the configuration file at fpath. Fields absent from the
// file keep their default value.
func ReadConfig(fpath string) (*Config, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, errwrap.Wrapf(fmt.Sprintf("Failed to read configuration file '%s': {{err}}", fpath), err)
	}

	defer f.Close()

	conf := DefaultConfig()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	err = dec.Decode(conf)
	if err != nil {
		return nil, errwrap.Wrapf(fmt.Sprintf("Failed to decode configuration file '%s': {{err}}", f.Name()), err)
	}

	return conf, nil
}

// WriteConfig encodes conf to fpath, creating the parent directories.
func WriteConfig(fpath string, conf *Config) error {
	dir := filepath.Dir(fpath)
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return errwrap.Wrapf(fmt.Sprintf("Failed to mkdir '%s' for config: {{err}}", dir), err)
	}

	f, err := os.Create(fpath)
	if err != nil {
		return errwrap.Wrapf(fmt.Sprintf("Failed to create configuration file '%s': {{err}}", fpath), err)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(conf)
	if err != nil {
		return errwrap.Wrapf(fmt.Sprintf("Failed encode configuration '%+v': {{err}}", conf), err)
	}

	return nil
}
