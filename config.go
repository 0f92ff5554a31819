// ./config.go
package sweph

/*
Package sweph provides the configuration of an Ephemeris.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code. The file format and the reduction
algorithms follow the Swiss Ephemeris by Dieter Koch and Alois Treindl,
Astrodienst AG.
*/

import (
	"fmt"
	"os"
	"strings"

	"github.com/mshafiee/sweph/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config configures an Ephemeris. The zero value searches DefaultEphePath with the
// default models and no fallback.
type Config struct {
	// EphePath lists the directories holding the .se1 files, separated by ':' or ';'.
	EphePath string
	// Observer is the place used for topocentric positions; nil disables FlagTopoCtr.
	Observer *GeoPosition

	Nutation   models.NutationModel
	Precession models.PrecessionModel
	Obliquity  models.ObliquityModel
	Bias       models.FrameBiasModel

	DeltaT   DeltaTProvider
	Sidereal SiderealProvider
	// Fallback serves planets for dates without planet files.
	Fallback HeliocentricProvider

	// MaxSegments bounds the segment cache; zero selects the default.
	MaxSegments int64

	Logger *logrus.Logger
}

// Configuration keys.
const (
	keyEphePath     = "ephemeris.path"
	keyObsLongitude = "observer.longitude"
	keyObsLatitude  = "observer.latitude"
	keyObsHeight    = "observer.height"
	keyNutation     = "models.nutation"
	keyPrecession   = "models.precession"
	keyObliquity    = "models.obliquity"
	keyBias         = "models.bias"
	keyDeltaT       = "time.delta_t_seconds"
	keyMaxSegments  = "cache.max_segments"
	keyVSOP87Dir    = "fallback.vsop87_dir"
	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
)

// LoadConfig reads the file sweph.toml (or .yaml, .json) from dir. An empty dir
// falls back to the directory in SWEPH_CONFIG; when both are empty only defaults
// and environment variables are used. Every key can be overridden from the
// environment with the SWEPH_ prefix, e.g. SWEPH_EPHEMERIS_PATH.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("sweph")
	v.SetEnvPrefix("SWEPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyEphePath, DefaultEphePath)
	v.SetDefault(keyMaxSegments, defaultMaxSegments)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")

	if dir == "" {
		dir = os.Getenv("SWEPH_CONFIG")
	}
	if dir != "" {
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading sweph configuration in %s: %w", dir, err)
		}
	}
	return configFromViper(v)
}

func configFromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		EphePath:    v.GetString(keyEphePath),
		MaxSegments: v.GetInt64(keyMaxSegments),
	}

	if v.IsSet(keyObsLongitude) || v.IsSet(keyObsLatitude) {
		cfg.Observer = &GeoPosition{
			Longitude: v.GetFloat64(keyObsLongitude),
			Latitude:  v.GetFloat64(keyObsLatitude),
			Height:    v.GetFloat64(keyObsHeight),
		}
		if cfg.Observer.Latitude < -90 || cfg.Observer.Latitude > 90 {
			return Config{}, fmt.Errorf("observer latitude %g out of range", cfg.Observer.Latitude)
		}
	}

	nut, err := models.ParseNutation(v.GetString(keyNutation))
	if err != nil {
		return Config{}, err
	}
	prec, err := models.ParsePrecession(v.GetString(keyPrecession))
	if err != nil {
		return Config{}, err
	}
	obl, err := models.ParseObliquity(v.GetString(keyObliquity))
	if err != nil {
		return Config{}, err
	}
	bias, err := models.ParseBias(v.GetString(keyBias))
	if err != nil {
		return Config{}, err
	}
	cfg.Nutation, cfg.Precession, cfg.Obliquity, cfg.Bias = nut, prec, obl, bias

	if v.IsSet(keyDeltaT) {
		cfg.DeltaT = FixedDeltaT(v.GetFloat64(keyDeltaT))
	}
	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	if v.GetString(keyLogFormat) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	cfg.Logger = logger

	if dir := v.GetString(keyVSOP87Dir); dir != "" {
		cfg.Fallback = NewVSOP87Provider(dir, logger)
	}
	return cfg, nil
}
