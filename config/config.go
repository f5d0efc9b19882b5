package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum float64
	Preemptive            bool
	ChartWidthInches      float64
	ChartHeightInches     float64
	// ChartColorSeed seeds the colour picker of rendered charts. It never
	// reaches the scheduler.
	ChartColorSeed int64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// exits the program if it is malformed.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		c, err := LoadSchedulerConfig("./", "./config")
		if err != nil {
			log.Fatalln(err)
		}
		config = c
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from the first of paths that has one.
// A missing file leaves the defaults in place; CPUSIM_* environment variables
// override both.
func LoadSchedulerConfig(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2.0)
	v.SetDefault("scheduler.preemptive", false)
	v.SetDefault("chart.width_inches", 10.0)
	v.SetDefault("chart.height_inches", 3.0)
	v.SetDefault("chart.color_seed", 1)

	v.SetEnvPrefix("CPUSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading scheduler config: %w", err)
		}
	}

	c := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetFloat64("scheduler.round_robin.time_quantum"),
		Preemptive:            v.GetBool("scheduler.preemptive"),
		ChartWidthInches:      v.GetFloat64("chart.width_inches"),
		ChartHeightInches:     v.GetFloat64("chart.height_inches"),
		ChartColorSeed:        v.GetInt64("chart.color_seed"),
	}
	if !(c.RoundRobinTimeQuantum > 0) || math.IsInf(c.RoundRobinTimeQuantum, 1) {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be greater than 0, got %v", c.RoundRobinTimeQuantum)
	}
	if c.ChartWidthInches <= 0 || c.ChartHeightInches <= 0 {
		return nil, fmt.Errorf("chart dimensions must be positive, got %vx%v", c.ChartWidthInches, c.ChartHeightInches)
	}
	return c, nil
}
