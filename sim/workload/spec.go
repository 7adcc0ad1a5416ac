package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorSpec describes a random process workload.
// Loaded from YAML via LoadGeneratorSpec(path).
type GeneratorSpec struct {
	Seed     int64        `yaml:"seed"`
	Count    int          `yaml:"count"`
	IDPrefix string       `yaml:"id_prefix,omitempty"` // default "P"
	Arrival  ArrivalSpec  `yaml:"arrival"`
	Burst    DistSpec     `yaml:"burst"`
	Priority PrioritySpec `yaml:"priority"`
}

// ArrivalSpec configures the inter-arrival time process.
type ArrivalSpec struct {
	Process string   `yaml:"process"`
	Rate    float64  `yaml:"rate"` // processes per tick
	CV      *float64 `yaml:"cv,omitempty"`
}

// DistSpec parameterizes a burst time distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// PrioritySpec bounds the uniformly drawn priority values, inclusive.
type PrioritySpec struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

var (
	validArrivalProcesses = map[string]bool{
		"poisson": true, "gamma": true, "weibull": true, "constant": true,
	}
	validDistTypes = map[string]bool{
		"constant": true, "uniform": true, "gaussian": true, "exponential": true,
	}
)

// LoadGeneratorSpec reads and parses a YAML generator specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *GeneratorSpec) Validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", s.Count)
	}
	if !validArrivalProcesses[s.Arrival.Process] {
		return fmt.Errorf("unknown arrival process %q; valid: poisson, gamma, weibull, constant", s.Arrival.Process)
	}
	if err := validateFinitePositive("arrival.rate", s.Arrival.Rate); err != nil {
		return err
	}
	if s.Arrival.CV != nil {
		if err := validateFinitePositive("arrival.cv", *s.Arrival.CV); err != nil {
			return err
		}
		if s.Arrival.Process == "weibull" && (*s.Arrival.CV < 0.01 || *s.Arrival.CV > 10.4) {
			return fmt.Errorf("weibull CV must be in [0.01, 10.4], got %f", *s.Arrival.CV)
		}
	}
	if err := validateDistSpec("burst", &s.Burst); err != nil {
		return err
	}
	if s.Priority.Max < s.Priority.Min {
		return fmt.Errorf("priority.max %d is below priority.min %d", s.Priority.Max, s.Priority.Min)
	}
	return nil
}

func validateDistSpec(prefix string, d *DistSpec) error {
	if !validDistTypes[d.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: constant, uniform, gaussian, exponential", prefix, d.Type)
	}
	for name, val := range d.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", prefix, name, val)
		}
	}
	for _, name := range requiredParams[d.Type] {
		if _, ok := d.Params[name]; !ok {
			return fmt.Errorf("%s: %s distribution requires params.%s", prefix, d.Type, name)
		}
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}
