package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a scheduling problem loadable from a YAML file:
//
//	policy: round-robin
//	quantum: 2
//	processes:
//	  - {id: P1, arrival: 0, burst: 5, priority: 2}
//	disk:
//	  head_start: 50
//	  max_cylinder: 199
//	  requests: [82, 170, 43]
type Scenario struct {
	Policy    string        `yaml:"policy"`
	Quantum   int64         `yaml:"quantum,omitempty"`
	Processes []ProcessSpec `yaml:"processes,omitempty"`
	Disk      DiskWorkload  `yaml:"disk,omitempty"`
}

// LoadScenario reads and parses a YAML scenario file.
// Unknown fields are rejected so that typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses YAML scenario bytes with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks that the policy name is known. Workload rules are checked
// by the scheduler when it runs.
func (s *Scenario) Validate() error {
	if s.Policy == "" {
		return fmt.Errorf("%w: scenario policy is required (one of %v)", ErrInvalidInput, ValidSchedulerNames())
	}
	if !IsValidScheduler(s.Policy) {
		return fmt.Errorf("%w: unknown policy %q (one of %v)", ErrInvalidInput, s.Policy, ValidSchedulerNames())
	}
	return nil
}

// Workload returns the scheduler input described by the scenario.
func (s *Scenario) Workload() Workload {
	return Workload{
		Processes: append([]ProcessSpec(nil), s.Processes...),
		Quantum:   s.Quantum,
		Disk: DiskWorkload{
			HeadStart:       s.Disk.HeadStart,
			MaxCylinder:     s.Disk.MaxCylinder,
			Requests:        append([]int64(nil), s.Disk.Requests...),
			SweepToBoundary: s.Disk.SweepToBoundary,
		},
	}
}

// Run validates the scenario and runs its scheduler.
func (s *Scenario) Run() (*SimulationResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return NewScheduler(s.Policy).Run(s.Workload())
}
