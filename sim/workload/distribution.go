package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// BurstSampler generates CPU burst lengths.
type BurstSampler interface {
	// Sample returns a positive burst length (>= 1).
	Sample(rng *rand.Rand) int64
}

var requiredParams = map[string][]string{
	"constant":    {"value"},
	"uniform":     {"min", "max"},
	"gaussian":    {"mean", "std_dev", "min", "max"},
	"exponential": {"mean"},
}

// ConstantBurstSampler always returns the same burst.
type ConstantBurstSampler struct {
	value int64
}

func (s *ConstantBurstSampler) Sample(*rand.Rand) int64 {
	return s.value
}

// UniformSampler draws bursts uniformly from [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	return s.min + rng.Int63n(s.max-s.min+1)
}

// GaussianSampler produces clamped Gaussian burst lengths.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int64(math.Round(clamped))
}

// ExponentialSampler produces exponentially-distributed burst lengths.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	result := int64(math.Round(rng.ExpFloat64() * s.mean))
	if result < 1 {
		return 1
	}
	return result
}

// NewBurstSampler creates a BurstSampler from a DistSpec.
// Bounds below 1 are raised to 1 so that every burst is positive.
func NewBurstSampler(spec DistSpec) (BurstSampler, error) {
	p := spec.Params
	switch spec.Type {
	case "constant":
		v := int64(math.Round(p["value"]))
		if v < 1 {
			return nil, fmt.Errorf("constant burst must be >= 1, got %d", v)
		}
		return &ConstantBurstSampler{value: v}, nil
	case "uniform":
		lo, hi, err := bounds(p)
		if err != nil {
			return nil, err
		}
		return &UniformSampler{min: lo, max: hi}, nil
	case "gaussian":
		lo, hi, err := bounds(p)
		if err != nil {
			return nil, err
		}
		if p["std_dev"] < 0 {
			return nil, fmt.Errorf("gaussian std_dev must be non-negative, got %f", p["std_dev"])
		}
		return &GaussianSampler{mean: p["mean"], stdDev: p["std_dev"], min: lo, max: hi}, nil
	case "exponential":
		if p["mean"] <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %f", p["mean"])
		}
		return &ExponentialSampler{mean: p["mean"]}, nil
	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}

func bounds(p map[string]float64) (lo, hi int64, err error) {
	lo = max(1, int64(math.Round(p["min"])))
	hi = int64(math.Round(p["max"]))
	if hi < lo {
		return 0, 0, fmt.Errorf("max %d is below min %d", hi, lo)
	}
	return lo, hi, nil
}
