package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// PolicyCircularScan is the registry name of the C-SCAN disk policy.
const PolicyCircularScan = "c-scan"

// DiskWorkload describes one disk-head scheduling problem.
type DiskWorkload struct {
	HeadStart   int64   `yaml:"head_start" json:"head_start"`
	MaxCylinder int64   `yaml:"max_cylinder" json:"max_cylinder"`
	Requests    []int64 `yaml:"requests" json:"requests"`

	// SweepToBoundary makes the head travel to MaxCylinder before wrapping,
	// as in the textbook variant. When false the wrap starts at the last
	// serviced track.
	SweepToBoundary bool `yaml:"sweep_to_boundary" json:"sweep_to_boundary"`
}

func (w DiskWorkload) diskRequests() []DiskRequest {
	reqs := make([]DiskRequest, len(w.Requests))
	for i, t := range w.Requests {
		reqs[i] = DiskRequest{TrackPosition: t}
	}
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].TrackPosition < reqs[j].TrackPosition
	})
	return reqs
}

// RunCircularScan orders pending track requests with C-SCAN.
//
// Requests at or above the head are serviced ascending. If requests below
// the head remain, the head jumps to track 0 (counted as movement, not as a
// serviced request) and services them ascending. The jump happens even when
// every request is below the head: the head never services on the way down.
func RunCircularScan(w DiskWorkload) (*SimulationResult, error) {
	if err := ValidateDisk(w); err != nil {
		return nil, err
	}
	reqs := w.diskRequests()
	seek := SeekResult{
		HeadStart:   w.HeadStart,
		MaxCylinder: w.MaxCylinder,
		Sequence:    make([]int64, 0, len(reqs)),
		Path:        []int64{w.HeadStart},
	}

	pos := w.HeadStart
	move := func(to int64) {
		d := to - pos
		if d < 0 {
			d = -d
		}
		seek.TotalHeadMovement += d
		seek.Path = append(seek.Path, to)
		pos = to
	}

	split := sort.Search(len(reqs), func(i int) bool {
		return reqs[i].TrackPosition >= w.HeadStart
	})
	for _, r := range reqs[split:] {
		move(r.TrackPosition)
		seek.Sequence = append(seek.Sequence, r.TrackPosition)
	}
	if split > 0 {
		if w.SweepToBoundary && pos != w.MaxCylinder {
			move(w.MaxCylinder)
		}
		logrus.Debugf("c-scan: wrap from %d to 0", pos)
		move(0)
		seek.Wrapped = true
		for _, r := range reqs[:split] {
			move(r.TrackPosition)
			seek.Sequence = append(seek.Sequence, r.TrackPosition)
		}
	}
	logrus.Debugf("c-scan: serviced %d requests, movement=%d", len(seek.Sequence), seek.TotalHeadMovement)

	return newDiskResult(PolicyCircularScan, seek), nil
}
