package kmeans

import (
	"fmt"
	"strings"
)

// EmptyClusterPolicy decides how a round recovers a cluster that no record
// was assigned to.
type EmptyClusterPolicy int

const (
	// EmptyClusterReseed moves the centroid to a uniformly drawn record.
	EmptyClusterReseed EmptyClusterPolicy = iota
	// EmptyClusterKeep leaves the centroid where it was.
	EmptyClusterKeep
	// EmptyClusterFail aborts the run with *ErrEmptyCluster.
	EmptyClusterFail
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterReseed:
		return "reseed"
	case EmptyClusterKeep:
		return "keep"
	case EmptyClusterFail:
		return "fail"
	default:
		return fmt.Sprintf("EmptyClusterPolicy(%d)", int(p))
	}
}

// ParseEmptyClusterPolicy converts "reseed", "keep" or "fail" (any case) to
// a policy.
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reseed", "":
		return EmptyClusterReseed, nil
	case "keep":
		return EmptyClusterKeep, nil
	case "fail":
		return EmptyClusterFail, nil
	default:
		return 0, fmt.Errorf("unknown empty cluster policy %q", s)
	}
}
