// Package fingerprint computes a canonical structural fingerprint of a
// compiled platform, used to decide whether two independently compiled
// topologies are equivalent. Two compiles of the same document must
// serialize to identical fingerprints.
package fingerprint

import (
	"fmt"
	"sort"
	"strings"

	"evalgo.org/simfabric/internal/topology"
)

type hostKey struct {
	zone  string
	speed string
	cores int
	disks int
}

type diskKey struct {
	readBW  string
	writeBW string
}

// Fingerprint is the canonical representation of a platform for
// comparison: per-zone host counts, host groups and disk groups.
type Fingerprint struct {
	zoneHostCounts map[string]int
	hostGroups     map[hostKey]int
	diskGroups     map[diskKey]int
}

// Collect builds the fingerprint of the subtree rooted at root.
func Collect(root *topology.Zone) *Fingerprint {
	fp := &Fingerprint{
		zoneHostCounts: map[string]int{},
		hostGroups:     map[hostKey]int{},
		diskGroups:     map[diskKey]int{},
	}
	topology.Walk(root, func(z *topology.Zone) bool {
		fp.zoneHostCounts[z.Name] = len(z.Hosts())
		for _, h := range z.Hosts() {
			fp.hostGroups[hostKey{z.Name, h.Speed, h.Cores, len(h.Disks())}]++
			for _, d := range h.Disks() {
				fp.diskGroups[diskKey{d.ReadBandwidth, d.WriteBandwidth}]++
			}
		}
		return true
	})
	return fp
}

// Serialize renders the fingerprint as sorted Z:/H:/D: lines. Equal
// platforms serialize to byte-identical output.
func (fp *Fingerprint) Serialize() string {
	var lines []string
	for name, count := range fp.zoneHostCounts {
		lines = append(lines, fmt.Sprintf("Z:%s:%d", name, count))
	}
	for k, count := range fp.hostGroups {
		lines = append(lines, fmt.Sprintf("H:%s:%s:%d:%d:%d", k.zone, k.speed, k.cores, k.disks, count))
	}
	for k, count := range fp.diskGroups {
		lines = append(lines, fmt.Sprintf("D:%s:%s:%d", k.readBW, k.writeBW, count))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n") + "\n"
}

// Equal reports whether two fingerprints describe structurally
// equivalent platforms.
func Equal(a, b *Fingerprint) bool {
	return a.Serialize() == b.Serialize()
}

// Diff returns a human-readable list of the lines present in only one
// of the two fingerprints, prefixed with "-" (only in a) or "+" (only
// in b). An empty result means the platforms are equivalent.
func Diff(a, b *Fingerprint) []string {
	aLines := strings.Split(strings.TrimSuffix(a.Serialize(), "\n"), "\n")
	bLines := strings.Split(strings.TrimSuffix(b.Serialize(), "\n"), "\n")

	aSet := make(map[string]bool, len(aLines))
	for _, l := range aLines {
		aSet[l] = true
	}
	bSet := make(map[string]bool, len(bLines))
	for _, l := range bLines {
		bSet[l] = true
	}

	var diff []string
	for _, l := range aLines {
		if !bSet[l] {
			diff = append(diff, "-"+l)
		}
	}
	for _, l := range bLines {
		if !aSet[l] {
			diff = append(diff, "+"+l)
		}
	}
	return diff
}
