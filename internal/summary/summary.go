// Package summary renders a human-readable overview of a compiled
// platform: the zone hierarchy, the hosts grouped per zone and the
// disk population grouped by bandwidth.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"evalgo.org/simfabric/internal/topology"
)

type hostGroup struct {
	speed string
	cores int
	disks int
}

type diskGroup struct {
	readBW  string
	writeBW string
}

// Summarize renders the summary of the subtree rooted at root. Output
// is deterministic: group listings are sorted, and the hierarchy
// follows zone creation order.
func Summarize(root *topology.Zone) string {
	var b strings.Builder

	totalHosts := 0
	totalDisks := 0
	topology.Walk(root, func(z *topology.Zone) bool {
		for _, h := range z.Hosts() {
			totalHosts++
			totalDisks += len(h.Disks())
		}
		return true
	})

	b.WriteString("\n=== PLATFORM SUMMARY ===\n\n")

	b.WriteString("ZONE HIERARCHY:\n")
	writeZoneTree(&b, root, "")

	fmt.Fprintf(&b, "\nHOSTS (%d):\n", totalHosts)
	writeHostSummary(&b, root)

	fmt.Fprintf(&b, "\nDISKS (%d):\n", totalDisks)
	writeDiskSummary(&b, root)

	b.WriteString("\n")
	return b.String()
}

// writeZoneTree prints the indented containment tree with per-zone
// host counts. An explicit stack keeps deeply nested facilities from
// exhausting the call stack.
func writeZoneTree(b *strings.Builder, root *topology.Zone, indent string) {
	type frame struct {
		zone   *topology.Zone
		indent string
	}
	stack := []frame{{root, indent}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.WriteString(f.indent)
		b.WriteString(f.zone.Name)
		if n := len(f.zone.Hosts()); n > 0 {
			fmt.Fprintf(b, " (%d hosts)", n)
		}
		b.WriteString("\n")

		children := f.zone.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.indent + "  "})
		}
	}
}

// writeHostSummary lists hosts per zone: small zones host by host,
// larger zones as aggregated groups.
func writeHostSummary(b *strings.Builder, root *topology.Zone) {
	var zoneNames []string
	hostsByZone := map[string][]*topology.Host{}
	topology.Walk(root, func(z *topology.Zone) bool {
		if len(z.Hosts()) > 0 {
			zoneNames = append(zoneNames, z.Name)
			hostsByZone[z.Name] = z.Hosts()
		}
		return true
	})
	sort.Strings(zoneNames)

	for _, zoneName := range zoneNames {
		hosts := hostsByZone[zoneName]
		if len(hosts) <= 3 {
			for _, h := range hosts {
				fmt.Fprintf(b, "  %s [%s] %s, %d cores", h.Name, zoneName, h.Speed, h.Cores)
				if n := len(h.Disks()); n > 0 {
					fmt.Fprintf(b, ", %d disk(s)", n)
				}
				b.WriteString("\n")
			}
			continue
		}

		groups := map[hostGroup]int{}
		for _, h := range hosts {
			groups[hostGroup{h.Speed, h.Cores, len(h.Disks())}]++
		}
		fmt.Fprintf(b, "  [%s] %d hosts:\n", zoneName, len(hosts))
		for _, g := range sortedHostGroups(groups) {
			fmt.Fprintf(b, "    %dx: %s, %d cores, %d disk(s)\n", groups[g], g.speed, g.cores, g.disks)
		}
	}
}

// writeDiskSummary groups every disk in the platform by its read and
// write bandwidth.
func writeDiskSummary(b *strings.Builder, root *topology.Zone) {
	groups := map[diskGroup]int{}
	topology.Walk(root, func(z *topology.Zone) bool {
		for _, h := range z.Hosts() {
			for _, d := range h.Disks() {
				groups[diskGroup{d.ReadBandwidth, d.WriteBandwidth}]++
			}
		}
		return true
	})

	keys := make([]diskGroup, 0, len(groups))
	for g := range groups {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].readBW != keys[j].readBW {
			return keys[i].readBW < keys[j].readBW
		}
		return keys[i].writeBW < keys[j].writeBW
	})

	for _, g := range keys {
		fmt.Fprintf(b, "  %dx: read=%s, write=%s\n", groups[g], g.readBW, g.writeBW)
	}
}

func sortedHostGroups(groups map[hostGroup]int) []hostGroup {
	keys := make([]hostGroup, 0, len(groups))
	for g := range groups {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].speed != keys[j].speed {
			return keys[i].speed < keys[j].speed
		}
		if keys[i].cores != keys[j].cores {
			return keys[i].cores < keys[j].cores
		}
		return keys[i].disks < keys[j].disks
	})
	return keys
}
