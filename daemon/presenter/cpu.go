package presenter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// cpuPresenter implements spec.md §4.4/§8 scenario 2: cluster-total rows
// precede their cores; clusters are ordered by the minimum core id they
// contain; visibility follows domain.CPUMode.
type cpuPresenter struct{}

// parseCPURow splits a cpu.<cluster>.<idx>.<kind>... name, where kind is
// "total" or "core"; names shorter than this shape (cpu.total.count) are
// never rows.
func parseCPURow(name metricname.Name) (cluster string, idx int, kind, core string, ok bool) {
	segs := name.Segments()
	if len(segs) < 6 || segs[0] != "cpu" {
		return "", 0, "", "", false
	}
	cluster = segs[1]
	idx, _ = strconv.Atoi(segs[2])
	kind = segs[3]
	if kind == "core" && len(segs) >= 7 {
		core = segs[4]
	}
	return cluster, idx, kind, core, true
}

func clusterTitle(cluster string) string {
	if cluster == "cpu" {
		return "CPU"
	}
	if cluster == "" {
		return "Cluster"
	}
	return strings.ToUpper(cluster[:1]) + cluster[1:]
}

func (cpuPresenter) DisplayName(name metricname.Name, modes domain.Modes) (string, bool) {
	cluster, _, kind, core, ok := parseCPURow(name)
	if !ok {
		return "", false
	}

	switch modes.CPU {
	case domain.CPUByCluster:
		if kind != "total" {
			return "", false
		}
	case domain.CPUByCore:
		// both totals and cores visible
	case domain.CPUAll:
		if kind != "core" {
			return "", false
		}
	}

	if kind == "total" {
		return clusterTitle(cluster) + " total", true
	}
	return fmt.Sprintf("%s CPU %s", clusterTitle(cluster), core), true
}

func (cpuPresenter) Format(_ metricname.Name, value, _ float64) string {
	return Format(metricname.Percent, value)
}

func (cpuPresenter) ScalePolicy(_ metricname.Name, values []float64) float64 {
	return ScalePolicy(metricname.Percent, values)
}

func (cpuPresenter) Indent(name metricname.Name, _ domain.Modes) int {
	_, _, kind, _, ok := parseCPURow(name)
	if ok && kind == "core" {
		return 1
	}
	return 0
}

func (cpuPresenter) Order(names []metricname.Name, _ domain.Modes) []metricname.Name {
	type clusterGroup struct {
		cluster  string
		idx      int
		total    metricname.Name
		hasTotal bool
		cores    []metricname.Name
		minCore  int
	}

	groups := make(map[string]*clusterGroup)
	var groupKeys []string
	var passthrough []metricname.Name

	for _, n := range names {
		cluster, idx, kind, core, ok := parseCPURow(n)
		if !ok {
			passthrough = append(passthrough, n)
			continue
		}
		key := cluster + "/" + strconv.Itoa(idx)
		g, exists := groups[key]
		if !exists {
			g = &clusterGroup{cluster: cluster, idx: idx, minCore: 1 << 30}
			groups[key] = g
			groupKeys = append(groupKeys, key)
		}
		if kind == "total" {
			g.total = n
			g.hasTotal = true
		} else {
			g.cores = append(g.cores, n)
			if id, err := strconv.Atoi(core); err == nil && id < g.minCore {
				g.minCore = id
			}
		}
	}

	sort.Slice(groupKeys, func(i, j int) bool {
		return groups[groupKeys[i]].minCore < groups[groupKeys[j]].minCore
	})

	var out []metricname.Name
	for _, key := range groupKeys {
		g := groups[key]
		if g.hasTotal {
			out = append(out, g.total)
		}
		sort.Slice(g.cores, func(i, j int) bool {
			_, _, _, ci, _ := parseCPURow(g.cores[i])
			_, _, _, cj, _ := parseCPURow(g.cores[j])
			a, _ := strconv.Atoi(ci)
			b, _ := strconv.Atoi(cj)
			return a < b
		})
		out = append(out, g.cores...)
	}
	return append(out, passthrough...)
}
