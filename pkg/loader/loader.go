package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/netsim/pkg/model"
)

const (
	interfacesTable = "INTERFACES_TABLE"
	nodesTable      = "NODES_TABLE"
	demandsTable    = "DEMANDS_TABLE"
	lspTable        = "RSVP_LSP_TABLE"
)

// Load reads and parses a TSV model file from disk.
func Load(path string) (*model.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("Load", "reading %s: %v", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a TSV model file already read into memory. Useful
// for tests and for embedding a model inline.
func LoadFromBytes(data []byte) (*model.Network, error) {
	blocks, err := splitBlocks(string(data))
	if err != nil {
		return nil, err
	}

	net := model.NewNetwork()
	circuitCounts := make(map[string]int)
	var sawInterfaces, sawDemands bool

	for _, b := range blocks {
		header, rows, err := parseRows(b)
		if err != nil {
			return nil, newError("Load", "table %s: %v", b.name, err)
		}
		idx, err := columnIndex(b.name, header)
		if err != nil {
			return nil, err
		}

		switch b.name {
		case interfacesTable:
			sawInterfaces = true
			if err := loadInterfaces(net, idx, rows, circuitCounts); err != nil {
				return nil, err
			}
		case nodesTable:
			if err := loadNodes(net, idx, rows); err != nil {
				return nil, err
			}
		case demandsTable:
			sawDemands = true
			if err := loadDemands(net, idx, rows); err != nil {
				return nil, err
			}
		case lspTable:
			if err := loadLSPs(net, idx, rows); err != nil {
				return nil, err
			}
		default:
			return nil, newError("Load", "unrecognized table %q", b.name)
		}
	}

	if !sawInterfaces {
		return nil, newError("Load", "missing required %s", interfacesTable)
	}
	if !sawDemands {
		return nil, newError("Load", "missing required %s", demandsTable)
	}

	if err := checkCircuitCounts(circuitCounts); err != nil {
		return nil, err
	}
	return net, nil
}

// checkCircuitCounts enforces the load-time invariant that every circuit_id
// must appear exactly twice across the interfaces table.
func checkCircuitCounts(counts map[string]int) error {
	var bad []string
	for id, n := range counts {
		if n != 2 {
			bad = append(bad, fmt.Sprintf("%s (seen %d time(s))", id, n))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return newError("Load", "every circuit_id must appear exactly twice: %s", strings.Join(bad, "; "))
}

func loadInterfaces(net *model.Network, idx columnMap, rows [][]string, circuitCounts map[string]int) error {
	required := []string{"node_object_name", "remote_node_object_name", "name", "cost", "capacity", "circuit_id"}
	if err := idx.requireAll(interfacesTable, required); err != nil {
		return err
	}

	hasRSVP := idx.has("rsvp_enabled")
	hasPercent := idx.has("percent_reservable_bandwidth")

	for n, row := range rows {
		node, err := idx.get(row, "node_object_name")
		if err != nil {
			return rowError(interfacesTable, n, err)
		}
		remote, err := idx.get(row, "remote_node_object_name")
		if err != nil {
			return rowError(interfacesTable, n, err)
		}
		name, err := idx.get(row, "name")
		if err != nil {
			return rowError(interfacesTable, n, err)
		}
		costStr, err := idx.get(row, "cost")
		if err != nil {
			return rowError(interfacesTable, n, err)
		}
		cost, err := strconv.Atoi(strings.TrimSpace(costStr))
		if err != nil {
			return rowError(interfacesTable, n, fmt.Errorf("cost %q: %v", costStr, err))
		}
		capStr, err := idx.get(row, "capacity")
		if err != nil {
			return rowError(interfacesTable, n, err)
		}
		capacity, err := strconv.ParseFloat(strings.TrimSpace(capStr), 64)
		if err != nil {
			return rowError(interfacesTable, n, fmt.Errorf("capacity %q: %v", capStr, err))
		}
		circuitID, err := idx.get(row, "circuit_id")
		if err != nil {
			return rowError(interfacesTable, n, err)
		}

		iface := model.NewInterface(node, remote, name, cost, capacity, circuitID)

		if hasRSVP {
			raw, _ := idx.get(row, "rsvp_enabled")
			iface.RSVPEnabled = parseLooseBool(raw)
		}
		if hasPercent {
			raw, _ := idx.get(row, "percent_reservable_bandwidth")
			if strings.TrimSpace(raw) != "" {
				pct, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
				if err != nil {
					return rowError(interfacesTable, n, fmt.Errorf("percent_reservable_bandwidth %q: %v", raw, err))
				}
				iface.PercentReservableBandwidth = pct
			}
		}

		if err := net.AddInterface(iface); err != nil {
			return rowError(interfacesTable, n, err)
		}
		circuitCounts[circuitID]++
	}
	return nil
}

func loadNodes(net *model.Network, idx columnMap, rows [][]string) error {
	if err := idx.requireAll(nodesTable, []string{"name"}); err != nil {
		return err
	}
	hasLon := idx.has("lon")
	hasLat := idx.has("lat")

	for n, row := range rows {
		name, err := idx.get(row, "name")
		if err != nil {
			return rowError(nodesTable, n, err)
		}
		node := net.EnsureNode(name)
		if hasLon {
			raw, _ := idx.get(row, "lon")
			if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				node.Lon = v
			}
		}
		if hasLat {
			raw, _ := idx.get(row, "lat")
			if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				node.Lat = v
			}
		}
	}
	return nil
}

func loadDemands(net *model.Network, idx columnMap, rows [][]string) error {
	if err := idx.requireAll(demandsTable, []string{"source", "dest", "traffic", "name"}); err != nil {
		return err
	}
	for n, row := range rows {
		source, _ := idx.get(row, "source")
		dest, _ := idx.get(row, "dest")
		name, _ := idx.get(row, "name")
		trafficStr, _ := idx.get(row, "traffic")
		traffic, err := strconv.ParseFloat(strings.TrimSpace(trafficStr), 64)
		if err != nil {
			return rowError(demandsTable, n, fmt.Errorf("traffic %q: %v", trafficStr, err))
		}
		if err := net.AddDemand(model.NewDemand(source, dest, name, traffic)); err != nil {
			return rowError(demandsTable, n, err)
		}
	}
	return nil
}

func loadLSPs(net *model.Network, idx columnMap, rows [][]string) error {
	if err := idx.requireAll(lspTable, []string{"source", "dest", "name"}); err != nil {
		return err
	}
	hasSetupBW := idx.has("configured_setup_bw")

	for n, row := range rows {
		source, _ := idx.get(row, "source")
		dest, _ := idx.get(row, "dest")
		name, _ := idx.get(row, "name")

		var setupBW *float64
		if hasSetupBW {
			raw, _ := idx.get(row, "configured_setup_bw")
			if strings.TrimSpace(raw) != "" {
				v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
				if err != nil {
					return rowError(lspTable, n, fmt.Errorf("configured_setup_bw %q: %v", raw, err))
				}
				setupBW = &v
			}
		}
		if err := net.AddLSP(model.NewLSP(source, dest, name, setupBW)); err != nil {
			return rowError(lspTable, n, err)
		}
	}
	return nil
}

// parseLooseBool implements the rsvp_enabled parsing rule: T/True/true, or
// any other string strconv.ParseBool reads as true ("1", "t", "TRUE"), is
// true; anything else is false.
func parseLooseBool(s string) bool {
	switch strings.TrimSpace(s) {
	case "T", "True", "true":
		return true
	}
	b, _ := strconv.ParseBool(strings.TrimSpace(s))
	return b
}

func rowError(table string, rowNum int, err error) error {
	return newError("Load", "%s row %d: %v", table, rowNum+1, err)
}

// block is one raw table section: its header name and the lines (column
// header plus data rows) that follow it, up to the next blank line or EOF.
type block struct {
	name  string
	lines []string
}

// splitBlocks scans the file for TABLE-NAME lines and groups the lines
// that follow each one (up to a blank line) into a block.
func splitBlocks(content string) ([]block, error) {
	var blocks []block
	var current *block

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			current = nil
			continue
		}
		if isTableHeader(trimmed) {
			blocks = append(blocks, block{name: trimmed})
			current = &blocks[len(blocks)-1]
			continue
		}
		if current == nil {
			return nil, newError("Load", "data line outside of any table: %q", line)
		}
		current.lines = append(current.lines, line)
	}
	return blocks, nil
}

func isTableHeader(s string) bool {
	switch s {
	case interfacesTable, nodesTable, demandsTable, lspTable:
		return true
	}
	return false
}

// parseRows parses a block's lines as tab-separated records, returning the
// column header row and every data row after it.
func parseRows(b block) ([]string, [][]string, error) {
	if len(b.lines) == 0 {
		return nil, nil, fmt.Errorf("table has no column header line")
	}
	r := csv.NewReader(strings.NewReader(strings.Join(b.lines, "\n")))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing TSV rows: %w", err)
	}
	return records[0], records[1:], nil
}

// columnMap maps a table's declared column names to their position.
type columnMap map[string]int

func columnIndex(table string, header []string) (columnMap, error) {
	idx := make(columnMap, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx, nil
}

func (idx columnMap) has(name string) bool {
	_, ok := idx[name]
	return ok
}

func (idx columnMap) requireAll(table string, names []string) error {
	var missing []string
	for _, name := range names {
		if !idx.has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return newError("Load", "%s missing required column(s): %s", table, strings.Join(missing, ", "))
	}
	return nil
}

// get returns the row's value for the named column. A row shorter than
// the header (a trailing optional column simply omitted on this row)
// yields an empty string rather than an error.
func (idx columnMap) get(row []string, name string) (string, error) {
	i, ok := idx[name]
	if !ok {
		return "", fmt.Errorf("column %q not present", name)
	}
	if i >= len(row) {
		return "", nil
	}
	return row[i], nil
}
