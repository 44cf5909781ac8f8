package pace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshunter/dshunter/instance"
)

// ParseADS reads the .ads extended format used to serialize a partially
// reduced instance: header "p ads n m d", a line of d already-committed
// vertex ids, n node-description lines "v s_d s_m e" (domination status
// 0|1, membership status 0|1|2, is-extra 0|1), then m edge lines "u v f"
// (f: 0 unconstrained, 1 forced). Vertex ids need not be contiguous from 1.
func ParseADS(r io.Reader) (*instance.Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	n, m, d, ok, err := scanADSHeader(scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing header line", ErrParse)
	}

	ds, err := scanDSLine(scanner, d)
	if err != nil {
		return nil, err
	}

	g := instance.New()
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d node lines, found %d", ErrParse, n, i)
		}
		if err := parseADSNodeLine(g, scanner.Text()); err != nil {
			return nil, err
		}
	}

	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d edge lines, found %d", ErrParse, m, i)
		}
		if err := parseADSEdgeLine(g, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	g.SortAdjacency()
	g.DS = ds

	return g, nil
}

func scanADSHeader(scanner *bufio.Scanner) (n, m, d int, ok bool, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 || fields[0] != "p" || fields[1] != "ads" {
			return 0, 0, 0, false, fmt.Errorf("%w: malformed header %q", ErrParse, line)
		}
		if n, err = strconv.Atoi(fields[2]); err != nil {
			return 0, 0, 0, false, fmt.Errorf("%w: bad vertex count %q", ErrParse, fields[2])
		}
		if m, err = strconv.Atoi(fields[3]); err != nil {
			return 0, 0, 0, false, fmt.Errorf("%w: bad edge count %q", ErrParse, fields[3])
		}
		if d, err = strconv.Atoi(fields[4]); err != nil {
			return 0, 0, 0, false, fmt.Errorf("%w: bad committed-vertex count %q", ErrParse, fields[4])
		}
		return n, m, d, true, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, 0, false, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return 0, 0, 0, false, nil
}

func scanDSLine(scanner *bufio.Scanner, d int) ([]int, error) {
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing dominating-set line", ErrParse)
	}
	fields := strings.Fields(scanner.Text())
	if d == 0 {
		return nil, nil
	}
	if len(fields) != d {
		return nil, fmt.Errorf("%w: header declared %d committed vertices, found %d", ErrParse, d, len(fields))
	}

	ds := make([]int, d)
	for i, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: bad committed vertex %q", ErrParse, s)
		}
		ds[i] = v
	}
	return ds, nil
}

func parseADSNodeLine(g *instance.Instance, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return fmt.Errorf("%w: malformed node line %q", ErrParse, line)
	}

	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: bad vertex id %q", ErrParse, fields[0])
	}
	sd, err := strconv.Atoi(fields[1])
	if err != nil || sd < 0 || sd > 1 {
		return fmt.Errorf("%w: bad domination status %q", ErrParse, fields[1])
	}
	sm, err := strconv.Atoi(fields[2])
	if err != nil || sm < 0 || sm > 2 {
		return fmt.Errorf("%w: bad membership status %q", ErrParse, fields[2])
	}
	extra, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("%w: bad is-extra flag %q", ErrParse, fields[3])
	}

	g.AddNodeAt(v, extra != 0)
	g.SetStatus(v, instance.DominationStatus(sd), instance.MembershipStatus(sm))
	return nil
}

func parseADSEdgeLine(g *instance.Instance, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return fmt.Errorf("%w: malformed edge line %q", ErrParse, line)
	}

	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: bad endpoint %q", ErrParse, fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: bad endpoint %q", ErrParse, fields[1])
	}
	f, err := strconv.Atoi(fields[2])
	if err != nil || f < 0 || f > 1 {
		return fmt.Errorf("%w: bad edge status %q", ErrParse, fields[2])
	}
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%w: edge (%d, %d) references a vertex not listed among the %d node lines", ErrParse, u, v, g.NodeCount())
	}

	status := instance.Unconstrained
	if f == 1 {
		status = instance.Forced
	}
	g.AddEdgeRaw(u, v, status)
	return nil
}

// WriteADS writes g in the .ads format described at ParseADS: the current
// committed set (g.DS), then every remaining vertex's status, then every
// remaining edge (each undirected pair written once, u < v).
func WriteADS(w io.Writer, g *instance.Instance) error {
	if _, err := fmt.Fprintf(w, "p ads %d %d %d\n", g.NodeCount(), g.EdgeCount(), len(g.DS)); err != nil {
		return err
	}

	parts := make([]string, len(g.DS))
	for i, v := range g.DS {
		parts[i] = strconv.Itoa(v)
	}
	if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
		return err
	}

	for _, v := range g.Nodes {
		domination := 0
		if g.IsDominated(v) {
			domination = 1
		}
		membership := 0
		switch {
		case g.IsTaken(v):
			membership = 2
		case g.IsDisregarded(v):
			membership = 1
		}
		extra := 0
		if g.IsExtra(v) {
			extra = 1
		}
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", v, domination, membership, extra); err != nil {
			return err
		}
	}

	for _, u := range g.Nodes {
		for _, e := range g.Adj(u) {
			if u >= e.To {
				continue
			}
			status := 0
			if e.Status == instance.Forced {
				status = 1
			}
			if _, err := fmt.Fprintf(w, "%d %d %d\n", u, e.To, status); err != nil {
				return err
			}
		}
	}

	return nil
}
