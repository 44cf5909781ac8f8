package pace

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dshunter/dshunter/instance"
)

const maxLineLength = 16 * 1024 * 1024

// ParseGR reads a PACE DIMACS-like .gr Dominating Set instance: lines
// starting with 'c' are comments, the header is "p ds n m", followed by m
// "u v" edge lines (1-indexed, u != v). Every vertex starts UNDOMINATED,
// UNDECIDED, not extra; every edge UNCONSTRAINED.
func ParseGR(r io.Reader) (*instance.Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	n, m, ok, err := scanGRHeader(scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing header line", ErrParse)
	}

	g := instance.New()
	for v := 1; v <= n; v++ {
		g.AddNodeAt(v, false)
	}

	read := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: malformed edge line %q", ErrParse, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: bad endpoint %q", ErrParse, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad endpoint %q", ErrParse, fields[1])
		}
		if u < 1 || u > n || v < 1 || v > n || u == v {
			return nil, fmt.Errorf("%w: edge (%d, %d) out of range for n=%d", ErrParse, u, v, n)
		}
		if err := g.AddEdge(u, v, instance.Unconstrained); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		read++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if read != m {
		return nil, fmt.Errorf("%w: header declared %d edges, found %d", ErrParse, m, read)
	}

	return g, nil
}

func scanGRHeader(scanner *bufio.Scanner) (n, m int, ok bool, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "p" || fields[1] != "ds" {
			return 0, 0, false, fmt.Errorf("%w: malformed header %q", ErrParse, line)
		}
		if n, err = strconv.Atoi(fields[2]); err != nil {
			return 0, 0, false, fmt.Errorf("%w: bad vertex count %q", ErrParse, fields[2])
		}
		if m, err = strconv.Atoi(fields[3]); err != nil {
			return 0, 0, false, fmt.Errorf("%w: bad edge count %q", ErrParse, fields[3])
		}
		return n, m, true, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, false, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return 0, 0, false, nil
}

// WriteSolution writes ds in the PACE solution-output convention: a first
// line with the set's size, then one vertex id per line, ascending.
func WriteSolution(w io.Writer, ds []int) error {
	sorted := append([]int(nil), ds...)
	sort.Ints(sorted)

	if _, err := fmt.Fprintln(w, len(sorted)); err != nil {
		return err
	}
	for _, v := range sorted {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
