// Package dimacs reads and writes formulas in the DIMACS CNF format.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/msharpe248/bsat-sub001/cnf"
)

func readClause(line string) (cnf.Clause, int, error) {
	values := strings.Fields(line)
	if len(values) == 0 || values[len(values)-1] != "0" {
		return nil, 0, fmt.Errorf("clause line does not end with 0: %q", line)
	}
	maxVar := 0
	var lits cnf.Clause
	for _, v := range values[:len(values)-1] {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, 0, fmt.Errorf("bad literal %q: %w", v, err)
		}
		if parsed == 0 {
			return nil, 0, fmt.Errorf("literal 0 inside clause: %q", line)
		}
		p := cnf.IntToLit(parsed)
		if n := int(p.Var()) + 1; n > maxVar {
			maxVar = n
		}
		lits = append(lits, p)
	}
	return lits, maxVar, nil
}

// Parse reads a DIMACS CNF document. The variable count grows to cover
// every literal actually seen, so a header understating it is not
// fatal; a clause count mismatch is reported as an error.
func Parse(r io.Reader) (*cnf.Formula, error) {
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	declaredClauses := -1
	count := 0
	f := cnf.New(0)
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			values := strings.Fields(line)
			if len(values) != 4 || values[1] != "cnf" {
				return nil, fmt.Errorf("bad problem line: %q", line)
			}
			vars, err := strconv.Atoi(values[2])
			if err != nil {
				return nil, fmt.Errorf("bad variable count: %w", err)
			}
			declaredClauses, err = strconv.Atoi(values[3])
			if err != nil {
				return nil, fmt.Errorf("bad clause count: %w", err)
			}
			if vars > f.NumVars {
				f.NumVars = vars
			}
			continue
		}
		lits, maxVar, err := readClause(line)
		if err != nil {
			return nil, err
		}
		if maxVar > f.NumVars {
			f.NumVars = maxVar
		}
		f.AddClause(lits...)
		count++
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	if declaredClauses >= 0 && count != declaredClauses {
		return nil, fmt.Errorf("wrong number of clauses: got %d, header says %d", count, declaredClauses)
	}
	return f, nil
}

// WriteModel prints a DIMACS "v" line for a total assignment.
func WriteModel(w io.Writer, model cnf.Assignment) error {
	if _, err := fmt.Fprint(w, "v "); err != nil {
		return err
	}
	for i, val := range model {
		v := i + 1
		if !val {
			v = -v
		}
		if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "0")
	return err
}
