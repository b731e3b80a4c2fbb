// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
)

// errLiteral is returned for matrix literals that cannot be parsed.
var errLiteral = errors.New("svddemo: bad matrix literal")

// parseMatrix reads a literal such as "4,0,2; 3,-5,1; 2,3,0": rows are
// separated by ';', entries by ',' or blanks.
func parseMatrix(lit string) (*matrix.Dense, error) {
	lit = strings.TrimSpace(lit)
	if lit == "" {
		return nil, fmt.Errorf("empty literal: %w", errLiteral)
	}

	var rows [][]float64
	for i, line := range strings.Split(lit, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("row %d is empty: %w", i, errLiteral)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %v: %w", i, j, err, errLiteral)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return matrix.NewDenseFrom(rows)
}

// solverByName maps the --solver flag to an Eigensolver.
func solverByName(name string) (svd.Eigensolver, error) {
	switch name {
	case "jacobi":
		return svd.Jacobi{}, nil
	case "gonum":
		return svd.Gonum{}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}
