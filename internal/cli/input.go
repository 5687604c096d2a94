// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apsp/matrix"
)

var (
	errUnsupportedInput = errors.New("cli: unsupported input file (want .json, .yaml, .yml or .toml)")
	errBadCell          = errors.New("cli: cell is neither an integer nor a no-edge token")
	errNoWeights        = errors.New("cli: input has no weights")
)

// matrixFile is the on-disk layout shared by all input formats:
//
//	weights = [[0, 3, "inf"], ["inf", 0, -2], [1, "inf", 0]]
type matrixFile struct {
	Weights [][]any `json:"weights" yaml:"weights" toml:"weights"`
}

// noEdgeTokens are always read as a missing edge, besides the configured one.
var noEdgeTokens = []string{matrix.TokenNoEdge, "+inf", "∞", "-"}

// loadMatrix reads a square weight matrix from path. The decoder is chosen
// by file extension; noEdge is the extra token read as matrix.NoEdge.
func loadMatrix(path, noEdge string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mf matrixFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&mf)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &mf)
	case ".toml":
		err = toml.Unmarshal(data, &mf)
	default:
		return nil, fmt.Errorf("%s: %w", path, errUnsupportedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(mf.Weights) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoWeights)
	}

	rows := make([][]int64, len(mf.Weights))
	for i, cells := range mf.Weights {
		rows[i] = make([]int64, len(cells))
		for j, v := range cells {
			if rows[i][j], err = parseCell(v, noEdge); err != nil {
				return nil, fmt.Errorf("%s: weights[%d][%d]: %w", path, i, j, err)
			}
		}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// parseCell converts one decoded value. Each decoder hands back its own
// number type: json.Number, int (yaml), int64 (toml), float64 (both).
func parseCell(v any, noEdge string) (int64, error) {
	switch x := v.(type) {
	case nil:
		return matrix.NoEdge, nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%d: %w", x, errBadCell)
		}
		return int64(x), nil
	case float64:
		return matrix.FloatToWeight(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", x, errBadCell)
		}
		return matrix.FloatToWeight(f)
	case string:
		return parseToken(x, noEdge)
	default:
		return 0, fmt.Errorf("%v (%T): %w", v, v, errBadCell)
	}
}

func parseToken(s, noEdge string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == noEdge {
		return matrix.NoEdge, nil
	}
	for _, tok := range noEdgeTokens {
		if strings.EqualFold(s, tok) {
			return matrix.NoEdge, nil
		}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errBadCell)
	}

	return i, nil
}
