// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     collector
// Description: Parsing and validation of count and value lines
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package collector

import (
	"fmt"
	"strconv"
	"strings"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	"github.com/msto63/numlab/foundation/utils/mathx"
)

// ParseCount parses an element count in the range 1..maxCount
func ParseCount(line string, maxCount int) (int, error) {
	text := strings.TrimSpace(line)
	expected := fmt.Sprintf("a whole number between 1 and %d", maxCount)

	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > maxCount {
		return 0, nlerrors.InvalidInput(nlerrors.ModuleCollector, "ParseCount", text, expected)
	}
	return n, nil
}

// ParsePair parses a line holding exactly two numbers, the real and the
// imaginary part, separated by whitespace
func ParsePair(line string) (mathx.Complex, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mathx.Complex{}, nlerrors.InvalidInput(nlerrors.ModuleCollector, "ParsePair",
			strings.TrimSpace(line), "two numbers separated by whitespace")
	}
	return mathx.ParseComplex(fields[0], fields[1])
}
