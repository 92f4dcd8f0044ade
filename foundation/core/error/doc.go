// Package error provides the structured error type shared by all numlab packages.
//
// Package: error
// Title: numlab Error Handling Framework
// Description: Implements a structured error with a discriminating code, a severity,
//              key/value details and the failing operation. The code is the error
//              kind: callers branch on it instead of on concrete Go types, and
//              presentation (logging, console messages) lives with the caller.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Reduced to the numlab code set, chain-aware lookups via errors.As
//
// Usage:
//   import nlerror "github.com/msto63/numlab/foundation/core/error"
//
//   err := nlerror.New("imaginary part is not finite").
//     WithCode(nlerror.CodeValueOutOfRange).
//     WithOperation("mathx.NewComplex").
//     WithDetail("imag", im)
//
//   if nlerror.HasCode(err, nlerror.CodeValueOutOfRange) {
//     // re-prompt
//   }
package error
