// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package esamatchfinder

import (
	"errors"
	"fmt"
)

// Sentinel errors for the match-finder's two error kinds.
var (
	// ErrBadParameter is returned when a caller-supplied argument violates an
	// operation's preconditions (out-of-range size, length, position, or
	// window). The finder's previously parsed state, if any, is left intact.
	ErrBadParameter = errors.New("esamatchfinder: bad parameter")

	// ErrNotParsed is returned by any operation other than Create/Close/Parse
	// when called before Parse has succeeded at least once. errors.Is(err,
	// ErrBadParameter) reports true for it.
	ErrNotParsed = fmt.Errorf("%w: block not parsed", ErrBadParameter)

	// ErrInternal is returned by Parse when the external SA/PLCP builder
	// fails or returns arrays of the wrong length. Allocation failure is not
	// reported through it. The finder drops back to the unparsed state:
	// later operations other than Close and Parse return ErrNotParsed.
	ErrInternal = errors.New("esamatchfinder: internal error")
)
