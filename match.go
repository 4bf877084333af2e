// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package esamatchfinder

// Match is a single back-reference: T[p-Offset : p-Offset+Length) equals
// T[p : p+Length), with MinMatchLength <= Length <= MaxMatchLength as
// configured at Create.
type Match struct {
	Length int32
	Offset int32
}
