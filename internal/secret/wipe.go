// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import "github.com/awnumar/memguard"

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}

// WipeAll overwrites every slice with zeros.
func WipeAll(slices ...[]byte) {
	for _, b := range slices {
		Wipe(b)
	}
}

func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
