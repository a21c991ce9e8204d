// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// ParameterError reports a derivation parameter Argon2id rejects. It points
// at a deployment or build misconfiguration. Value is the offending number,
// never key material: for the pepper only its length is reported.
type ParameterError struct {
	Param  string
	Value  string
	Reason string
}

func newParameterError(param, value, reason string) *ParameterError {
	return &ParameterError{Param: param, Value: value, Reason: reason}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid argon2id parameter %s=%s: %s", e.Param, e.Value, e.Reason)
}

// Derivation stages reported by DerivationError.
const (
	StageReveal = "reveal"
	StageHash   = "argon2id"
	StageEncode = "encode"
)

// DerivationError reports a failure of the derivation itself, for example an
// allocation failure under the configured memory cost.
type DerivationError struct {
	Stage string
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derivation failed at %s stage: %v", e.Stage, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}
