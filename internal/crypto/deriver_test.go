// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazypass/lazypass/internal/secret"
)

func newKeeper(t *testing.T, pepper string) *secret.Keeper {
	t.Helper()
	k := secret.NewKeeper()
	require.NoError(t, k.Init([]byte(pepper)))
	t.Cleanup(func() { _ = k.Close() })
	return k
}

func newTestDeriver(t *testing.T, p Params) *PasswordDeriver {
	t.Helper()
	d, err := NewPasswordDeriver(p)
	require.NoError(t, err)
	return d
}

type failingProvider struct{ err error }

func (f failingProvider) Vault() (*secret.Vault, error) { return nil, f.err }

func TestDerive_KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		pepper string
		input  string
		params Params
		want   string
	}{
		{
			name:   "baseline",
			pepper: "pepper123",
			input:  "myphrase",
			params: TestParams,
			want:   "a6265ee42c5e60a7702329bb86e79573927ab8825cd18c827f85a70ccb57c487",
		},
		{
			name:   "different phrase",
			pepper: "pepper123",
			input:  "myphrase2",
			params: TestParams,
			want:   "952fe10e393d917409d137a915eb06f5d1169fc96e19cd87d8112b4c38621a39",
		},
		{
			name:   "different pepper",
			pepper: "pepper124",
			input:  "myphrase",
			params: TestParams,
			want:   "aeeb35cdfc3302b3a18e9d0fa944d35bfef5bab21ba7fb7174dcce7590be6d11",
		},
		{
			name:   "two lanes, two passes, 64 byte output",
			pepper: "pepper123",
			input:  "myphrase",
			params: Params{Memory: 256, Iterations: 2, Parallelism: 2, KeyLength: 64},
			want: "ff50af3b7f54bb44615bd5a7d952eaa5c53596c99e4b475b091210b03dfff96e" +
				"f97099921f141511b00610c6d30d3f3a579158cfdd14893fb683296011bb590f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeriver(t, tt.params)
			got, err := d.Derive(tt.input, newKeeper(t, tt.pepper))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	d := newTestDeriver(t, TestParams)
	k := newKeeper(t, "pepper123")

	first, err := d.Derive("myphrase", k)
	require.NoError(t, err)
	for range 3 {
		again, err := d.Derive("myphrase", k)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDerive_OutputShape(t *testing.T) {
	d := newTestDeriver(t, TestParams)
	k := newKeeper(t, "pepper123")
	shape := regexp.MustCompile(`^[0-9a-f]{64}$`)

	for _, input := range []string{"", "a", "myphrase", "пароль", strings.Repeat("x", 4096)} {
		got, err := d.Derive(input, k)
		require.NoError(t, err)
		assert.Regexp(t, shape, got)
		assert.Len(t, got, TestParams.HexLength())
	}
}

func TestDerive_DoesNotModifyVault(t *testing.T) {
	d := newTestDeriver(t, TestParams)
	k := newKeeper(t, "pepper123")

	_, err := d.Derive("myphrase", k)
	require.NoError(t, err)

	v, err := k.Vault()
	require.NoError(t, err)
	p, err := v.Reveal()
	require.NoError(t, err)
	defer p.Wipe()
	assert.Equal(t, []byte("pepper123"), p.Bytes())
}

func TestDerive_Uninitialized(t *testing.T) {
	d := newTestDeriver(t, TestParams)

	got, err := d.Derive("myphrase", secret.NewKeeper())
	assert.ErrorIs(t, err, secret.ErrVaultUninitialized)
	assert.Empty(t, got)
}

func TestDerive_ProviderErrorPassedThrough(t *testing.T) {
	d := newTestDeriver(t, TestParams)
	boom := errors.New("boom")

	_, err := d.Derive("myphrase", failingProvider{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestDerive_ShortPepper(t *testing.T) {
	d := newTestDeriver(t, TestParams)

	_, err := d.Derive("myphrase", newKeeper(t, "short"))
	var pe *ParameterError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "pepper length", pe.Param)
	assert.Equal(t, "5", pe.Value)
	assert.NotContains(t, err.Error(), "short")
}

func TestDerive_ErrorsNeverContainSecrets(t *testing.T) {
	d := newTestDeriver(t, TestParams)

	_, err := d.Derive("hunter2-phrase", newKeeper(t, "tiny"))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "hunter2-phrase")
	assert.NotContains(t, err.Error(), "tiny")
}

func TestNewPasswordDeriver_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		param  string
	}{
		{"zero iterations", Params{Memory: 64, Iterations: 0, Parallelism: 1, KeyLength: 32}, "iterations"},
		{"zero parallelism", Params{Memory: 64, Iterations: 1, Parallelism: 0, KeyLength: 32}, "parallelism"},
		{"memory below 8 per lane", Params{Memory: 15, Iterations: 1, Parallelism: 2, KeyLength: 32}, "memory"},
		{"short key", Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 3}, "key length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewPasswordDeriver(tt.params)
			assert.Nil(t, d)
			var pe *ParameterError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.param, pe.Param)
		})
	}
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, DefaultParams.Validate())
	assert.NoError(t, TestParams.Validate())
	assert.NoError(t, Params{Memory: 16, Iterations: 1, Parallelism: 2, KeyLength: 4}.Validate())
	assert.Equal(t, 128, DefaultParams.HexLength())
}

func TestDerive_PanicBecomesDerivationError(t *testing.T) {
	// Params that bypass NewPasswordDeriver validation make argon2 panic.
	d := &PasswordDeriver{params: Params{Memory: 64, Iterations: 0, Parallelism: 1, KeyLength: 32}}

	_, err := d.Derive("myphrase", newKeeper(t, "pepper123"))
	var de *DerivationError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, StageHash, de.Stage)
}

func TestDerive_DestroyedVault(t *testing.T) {
	d := newTestDeriver(t, TestParams)
	v, err := secret.NewVault([]byte("pepper123"))
	require.NoError(t, err)
	v.Destroy()

	_, err = d.Derive("myphrase", vaultProvider{v})
	var de *DerivationError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, StageReveal, de.Stage)
	assert.ErrorIs(t, err, secret.ErrVaultDestroyed)
}

type vaultProvider struct{ v *secret.Vault }

func (p vaultProvider) Vault() (*secret.Vault, error) { return p.v, nil }

func TestDeriveBytes_MatchesDerive(t *testing.T) {
	d := newTestDeriver(t, TestParams)
	k := newKeeper(t, "pepper123")

	raw, err := d.DeriveBytes("myphrase", k)
	require.NoError(t, err)
	require.Len(t, raw, int(TestParams.KeyLength))

	encoded, err := d.Derive("myphrase", k)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(raw), encoded)
}
