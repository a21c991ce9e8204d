// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-01", "3f2a9c1")

	assert.Equal(t, "v1.2.0 3f2a9c1 (2026-10-01)", info.String())
	assert.Equal(t, "v1.2.0 3f2a9c1 (2026-10-01)", fmt.Sprint(info))
}

func TestAppBuildInfo_MissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, Unknown, info.BuildVersion())
	assert.Equal(t, Unknown, info.BuildDate())
	assert.Equal(t, Unknown, info.BuildCommit())
	assert.Equal(t, "N/A N/A (N/A)", info.String())
}
