// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		Mode      string `json:"mode"`
		PepperEnv string `json:"pepper_env"`
		EnvFile   string `json:"env_file"`
	} `json:"app,omitempty"`

	KDF struct {
		Memory      uint32 `json:"memory"`
		Iterations  uint32 `json:"iterations"`
		Parallelism uint8  `json:"parallelism"`
		KeyLength   uint32 `json:"key_length"`
	} `json:"kdf,omitempty"`

	Clipboard struct {
		ClearDelay Duration `json:"clear_delay"`
	} `json:"clipboard,omitempty"`

	Workers struct {
		MaxConcurrent int `json:"max_concurrent"`
	} `json:"workers,omitempty"`

	Log struct {
		Path  string `json:"path"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Mode:      jsonCfg.App.Mode,
			PepperEnv: jsonCfg.App.PepperEnv,
			EnvFile:   jsonCfg.App.EnvFile,
		},
		KDF: KDF{
			Memory:      jsonCfg.KDF.Memory,
			Iterations:  jsonCfg.KDF.Iterations,
			Parallelism: jsonCfg.KDF.Parallelism,
			KeyLength:   jsonCfg.KDF.KeyLength,
		},
		Clipboard: Clipboard{
			ClearDelay: time.Duration(jsonCfg.Clipboard.ClearDelay),
		},
		Workers: Workers{
			MaxConcurrent: jsonCfg.Workers.MaxConcurrent,
		},
		Log: Log{
			Path:  jsonCfg.Log.Path,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
