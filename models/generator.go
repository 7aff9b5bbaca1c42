// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// GeneratorSettings is the request body of the server-side password
// generator. Defaults mirror the server's own defaults.
type GeneratorSettings struct {
	Length           int  `json:"length"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeLowercase bool `json:"include_lowercase"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSymbols   bool `json:"include_symbols"`
	ExcludeSimilar   bool `json:"exclude_similar"`
}

// DefaultGeneratorSettings returns a 16 character, all classes request.
func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{
		Length:           16,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

// GeneratedPassword is the server-side generator response.
type GeneratedPassword struct {
	Password Secret `json:"-"`
}

// generatedPasswordWire is the JSON shape returned by the server.
type generatedPasswordWire struct {
	Password string `json:"password"`
}

// UnmarshalJSON reads {"password": "..."} into the redacting Secret type.
func (g *GeneratedPassword) UnmarshalJSON(b []byte) error {
	var w generatedPasswordWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	g.Password = Secret(w.Password)
	return nil
}
