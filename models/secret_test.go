package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret_Redaction(t *testing.T) {
	s := Secret("hunter2")

	for _, verb := range []string{"%s", "%v", "%+v", "%#v", "%q", "%x"} {
		t.Run(verb, func(t *testing.T) {
			assert.Equal(t, Redacted, fmt.Sprintf(verb, s))
		})
	}

	assert.Equal(t, "hunter2", s.Reveal())
	assert.False(t, s.IsEmpty())
	assert.True(t, Secret("").IsEmpty())
}

func TestSecret_JSONInsideStruct(t *testing.T) {
	b, err := json.Marshal(PlainEntry{Title: "GitHub", Secret: "hunter2"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hunter2")
	assert.Contains(t, string(b), Redacted)
}

func TestSecret_Zerolog(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	log.Info().Object("secret", Secret("hunter2")).Msg("test")

	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), `"len":7`)
}

func TestCredentials_Wire(t *testing.T) {
	c := Credentials{Email: "a@b.c", Password: "pw"}

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"pw"`)

	b, err = json.Marshal(c.Wire())
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c","password":"pw"}`, string(b))
}

func TestGeneratedPassword_UnmarshalJSON(t *testing.T) {
	var g GeneratedPassword
	require.NoError(t, json.Unmarshal([]byte(`{"password":"Xy9!abcd"}`), &g))
	assert.Equal(t, "Xy9!abcd", g.Password.Reveal())
}

func TestParseEntryField(t *testing.T) {
	f, err := ParseEntryField("notes")
	require.NoError(t, err)
	assert.Equal(t, FieldNotes, f)

	_, err = ParseEntryField("color")
	assert.Error(t, err)
}
