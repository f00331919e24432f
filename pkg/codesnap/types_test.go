package codesnap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/codesnap/pkg/codesnap"
)

func TestNewExtensionSet_Normalizes(t *testing.T) {
	set := codesnap.NewExtensionSet(".JS", "ts", " .css ", "", ".", "Json")

	assert.Equal(t, []string{".css", ".js", ".json", ".ts"}, set.Sorted())
}

func TestExtensionSet_Matches(t *testing.T) {
	set := codesnap.NewExtensionSet(".js", ".tsx")

	tests := []struct {
		name string
		want bool
	}{
		{"a.js", true},
		{"A.JS", true},
		{"component.TsX", true},
		{"b.txt", false},
		{"image.png", false},
		{"Makefile", false},
		{"archive.tar.js", true},
		{"noext.", false},
		{".js", false},
		{"..js", false},
		{".eslintrc.js", true},
		{"sub/.js", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Matches(tt.name))
		})
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := codesnap.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, codesnap.DefaultOutputPath, cfg.Output)
	assert.Equal(t, codesnap.DecodeIgnore, cfg.Decode)
	assert.Equal(t, codesnap.WalkSkip, cfg.OnWalkError)
	assert.Equal(t, []string{".css", ".js", ".json", ".jsx", ".ts", ".tsx"}, cfg.Extensions.Sorted())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*codesnap.Config)
	}{
		{"empty root", func(c *codesnap.Config) { c.Root = "" }},
		{"blank output", func(c *codesnap.Config) { c.Output = "  " }},
		{"no extensions", func(c *codesnap.Config) { c.Extensions = codesnap.NewExtensionSet() }},
		{"unnormalized extension", func(c *codesnap.Config) { c.Extensions = codesnap.ExtensionSet{"JS": {}} }},
		{"unknown decode policy", func(c *codesnap.Config) { c.Decode = "lenient" }},
		{"unknown walk policy", func(c *codesnap.Config) { c.OnWalkError = "retry" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := codesnap.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, codesnap.ErrInvalidConfig), "expected ErrInvalidConfig, got: %v", err)
		})
	}
}

func TestParseDecodePolicy(t *testing.T) {
	for in, want := range map[string]codesnap.DecodePolicy{
		"":        codesnap.DecodeIgnore,
		"ignore":  codesnap.DecodeIgnore,
		"REPLACE": codesnap.DecodeReplace,
		" strict": codesnap.DecodeStrict,
	} {
		got, err := codesnap.ParseDecodePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := codesnap.ParseDecodePolicy("utf-16")
	assert.ErrorIs(t, err, codesnap.ErrInvalidConfig)
}

func TestParseWalkErrorPolicy(t *testing.T) {
	got, err := codesnap.ParseWalkErrorPolicy("")
	require.NoError(t, err)
	assert.Equal(t, codesnap.WalkSkip, got)

	got, err = codesnap.ParseWalkErrorPolicy("Abort")
	require.NoError(t, err)
	assert.Equal(t, codesnap.WalkAbort, got)

	_, err = codesnap.ParseWalkErrorPolicy("ignore")
	assert.ErrorIs(t, err, codesnap.ErrInvalidConfig)
}
