package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTable(t *testing.T) {
	tests := []struct {
		mode string
		in   string
		want string
	}{
		{"lower", "Hello World", "hello world"},
		{"upper", "Hello World", "HELLO WORLD"},
		{"title", "the quick BROWN fox", "The Quick Brown Fox"},
		{"sentence", "hello world. how are you? fine!", "Hello world. How are you? Fine!"},
		{"camel", "hello world example", "helloWorldExample"},
		{"camel", "already_snake_case", "alreadySnakeCase"},
		{"pascal", "hello world example", "HelloWorldExample"},
		{"pascal", "kebab-case-input", "KebabCaseInput"},
		{"snake", "Hello World Example", "hello_world_example"},
		{"snake", "someCamelValue", "some_camel_value"},
		{"constant", "hello world", "HELLO_WORLD"},
		{"kebab", "Hello World Example", "hello-world-example"},
		{"alternating", "hello", "hElLo"},
		{"inverse", "Hello World", "hELLO wORLD"},
	}
	for _, tt := range tests {
		got, err := Convert(tt.mode, tt.in)
		require.NoError(t, err, "%s(%q)", tt.mode, tt.in)
		assert.Equal(t, tt.want, got, "%s(%q)", tt.mode, tt.in)
	}
}

func TestConvertUnknownMode(t *testing.T) {
	_, err := Convert("sarcasm", "whatever")
	assert.Error(t, err)
}

func TestTokenizeAcronyms(t *testing.T) {
	assert.Equal(t, "parse_http_response", Snake("parseHTTPResponse"))
}

func TestConvertEmpty(t *testing.T) {
	for _, mode := range Modes() {
		got, err := Convert(mode, "")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
}

func TestAlternatingSkipsNonLetters(t *testing.T) {
	assert.Equal(t, "a1B2c", Alternating("A1B2C"))
}
