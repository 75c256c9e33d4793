package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigOk(t *testing.T) {
	text := `listen = "0.0.0.0:9000"
		http_timeout = "15s"
		user_agent = "abstract-tools/2.0"`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, conf.GetListen(), "0.0.0.0:9000")
	assert.Equal(t, conf.GetHTTPTimeout(), 15*time.Second)
	assert.Equal(t, conf.GetUserAgent(), "abstract-tools/2.0")
}

func TestConfigDefaults(t *testing.T) {
	conf, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, conf.GetListen(), DefaultListen)
	assert.Equal(t, conf.GetHTTPTimeout(), DefaultHTTPTimeout)
	assert.Equal(t, conf.GetUserAgent(), "")
}

func TestDefaultMatchesEmptyFile(t *testing.T) {
	parsed, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)

	assert.Equal(t, parsed, Default())
}

func TestIncorrectListen(t *testing.T) {
	text := `listen = "localhost"`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestIncorrectTimeout(t *testing.T) {
	text := `http_timeout = "fast"`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestBrokenTOML(t *testing.T) {
	_, err := Parse(strings.NewReader("listen = "))
	assert.NotNil(t, err)
}
