package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_defaults(t *testing.T) {
	conf, err := NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}
	assert.Equal(t, "TC Portal", conf.AppName)
	assert.Equal(t, 30, conf.TransactionFee)
	assert.Equal(t, "tcportal_session", conf.Web.SessionCookie)
	assert.NotEmpty(t, conf.API.BaseURL)
	assert.Greater(t, int64(conf.API.Timeout), int64(0))
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Rahim", CleanString("  Rahim\t"))
	assert.Equal(t, "rahim@test.tc", CleanString(" Rahim@Test.TC ", true))
}
