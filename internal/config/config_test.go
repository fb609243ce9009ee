package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedEmailDomain(t *testing.T) {
	cfg := &Config{}
	cfg.Auth.AllowedEmailDomains = []string{"srmist.edu.in"}

	tests := []struct {
		email string
		want  bool
	}{
		{"student@srmist.edu.in", true},
		{"student@SRMIST.EDU.IN", true},
		{"student@mail.srmist.edu.in", true},
		{"student@gmail.com", false},
		{"student@notsrmist.edu.in", false},
		{"no-at-sign", false},
		{"trailing@", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.IsAllowedEmailDomain(tt.email))
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ALLOWED_EMAIL_DOMAINS", "campus.edu, college.ac.in")

	cfg, err := LoadConfig("does-not-exist.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "thequad", cfg.Database.DBName)
	assert.Equal(t, []string{"campus.edu", "college.ac.in"}, cfg.Auth.AllowedEmailDomains)
	assert.True(t, cfg.IsAllowedEmailDomain("a@campus.edu"))
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ALLOWED_EMAIL_DOMAINS", "campus.edu")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")

	cfg, err := LoadConfig("does-not-exist.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
}
