package main

import (
	"bytes"
	"testing"

	"coach/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "login", "stats", "activities", "brief", "token"}, names)
}

func TestBriefCommand_Flags(t *testing.T) {
	cmd := newBriefCommand()

	require.NoError(t, cmd.ParseFlags([]string{"--days", "14", "--publish"}))

	days, err := cmd.Flags().GetInt("days")
	require.NoError(t, err)
	assert.Equal(t, 14, days)

	publish, err := cmd.Flags().GetBool("publish")
	require.NoError(t, err)
	assert.True(t, publish)
}

func TestCheckDays(t *testing.T) {
	assert.NoError(t, checkDays(0))
	assert.NoError(t, checkDays(1))
	assert.NoError(t, checkDays(maxDays))
	assert.Error(t, checkDays(-1))
	assert.Error(t, checkDays(maxDays+1))

	err := checkDays(-1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 (default window) or 1..90")
}

func TestWindowDays(t *testing.T) {
	cfg := &config.Config{Garmin: &config.GarminConfig{RecentDays: 7}}

	assert.Equal(t, 7, windowDays(0, cfg))
	assert.Equal(t, 30, windowDays(30, cfg))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeJSON(&buf, map[string]string{"event_id": "evt-1"}))

	assert.JSONEq(t, `{"event_id":"evt-1"}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"event_id\"")
}
