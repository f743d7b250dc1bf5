package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommand_FormatFlag(t *testing.T) {
	cmd := newRulesCommand()
	flag := cmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
}

func TestRulesCommand_TableOutput(t *testing.T) {
	cmd := newRulesCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "JS001")
	assert.Contains(t, out, "prefer-const")
	assert.Contains(t, out, "JS010")
	assert.Contains(t, out, "xhr-to-fetch")
	assert.Contains(t, out, "rules")
}

func TestRulesCommand_JSONOutput(t *testing.T) {
	cmd := newRulesCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var infos []ruleInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.NotEmpty(t, infos)

	ids := make(map[string]bool, len(infos))
	for _, info := range infos {
		ids[info.ID] = true
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Category)
		assert.NotEmpty(t, info.Severity)
	}
	assert.True(t, ids["JS001"])
	assert.True(t, ids["JS020"])
	assert.True(t, ids["JS030"])
}
