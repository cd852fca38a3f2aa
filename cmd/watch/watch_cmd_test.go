package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_Defaults(t *testing.T) {
	cmd := NewCommand()

	port, err := cmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 0, port)

	format, err := cmd.Flags().GetString("format")
	require.NoError(t, err)
	assert.Equal(t, "dot", format)
}

func TestNewCommand_RequiresEntry(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs(nil)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.Error(t, cmd.Execute())
}

func TestNewCommand_RejectsUnknownFormat(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"index.ts", "--format", "svg"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
