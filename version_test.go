package varconf_test

import (
	"testing"

	"github.com/0xalexb/varconf"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", varconf.Version)
	require.Equal(t, "none", varconf.Commit)
	require.Equal(t, "unknown", varconf.CompiledAt)
}
