package orchestrator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acorn-router/acorn/orchestrator"
)

func TestLoadConfig_EmptyReaderReturnsDefaults(t *testing.T) {
	cfg, err := orchestrator.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, orchestrator.DefaultConfig(), cfg)
}

func TestLoadConfig_PartialDocumentOverridesOnlyNamedFields(t *testing.T) {
	cfg, err := orchestrator.LoadConfig(strings.NewReader("max_iterations: 50\n"))
	require.NoError(t, err)
	require.Equal(t, 50, cfg.MaxIterations)
	require.Equal(t, orchestrator.DefaultConfig().DRCFreeThreshold, cfg.DRCFreeThreshold)
}

func TestLoadConfig_InvalidYAMLErrors(t *testing.T) {
	_, err := orchestrator.LoadConfig(strings.NewReader("max_iterations: [this is not an int\n"))
	require.Error(t, err)
}
