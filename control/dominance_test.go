package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acorn-router/acorn/control"
)

func TestDominanceTarget_NoDRCCellsAssessesBoth(t *testing.T) {
	target := control.DominanceTarget(control.DRCShapeCounts{})
	require.True(t, target.AssessTrace)
	require.True(t, target.AssessVia)
}

func TestDominanceTarget_ViaDominatesAssessesViaOnly(t *testing.T) {
	target := control.DominanceTarget(control.DRCShapeCounts{ViaVia: 9, TraceTrace: 1})
	require.False(t, target.AssessTrace)
	require.True(t, target.AssessVia)
}

func TestDominanceTarget_TraceDominatesAssessesTraceOnly(t *testing.T) {
	target := control.DominanceTarget(control.DRCShapeCounts{TraceTrace: 9, ViaVia: 1})
	require.True(t, target.AssessTrace)
	require.False(t, target.AssessVia)
}

func TestDominanceTarget_NoDominanceAssessesBoth(t *testing.T) {
	target := control.DominanceTarget(control.DRCShapeCounts{TraceTrace: 4, ViaVia: 4, TraceVia: 2})
	require.True(t, target.AssessTrace)
	require.True(t, target.AssessVia)
}

func TestDominanceTarget_ExactlyEightyPercentIsDominance(t *testing.T) {
	target := control.DominanceTarget(control.DRCShapeCounts{ViaVia: 8, TraceTrace: 2})
	require.False(t, target.AssessTrace)
	require.True(t, target.AssessVia)
}
