package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acorn-router/acorn/congestion"
	"github.com/acorn-router/acorn/control"
)

func TestLadderState_Assess_LowestRungUnmeasuredNeighbor(t *testing.T) {
	ladder := &control.LadderState{}
	ladder.Metrics[0] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.3}

	d := ladder.Assess() // #1
	require.Equal(t, control.Increase, d)
	require.Equal(t, 1, ladder.NumChanges)
}

func TestLadderState_Assess_LowestRungHigherIsBetter(t *testing.T) {
	ladder := &control.LadderState{}
	ladder.Metrics[0] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.3}
	ladder.Metrics[1] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.9}

	d := ladder.Assess() // #2: cur worse than higher
	require.Equal(t, control.Increase, d)
}

func TestLadderState_Assess_LowestRungCurrentIsBetter(t *testing.T) {
	ladder := &control.LadderState{}
	ladder.Metrics[0] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.9}
	ladder.Metrics[1] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.3}

	d := ladder.Assess() // #3
	require.Equal(t, control.NoChange, d)
}

func TestLadderState_Assess_HighestRungLowerUnmeasured(t *testing.T) {
	ladder := &control.LadderState{CurrentIndex: congestion.SensitivityLadderLen - 1}
	ladder.Metrics[ladder.CurrentIndex] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.3}

	d := ladder.Assess() // #23
	require.Equal(t, control.Decrease, d)
	require.Equal(t, 1, ladder.NumReductions)
}

func TestLadderState_Assess_HighestRungCurrentIsBetterThanLower(t *testing.T) {
	last := congestion.SensitivityLadderLen - 1
	ladder := &control.LadderState{CurrentIndex: last}
	ladder.Metrics[last] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.9}
	ladder.Metrics[last-1] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.5}

	d := ladder.Assess() // #25
	require.Equal(t, control.NoChange, d)
	require.Equal(t, 1, ladder.NumStableRoutingMetrics)
}

func TestLadderState_Assess_IntermediateBothNeighborsUnmeasured(t *testing.T) {
	ladder := &control.LadderState{CurrentIndex: 2}
	ladder.Metrics[2] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.3}

	d := ladder.Assess() // #5
	require.Equal(t, control.Increase, d)
}

func TestLadderState_Assess_IntermediateBetterThanBothNeighbors(t *testing.T) {
	ladder := &control.LadderState{CurrentIndex: 2}
	ladder.Metrics[1] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.3}
	ladder.Metrics[2] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.9}
	ladder.Metrics[3] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.3}

	d := ladder.Assess() // #18
	require.Equal(t, control.NoChange, d)
	require.Equal(t, 1, ladder.NumStableRoutingMetrics)
}

func TestLadderState_Assess_IntermediateWorseThanBothNeighborsAndHigherBetterThanLower(t *testing.T) {
	ladder := &control.LadderState{CurrentIndex: 2}
	ladder.Metrics[1] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.5}
	ladder.Metrics[2] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.2}
	ladder.Metrics[3] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.9}

	d := ladder.Assess() // #13
	require.Equal(t, control.Increase, d)
}

func TestLadderState_Assess_IntermediateWorseThanBothAndLowerBetterThanHigher(t *testing.T) {
	ladder := &control.LadderState{CurrentIndex: 2}
	ladder.Metrics[1] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.9}
	ladder.Metrics[2] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.2}
	ladder.Metrics[3] = control.SensitivityMetrics{IterationMeasured: 5, FractionIterationsWithoutDRCs: 0.5}

	d := ladder.Assess() // #12
	require.Equal(t, control.Decrease, d)
	require.Equal(t, 1, ladder.NumReductions)
}

func TestLadderState_Step_ClampsAtEnds(t *testing.T) {
	ladder := &control.LadderState{CurrentIndex: 0}
	ladder.Step(control.Decrease)
	require.Equal(t, 0, ladder.CurrentIndex)

	ladder.CurrentIndex = congestion.SensitivityLadderLen - 1
	ladder.Step(control.Increase)
	require.Equal(t, congestion.SensitivityLadderLen-1, ladder.CurrentIndex)
}

func TestLadderState_InvalidateStale(t *testing.T) {
	ladder := &control.LadderState{}
	ladder.Metrics[0] = control.SensitivityMetrics{IterationMeasured: 10, FractionIterationsWithoutDRCs: 0.5}

	ladder.InvalidateStale(10 + 12*20 - 1)
	require.True(t, ladder.Metrics[0].Measured())

	ladder.InvalidateStale(10 + 12*20)
	require.False(t, ladder.Metrics[0].Measured())
}

func TestLadderState_RecordMeasurement(t *testing.T) {
	ladder := &control.LadderState{CurrentIndex: 1}
	ladder.RecordMeasurement(42, control.SensitivityMetrics{FractionIterationsWithoutDRCs: 0.7})

	require.True(t, ladder.Metrics[1].Measured())
	require.Equal(t, 42, ladder.Metrics[1].IterationMeasured)
	require.Equal(t, 0.7, ladder.Metrics[1].FractionIterationsWithoutDRCs)
}
