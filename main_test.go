package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/swap-tracking/internal/config"
	"github.com/iburimskiy/swap-tracking/internal/trial"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAnswerKey(t *testing.T) {
	trials := []trial.Trial{trial.DefaultTrials()[1], trial.DefaultTrials()[2]}

	// trial 1: [a b c] -(2 3)-> [a c b] -(1 2)-> [c a b]
	// trial 2 continues from there: -(1 2)-> [a c b] -(2 3)-> [a b c] -(1 3)-> [c b a]
	carried := answerKey(trials, 3, false)
	assert.Equal(t, [][]int{{2, 0, 1}, {2, 1, 0}}, carried)

	reset := answerKey(trials, 3, true)
	assert.Equal(t, [][]int{{2, 0, 1}, {0, 2, 1}}, reset)
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.RunE(cmd, args)
	return out.String(), err
}

func TestInitValidateTrials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")

	out, err := execute(t, &cobra.Command{RunE: initExperiment}, path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = execute(t, &cobra.Command{RunE: initExperiment}, path)
	assert.Error(t, err)

	out, err = execute(t, &cobra.Command{RunE: validateExperiment}, path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 trials, 3 tokens, session [1 2]")

	out, err = execute(t, &cobra.Command{RunE: listTrials}, path)
	require.NoError(t, err)
	assert.Contains(t, out, "2<->3  1<->2")
	assert.Contains(t, out, "blue, red, green")
}

func TestValidateRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: [9]\n"), 0644))

	out, err := execute(t, &cobra.Command{RunE: validateExperiment}, path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, trial.ErrUnknownTrial)
	assert.Contains(t, out, "id 9")
}

func TestLoadExperiment_TrialOverride(t *testing.T) {
	defer func() { configFile, trialIDs = "", nil }()

	trialIDs = []int{3, 0}
	exp, err := loadExperiment()
	require.NoError(t, err)
	assert.Equal(t, trial.Selection{3, 0}, exp.Session)

	trialIDs = []int{8}
	_, err = loadExperiment()
	assert.ErrorIs(t, err, trial.ErrUnknownTrial)

	configFile = filepath.Join(t.TempDir(), "missing.yaml")
	trialIDs = nil
	_, err = loadExperiment()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
