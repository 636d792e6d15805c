package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/swap-tracking/internal/config"
	"github.com/iburimskiy/swap-tracking/internal/cue"
	"github.com/iburimskiy/swap-tracking/internal/engine"
	"github.com/iburimskiy/swap-tracking/internal/game"
)

var (
	configFile string
	pickFile   bool
	trialIDs   []int
	cuesOn     bool
	volume     float64
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "swaptrack",
		Short:        "run the swap-tracking memory experiment",
		SilenceUsage: true,
		RunE:         runExperiment,
	}
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "experiment file (yaml)")
	rootCmd.Flags().BoolVar(&pickFile, "pick", false, "choose the experiment file in a dialog")
	rootCmd.Flags().IntSliceVar(&trialIDs, "trials", nil, "override the session's trial ids, e.g. 1,2")
	rootCmd.Flags().BoolVar(&cuesOn, "cues", false, "play audio cues at trial start and guess prompt")
	rootCmd.Flags().Float64Var(&volume, "volume", -1, "cue volume, 0 is full scale, each -1 halves it")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "show the experimenter overlay")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check an experiment file",
		Args:  cobra.ExactArgs(1),
		RunE:  validateExperiment,
	}

	trialsCmd := &cobra.Command{
		Use:   "trials [file]",
		Short: "list the trial catalog, session and answer key",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listTrials,
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the default experiment to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  initExperiment,
	}

	rootCmd.AddCommand(validateCmd, trialsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadExperiment resolves the experiment from flags: dialog, file, or the
// built-in default.
func loadExperiment() (*config.Experiment, error) {
	path := configFile
	if pickFile {
		picked, err := zenity.SelectFile(
			zenity.Title("Open Experiment File"),
			zenity.FileFilters{{
				Name:     "Experiment",
				Patterns: []string{"*.yaml", "*.yml"},
			}},
		)
		switch {
		case errors.Is(err, zenity.ErrCanceled):
			log.Printf("[Main] file dialog canceled, using %q", path)
		case err != nil:
			return nil, err
		default:
			path = picked
		}
	}

	var (
		exp *config.Experiment
		err error
	)
	if path == "" {
		exp = config.Default()
	} else if exp, err = config.Load(path); err != nil {
		return nil, err
	}

	if len(trialIDs) > 0 {
		exp.Session = trialIDs
		if err := exp.Validate(); err != nil {
			return nil, err
		}
	}
	log.Printf("[Main] experiment loaded: %d trials in catalog, session %v", len(exp.Trials), exp.Session)
	return exp, nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	exp, err := loadExperiment()
	if err != nil {
		if pickFile {
			_ = zenity.Error(err.Error(), zenity.Title("Experiment error"), zenity.ErrorIcon)
		}
		return err
	}

	trials, err := exp.SessionTrials()
	if err != nil {
		return err
	}

	status := &game.StatusLine{}
	sessionOpts := []engine.Option{engine.WithStatus(status)}
	if cuesOn {
		player, err := cue.NewSpeakerPlayer(volume)
		if err != nil {
			log.Printf("[Main] Warning: audio cues disabled: %v", err)
		} else {
			sessionOpts = append(sessionOpts, engine.WithCues(player))
		}
	}

	session, err := engine.NewSession(trials, engine.NewTokenSet(exp.Layout()), exp.Options(), sessionOpts...)
	if err != nil {
		return err
	}

	g := game.New(session, status, game.Options{
		Width:      exp.Window.Width,
		Height:     exp.Window.Height,
		Background: config.MustColor(exp.Window.Background),
		Debug:      debug,
	})

	ebiten.SetWindowSize(exp.Window.Width, exp.Window.Height)
	ebiten.SetWindowTitle(exp.Window.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func validateExperiment(cmd *cobra.Command, args []string) error {
	exp, err := config.Load(args[0])
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("invalid: ")+err.Error())
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d trials, %d tokens, session %v\n",
		okStyle.Render("ok:"), len(exp.Trials), len(exp.Tokens.Colors), exp.Session)
	return nil
}

func initExperiment(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err == nil {
		return fmt.Errorf("%s already exists", args[0])
	}
	if err := config.Save(args[0], config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", okStyle.Render("ok:"), args[0])
	return nil
}
