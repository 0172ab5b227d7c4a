package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokeroll/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokeroll/internal/errors"
	"github.com/KirkDiggler/pokeroll/internal/logging"
	"github.com/KirkDiggler/pokeroll/internal/orchestrators/pokedex"
)

// runConfig holds the seams tests replace. The zero value talks to the real API.
type runConfig struct {
	BaseURL    string
	DiceRoller dice.Roller
	Service    pokedex.Service

	timeout  time.Duration
	logLevel string
}

func newRootCmd(rc *runConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokeroll",
		Short: "Print a random first generation pokemon",
		Long: `pokeroll draws a random pokemon from the first generation (1-151),
looks it up on PokeAPI and prints its default front sprite URL followed by
its Korean name.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, rc)
		},
	}

	cmd.Flags().DurationVar(&rc.timeout, "timeout", pokeapi.DefaultHTTPTimeout, "per request timeout")
	cmd.Flags().StringVar(&rc.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, rc *runConfig) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err := logging.NewLogger(&logging.Config{
		Level:  rc.logLevel,
		Writer: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	svc, err := newService(rc)
	if err != nil {
		return err
	}

	out, err := svc.RandomEntry(ctx, &pokedex.RandomEntryInput{})
	if err != nil {
		return err
	}

	return printEntry(cmd.OutOrStdout(), out.Entry)
}

func newService(rc *runConfig) (pokedex.Service, error) {
	if rc.Service != nil {
		return rc.Service, nil
	}

	if rc.timeout <= 0 {
		return nil, errors.InvalidArgumentf("timeout must be positive, got %s", rc.timeout)
	}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     rc.BaseURL,
		HTTPTimeout: rc.timeout,
	})
	if err != nil {
		return nil, err
	}

	return pokedex.NewOrchestrator(&pokedex.Config{
		Client:     client,
		DiceRoller: rc.DiceRoller,
	})
}

// printEntry writes the sprite URL and the localized name, one per line
func printEntry(w io.Writer, entry *pokedex.Entry) error {
	if entry == nil {
		return errors.Internal("no entry to print")
	}

	if _, err := fmt.Fprintln(w, entry.SpriteURL); err != nil {
		return errors.Wrap(err, "failed to write sprite url")
	}
	if _, err := fmt.Fprintln(w, entry.LocalizedName); err != nil {
		return errors.Wrap(err, "failed to write localized name")
	}

	return nil
}
