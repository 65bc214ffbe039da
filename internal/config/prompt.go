package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	WorkDuration      int
	PauseDuration     int
	LongPauseDuration int
	LongPausePeriod   int
	Notify            bool
}

// WithPromptConfig returns an Option that configures the session settings
// via interactive prompts. Current values are preselected.
func WithPromptConfig() Option {
	return func(c *Config) error {
		opts := PromptOptions{
			WorkDuration:      int(c.Session.WorkDuration / time.Minute),
			PauseDuration:     int(c.Session.PauseDuration / time.Minute),
			LongPauseDuration: int(c.Session.LongPauseDuration / time.Minute),
			LongPausePeriod:   c.Session.LongPausePeriod,
			Notify:            c.Hooks.Notify,
		}

		if err := promptUser(&opts); err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func minuteOptions(current int, values ...int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(values)+1)
	found := false

	for _, v := range values {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d minutes", v), v))
		found = found || v == current
	}

	if !found && current > 0 {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d minutes", current), current))
	}

	return opts
}

// promptUser handles the interactive configuration process.
func promptUser(opts *PromptOptions) error {
	_ = putils.BulletListFromString(`Follow the prompts below to configure jtravail.
Select your preferred value, or press ENTER to keep the current one.
Edit the config file with 'jtravail edit-config' to change the status format or hook command.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work duration").
				Options(minuteOptions(opts.WorkDuration, 25, 35, 50, 60, 90)...).
				Value(&opts.WorkDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Pause duration").
				Options(minuteOptions(opts.PauseDuration, 5, 10, 15, 20)...).
				Value(&opts.PauseDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Long pause duration").
				Options(minuteOptions(opts.LongPauseDuration, 15, 20, 30, 45)...).
				Value(&opts.LongPauseDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work sessions before a long pause").
				Options(
					huh.NewOption("2 sessions", 2),
					huh.NewOption("3 sessions", 3),
					huh.NewOption("4 sessions", 4),
					huh.NewOption("6 sessions", 6),
					huh.NewOption("8 sessions", 8),
				).
				Value(&opts.LongPausePeriod),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification on each transition?").
				Value(&opts.Notify),
		),
	)

	pterm.Println()

	if err := form.Run(); err != nil {
		return fmt.Errorf("form interaction failed: %w", err)
	}

	return nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Session.WorkDuration = time.Duration(opts.WorkDuration) * time.Minute
	c.Session.PauseDuration = time.Duration(opts.PauseDuration) * time.Minute
	c.Session.LongPauseDuration = time.Duration(opts.LongPauseDuration) * time.Minute
	c.Session.LongPausePeriod = opts.LongPausePeriod
	c.Hooks.Notify = opts.Notify
}
