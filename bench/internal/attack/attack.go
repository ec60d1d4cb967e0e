package attack

import (
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL     string
	APIKey      string
	Keys        []string
	Rate        int
	Duration    time.Duration
	CreateRatio float64
	Type        string
}

func Run(cfg *Config) error {
	var targeter vegeta.Targeter

	createTarget, err := CreateTargeter(cfg.BaseURL, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to build create targeter: %w", err)
	}

	switch cfg.Type {
	case "create":
		targeter = createTarget
	case "redirect":
		if len(cfg.Keys) == 0 {
			return fmt.Errorf("redirect attack requires seeded keys")
		}
		targeter = RedirectTargeter(cfg.BaseURL, cfg.Keys)
	case "mixed":
		if len(cfg.Keys) == 0 {
			return fmt.Errorf("mixed attack requires seeded keys")
		}
		targeter = MixedTargeter(createTarget, RedirectTargeter(cfg.BaseURL, cfg.Keys), cfg.CreateRatio)
	default:
		return fmt.Errorf("unknown attack type: %s", cfg.Type)
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(10000),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
	)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
