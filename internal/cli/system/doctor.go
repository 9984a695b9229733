package system

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/culturepulse/internal/cli"
	"github.com/julianstephens/culturepulse/internal/config"
	"github.com/julianstephens/culturepulse/internal/keyring"
)

const probeTimeout = 10 * time.Second

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false

	// Check 1: endpoint configured (warning only, the widget still runs)
	endpointConfigured := ctx.Sheet.Configured()
	if endpointConfigured {
		ctx.Printf("✓ Sheet endpoint configured: OK\n")
	} else {
		ctx.Printf("⚠ Sheet endpoint configured: WARNING\n")
		ctx.Printf("   No endpoint set; feedback will not be saved. Set CULTUREPULSE_ENDPOINT or --endpoint.\n")
	}

	// Check 2: endpoint reachable
	if endpointConfigured {
		if err := checkEndpointReachable(ctx); err != nil {
			ctx.Printf("❌ Sheet endpoint reachable: FAIL\n")
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			ctx.Printf("✓ Sheet endpoint reachable: OK\n")
		}
	} else {
		ctx.Printf("⊘ Sheet endpoint reachable: SKIPPED (endpoint not configured)\n")
	}

	// Check 3: API key (warning only)
	if ctx.Config.APIKey == "" {
		ctx.Printf("⚠ Gemini API key: WARNING\n")
		ctx.Printf("   No key found; action plans cannot be generated.\n")
	} else {
		ctx.Printf("✓ Gemini API key: OK (from %s)\n", ctx.Config.APIKeySource)
	}

	// Check 4: keyring (warning only)
	if keyring.IsAvailable() {
		ctx.Printf("✓ OS keyring: OK\n")
	} else {
		ctx.Printf("⚠ OS keyring: WARNING\n")
		ctx.Printf("   %v\n", keyring.ErrKeyringUnavailable)
	}

	// Check 5: clock sanity, submissions are stamped with local time
	if err := checkClock(time.Now()); err != nil {
		ctx.Printf("❌ Clock: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Clock: OK\n")
	}

	// Check 6: config file parses
	if _, err := config.Load(ctx.ConfigPath); err != nil {
		ctx.Printf("❌ Config file: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Config file: OK\n")
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkEndpointReachable(ctx *cli.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx.Ctx, probeTimeout)
	defer cancel()
	return ctx.Sheet.Probe(probeCtx)
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
