package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"parkview/internal/auth"
	"parkview/internal/config"
	"parkview/internal/lib/logger/handlers/slogpretty"
	"parkview/internal/lib/logger/sl"
	"parkview/internal/render"
	"parkview/internal/store"
	"parkview/internal/upark"
	"parkview/internal/view"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	modeFlag := flag.String("mode", "all", "which bookings to show: all|in-progress|expired")
	detailsFlag := flag.Int("details", -1, "show details for the given row index")
	deleteFlag := flag.Bool("delete", false, "with -details: ask to delete the booking")
	flag.Parse()

	godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log = log.With(slog.String("view_id", uuid.NewString()))

	log.Info("starting parkview", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	mode, err := view.ParseMode(*modeFlag)
	if err != nil {
		log.Error("invalid mode", sl.Err(err))
		os.Exit(1)
	}

	identity, err := auth.IdentityFromToken(cfg.Auth.Token)
	if err != nil {
		log.Error("cannot read session token", sl.Err(err))
		os.Exit(1)
	}

	loc := time.Local
	if cfg.Display.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Display.Timezone)
		if err != nil {
			log.Error("invalid display timezone", sl.Err(err))
			os.Exit(1)
		}
	}

	session := upark.NewSession(cfg.Server.BaseURL, cfg.Auth.Token, cfg.Server.Timeout)
	st := store.New(log, session)

	caller := view.Caller{ID: identity.UserID, Admin: identity.Admin}
	assembler := view.NewAssembler(log, st, mode, caller, loc)

	ctx := context.Background()

	v, err := assembler.Assemble(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load bookings")
		os.Exit(1)
	}

	if *detailsFlag < 0 {
		if err := render.Table(os.Stdout, v); err != nil {
			log.Error("failed to render table", sl.Err(err))
			os.Exit(1)
		}
		return
	}

	if err := runDetails(ctx, log, v, st, assembler, caller, mode, *detailsFlag, *deleteFlag); err != nil {
		log.Error("details flow failed", sl.Err(err))
		os.Exit(1)
	}
}

// runDetails drives the detail workflow for one row: show the booking, and
// when asked, walk the confirm/delete states. After a successful delete the
// table is re-assembled from the server and printed again.
func runDetails(ctx context.Context, log *slog.Logger, v *view.View, st *store.Store,
	assembler *view.Assembler, caller view.Caller, mode view.Mode, row int, del bool) error {

	details, ok := v.Details(row)
	if !ok {
		return fmt.Errorf("no such row: %d", row)
	}

	render.Details(os.Stdout, details)

	booking, _ := v.Booking(row)
	wf := view.NewDetailWorkflow(log, st, booking, caller.Admin, mode == view.ModeExpired)

	if !del || !wf.CanDelete() {
		return wf.Close()
	}

	if err := wf.RequestDelete(); err != nil {
		return err
	}

	fmt.Print("Are you sure to delete this booking? [y/N] ")

	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		if err := wf.CancelDelete(); err != nil {
			return err
		}
		return wf.Close()
	}

	msg, err := wf.ConfirmDelete(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return wf.Close()
	}

	fmt.Println("Server response:", msg)

	if wf.RefreshRequired() {
		refreshed, err := assembler.Assemble(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not reload bookings")
			return err
		}
		return render.Table(os.Stdout, refreshed)
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
