// Package client implements the ekamr command-line application: credential
// resolution, the submit/poll/print flow, and exit-code mapping.
package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/go-eka-mr/internal/adapter"
	"github.com/MKhiriev/go-eka-mr/internal/app"
	"github.com/MKhiriev/go-eka-mr/internal/config"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/internal/service"
	"github.com/MKhiriev/go-eka-mr/models"
)

// Exit codes of the ekamr binary.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130
)

type App struct {
	cfg  *config.ClientConfig
	api  adapter.DocumentAPI
	docs service.DocumentService

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) *App {
	api := adapter.NewHTTPDocumentAPI(cfg.API, log)
	docs := service.NewDocumentService(api, log)

	return &App{cfg: cfg, api: api, docs: docs, logger: log}
}

// Run executes the full CLI flow and returns the process exit code.
// Credentials have already been validated by the config layer; every error
// past that point is printed to stderr and mapped to [ExitError], except a
// user interrupt which maps to [ExitInterrupted].
func (a *App) Run(ctx context.Context) int {
	defer a.api.Close()

	err := a.run(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(os.Stderr, "\n%s\n", app.MsgInterrupted)
		return ExitInterrupted
	case errors.Is(err, service.ErrWaitTimeout):
		fmt.Fprintf(os.Stderr, "\nError: %s after %s\n", app.MsgProcessingTimedOut, a.cfg.Poll.Timeout)
		return ExitError
	case errors.Is(err, service.ErrProcessingFailed):
		fmt.Fprintf(os.Stderr, "\nError: %s\n", app.MsgProcessingFailed)
		return ExitError
	default:
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		return ExitError
	}
}

func (a *App) run(ctx context.Context) error {
	run := a.cfg.Run

	if !run.Quiet {
		fmt.Print("Authenticating... ")
	}
	if _, err := a.api.Login(ctx, a.cfg.Credentials); err != nil {
		if !run.Quiet {
			fmt.Println()
		}
		return fmt.Errorf("%s: %w", app.MsgAuthenticationFailed, err)
	}
	if !run.Quiet {
		fmt.Println(okMarkStyle.Render("✓"))
	}

	fileName := filepath.Base(run.File)
	if !run.Quiet {
		fmt.Printf("Processing document: %s... ", fileName)
	}
	submission, err := a.docs.Submit(ctx, run.File, run.DocType, models.Task(run.Task))
	if err != nil {
		if !run.Quiet {
			fmt.Println()
		}
		return err
	}
	if !run.Quiet {
		fmt.Println(okMarkStyle.Render("✓"))
		fmt.Printf("Document ID: %s\n", docIDStyle.Render(submission.DocumentID))
	}

	if run.CopyID {
		if err := clipboard.WriteAll(submission.DocumentID); err != nil {
			a.logger.Warn().Err(err).Msg("could not copy document id to clipboard")
		} else if !run.Quiet {
			fmt.Println(faintStyle.Render("(document ID copied to clipboard)"))
		}
	}

	if run.NoWait {
		return a.printSubmissionOnly(submission)
	}

	result, err := a.wait(ctx, fileName, submission.DocumentID)
	if err != nil {
		return err
	}

	printResult(os.Stdout, result, run.Verbose, run.JSON)
	return nil
}

// wait runs the polling loop with progress feedback appropriate for the
// output mode: a live spinner on a TTY, progress dots when piped, nothing in
// quiet mode.
func (a *App) wait(ctx context.Context, fileName, documentID string) (models.DocumentResult, error) {
	opts := service.WaitOptions{
		DocType:  a.cfg.Run.DocType,
		Interval: a.cfg.Poll.Interval,
		Timeout:  a.cfg.Poll.Timeout,
	}

	doWait := func(onPoll func(models.DocumentResult)) (models.DocumentResult, error) {
		opts.OnPoll = onPoll
		return a.docs.Wait(ctx, documentID, opts)
	}

	if a.cfg.Run.Quiet || a.cfg.Run.JSON {
		return doWait(nil)
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return waitWithSpinner(ctx, fileName, doWait)
	}

	fmt.Print("\nWaiting for processing to complete")
	return waitWithDots(os.Stdout, doWait)
}

// printSubmissionOnly handles the -no-wait mode: only the document id is
// reported, so the user can poll later.
func (a *App) printSubmissionOnly(submission models.DocumentSubmission) error {
	if a.cfg.Run.JSON {
		fmt.Printf("{\n  \"document_id\": %q\n}\n", submission.DocumentID)
		return nil
	}
	fmt.Printf("\nDocument submitted. Use document ID to check status: %s\n", submission.DocumentID)
	return nil
}
