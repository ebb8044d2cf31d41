// Demo driver: runs one full exam attempt against a local database and
// prints the outcome. Useful for smoke-testing the engine without the
// HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/auth"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/exam"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/id"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/service"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dbPath := "capacitacion.db"
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}

	db, err := store.NewSQLite(dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	engine := service.NewExamService(db, logger)

	sample := exam.SampleExam()
	snap, err := engine.Start(sample.ID)
	if err != nil {
		logger.Error("failed to start attempt", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Attempt started: %s (%d questions, %s)\n", snap.ExamTitle, snap.Total, snap.FormattedTime)

	// Answer every question with its correct option, simulating a
	// perfect run.
	for _, q := range sample.Questions {
		if err := engine.Answer(q.ID, q.CorrectOption); err != nil {
			logger.Error("failed to answer", "question_id", q.ID, "error", err)
			os.Exit(1)
		}
		if err := engine.Next(); err != nil {
			logger.Error("failed to advance", "error", err)
			os.Exit(1)
		}
	}

	// IDs are normally assigned at login; the driver skips login, so
	// stamp one here to keep the result attributed to the demo user.
	demo := user.DemoUsers()["demo@gnp.com"]
	demo.ID = id.GenerateID()
	result, err := engine.Complete(ctx, &demo)
	if err != nil {
		logger.Error("failed to complete attempt", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Result %s ===\n", result.ID)
	fmt.Printf("User: %s <%s> (%s)\n", demo.Name, demo.Email, result.UserID)
	fmt.Printf("Score: %d/100 (passed: %v)\n", result.Score, result.Passed)
	fmt.Printf("Correct: %d  Wrong: %d\n", result.CorrectAnswers, result.WrongAnswers)

	results, err := db.ListResults(ctx)
	if err != nil {
		logger.Error("failed to list history", "error", err)
		os.Exit(1)
	}
	fmt.Printf("\nHistory now holds %d result(s)\n", len(results))

	// keep the session service exercised too
	sessions := auth.NewService(ctx, db, logger, "")
	if u := sessions.CurrentIdentity(); u != nil {
		fmt.Printf("Restored session for %s\n", u.Email)
	}
}
