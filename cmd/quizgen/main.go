// Command quizgen turns a text file into quiz JSON without running the server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/middleware"
	"github.com/quizforge/backend/internal/models"
	"github.com/quizforge/backend/internal/platform/logger"
)

func main() {
	var (
		input      = flag.String("in", "-", "Input text file ('-' for stdin)")
		output     = flag.String("out", "", "Output file for quiz JSON (default: stdout)")
		difficulty = flag.String("difficulty", "medium", "Difficulty level (easy, medium, hard)")
		title      = flag.String("title", "", "Quiz title (default: first section heading)")
		seed       = flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
		tuningFile = flag.String("tuning", "", "YAML file overriding engine thresholds")
		verbose    = flag.Bool("verbose", false, "Log pipeline stages to stderr")
		token      = flag.String("token", "", "Print an API bearer token for this subject, signed with JWT_SECRET, and exit")
		tokenTTL   = flag.Duration("token-ttl", 24*time.Hour, "Lifetime of the token printed by -token")
	)
	flag.Parse()

	if *token != "" {
		t, err := mintToken(os.Getenv("JWT_SECRET"), *token, *tokenTTL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "quizgen:", err)
			os.Exit(1)
		}
		fmt.Println(t)
		return
	}

	if err := run(*input, *output, *difficulty, *title, *seed, *tuningFile, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "quizgen:", err)
		var genErr *generator.GenerationError
		if errors.As(err, &genErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(input, output, difficulty, title string, seed int64, tuningFile string, verbose bool) error {
	text, err := readInput(input)
	if err != nil {
		return err
	}
	tuning, err := generator.LoadTuning(tuningFile)
	if err != nil {
		return err
	}

	log := logger.NewNop()
	if verbose {
		if log, err = logger.New("dev"); err != nil {
			return err
		}
		defer log.Sync()
	}

	req := generator.Request{Text: text, Difficulty: models.Difficulty(difficulty), Title: title}
	if seed != 0 {
		req.Seed = &seed
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	quiz, err := generator.NewEngine(generator.EngineConfig{Tuning: tuning, Logger: log}).Generate(ctx, req)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(quiz)
}

// mintToken signs a token the server's auth middleware accepts.
func mintToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token TTL must be positive, got %v", ttl)
	}
	return middleware.GenerateToken([]byte(secret), subject, ttl)
}

func readInput(path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
