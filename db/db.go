// Package db persists generated puzzles in a PocketBase collection.
package db

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/random"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sudoku_solve_go/internal/types"
)

const (
	collection = "puzzles"
	defaultURL = "https://base.mljr.eu"
	idLength   = 6
)

var log = logrus.New()

var client *pocketbase.Client

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		url = defaultURL
	}
	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")

	client = pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))

	if err := client.Authorize(); err != nil {
		log.Warnf("initial authorization failed: %v", err)
	}
}

// Authenticate checks credentials and keeps the session fresh with a
// periodic re-authorization.
func Authenticate() error {
	if err := client.Authorize(); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				log.Warnf("re-authentication failed: %v", err)
			} else {
				log.Info("re-authenticated with PocketBase")
			}
		}
	}()
	return nil
}

// UploadPuzzle stores a puzzle under a fresh random ID and returns
// that ID.
func UploadPuzzle(p *types.Puzzle) (string, error) {
	puzzleJSON, err := p.ToJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	id := strings.ToLower(random.RandString(idLength))
	exists, err := PuzzleExists(id)
	if err != nil {
		return "", fmt.Errorf("failed to check for ID collision: %w", err)
	}
	if exists {
		return "", fmt.Errorf("puzzle with ID %s already exists", id)
	}

	data := map[string]any{
		"id":         id,
		"puzzle":     string(puzzleJSON),
		"difficulty": string(p.Difficulty),
		"clues":      fmt.Sprint(p.Grid.CountClues()),
		"seed":       fmt.Sprint(p.Seed),
	}

	if _, err := client.Create(collection, data); err != nil {
		return "", fmt.Errorf("failed to upload puzzle: %w", err)
	}
	return id, nil
}

// GetPuzzle loads one puzzle by record ID.
func GetPuzzle(id string) (*types.Puzzle, error) {
	record, err := client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle %s: %w", id, err)
	}

	raw, ok := record["puzzle"].(string)
	if !ok {
		return nil, fmt.Errorf("record %s has no puzzle payload", id)
	}
	var puzzle types.Puzzle
	if err := json.Unmarshal([]byte(raw), &puzzle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle data: %w", err)
	}
	return &puzzle, nil
}

// ListPuzzles pages through stored puzzles, optionally filtered by
// difficulty.
func ListPuzzles(page, perPage int, difficulty string) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string

	if difficulty != "" {
		valid := []string{
			string(types.Easy), string(types.Medium),
			string(types.Hard), string(types.Expert),
		}
		if !slice.Contain(valid, difficulty) {
			return nil, fmt.Errorf("unknown difficulty %q", difficulty)
		}
		filterRules = append(filterRules, fmt.Sprintf("difficulty = %q", difficulty))
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filterRules, " && "),
	}

	result, err := client.List(collection, params)
	return &result, err
}

// PuzzleExists reports whether a record with the given ID is stored.
func PuzzleExists(id string) (bool, error) {
	_, err := client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
