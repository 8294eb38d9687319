// Package catalog maintains the immutable content the engines are built
// from: quiz questions, puzzle blocks, the sudoku seed, sandbox settings and
// the course catalog with its rewards. Content is loaded from YAML and
// validated once so engines never see an inconsistent catalog.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/ardanlabs/questhub/foundation/validate"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog represents the full content file.
type Catalog struct {
	Questions   []Question        `yaml:"questions" json:"questions" validate:"required,min=1,dive"`
	Blocks      []Block           `yaml:"blocks" json:"blocks" validate:"len=4,dive"`
	Sudoku      Sudoku            `yaml:"sudoku" json:"sudoku"`
	Sandbox     Sandbox           `yaml:"sandbox" json:"sandbox"`
	Courses     []Course          `yaml:"courses" json:"courses" validate:"required,min=1,dive"`
	Rewards     map[string]int    `yaml:"rewards" json:"rewards" validate:"required,dive,gt=0"`
	AddressBook map[string]string `yaml:"address_book" json:"address_book"`
}

// Question is a multiple choice question.
type Question struct {
	ID          int      `yaml:"id" json:"id" validate:"required"`
	Prompt      string   `yaml:"prompt" json:"prompt" validate:"required"`
	Options     []string `yaml:"options" json:"options" validate:"min=2,dive,required"`
	Correct     int      `yaml:"correct" json:"correct" validate:"gte=0"`
	Explanation string   `yaml:"explanation" json:"explanation"`
}

// Block is one of the puzzle blocks.
type Block struct {
	ID              int    `yaml:"id" json:"id" validate:"required"`
	Category        string `yaml:"category" json:"category" validate:"oneof=genesis transaction hash reward"`
	Content         string `yaml:"content" json:"content" validate:"required"`
	CorrectPosition int    `yaml:"correct_position" json:"correct_position" validate:"gte=0,lte=3"`
}

// Sudoku is the seed for the constraint puzzle: the known solution and the
// cells removed from it to form the puzzle.
type Sudoku struct {
	Symbols  []string   `yaml:"symbols" json:"symbols" validate:"len=4,unique,dive,required"`
	Solution [][]string `yaml:"solution" json:"solution" validate:"len=4,dive,len=4"`
	Removed  [][]int    `yaml:"removed" json:"removed" validate:"len=8,dive,len=2,dive,gte=0,lte=3"`
}

// Sandbox holds the transaction simulator settings. Amounts are decimal
// strings with at most three fractional digits.
type Sandbox struct {
	WalletAddress  string   `yaml:"wallet_address" json:"wallet_address" validate:"required"`
	FaucetAddress  string   `yaml:"faucet_address" json:"faucet_address" validate:"required"`
	InitialBalance string   `yaml:"initial_balance" json:"initial_balance" validate:"required"`
	Fee            string   `yaml:"fee" json:"fee" validate:"required"`
	FaucetMin      string   `yaml:"faucet_min" json:"faucet_min" validate:"required"`
	FaucetMax      string   `yaml:"faucet_max" json:"faucet_max" validate:"required"`
	StepDelay      string   `yaml:"step_delay" json:"step_delay" validate:"required"`
	Steps          []string `yaml:"steps" json:"steps" validate:"min=1,dive,required"`
}

// Course is a course made of ordered modules.
type Course struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Duration    string   `yaml:"duration" json:"duration"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty" validate:"oneof=Beginner Intermediate Advanced"`
	Locked      bool     `yaml:"locked" json:"locked"`
	Modules     []Module `yaml:"modules" json:"modules" validate:"required,min=1,dive"`
}

// Module is a single lesson of a course with an optional quiz that gates
// its completion.
type Module struct {
	ID      int         `yaml:"id" json:"id" validate:"required"`
	Title   string      `yaml:"title" json:"title" validate:"required"`
	Content string      `yaml:"content" json:"content"`
	Video   string      `yaml:"video" json:"video"`
	Quiz    *ModuleQuiz `yaml:"quiz,omitempty" json:"quiz,omitempty"`
}

// ModuleQuiz is the single question that completes a module.
type ModuleQuiz struct {
	Question string   `yaml:"question" json:"question" validate:"required"`
	Options  []string `yaml:"options" json:"options" validate:"min=2,dive,required"`
	Correct  int      `yaml:"correct" json:"correct" validate:"gte=0"`
}

// =============================================================================

// Default returns the embedded catalog.
func Default() (Catalog, error) {
	return Parse(defaultCatalog)
}

// Load opens and consumes the catalog file. An empty path selects the
// embedded catalog.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}

	return Parse(content)
}

// Parse decodes and validates a catalog document.
func Parse(content []byte) (Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	var cat Catalog
	if err := decoder.Decode(&cat); err != nil {
		return Catalog{}, fmt.Errorf("decoding catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}

	return cat, nil
}

// Validate checks the declared tags and the cross field rules of the catalog.
func (c Catalog) Validate() error {
	if err := validate.Check(c); err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}

	for _, q := range c.Questions {
		if q.Correct >= len(q.Options) {
			return fmt.Errorf("question %d: correct option %d out of range", q.ID, q.Correct)
		}
	}

	if err := c.validateBlocks(); err != nil {
		return err
	}

	if err := c.validateSudoku(); err != nil {
		return err
	}

	return c.validateCourses()
}

// Reward returns the reward for the specified course. Unknown course ids are
// an error rather than a silent default.
func (c Catalog) Reward(courseID string) (int, error) {
	reward, exists := c.Rewards[courseID]
	if !exists {
		return 0, fmt.Errorf("course %q has no reward", courseID)
	}
	return reward, nil
}

// Course returns the course for the specified id.
func (c Catalog) Course(courseID string) (Course, error) {
	for _, crs := range c.Courses {
		if crs.ID == courseID {
			return crs, nil
		}
	}
	return Course{}, fmt.Errorf("course %q does not exist", courseID)
}

// =============================================================================

func (c Catalog) validateBlocks() error {
	var seen [4]bool
	for _, b := range c.Blocks {
		if seen[b.CorrectPosition] {
			return fmt.Errorf("block %d: correct position %d used twice", b.ID, b.CorrectPosition)
		}
		seen[b.CorrectPosition] = true
	}
	return nil
}

func (c Catalog) validateSudoku() error {
	s := c.Sudoku

	symbols := make(map[string]bool, len(s.Symbols))
	for _, sym := range s.Symbols {
		symbols[sym] = true
	}

	for r, row := range s.Solution {
		for col, v := range row {
			if !symbols[v] {
				return fmt.Errorf("sudoku solution [%d][%d]: unknown symbol %q", r, col, v)
			}
		}
	}

	unique := func(name string, vals []string) error {
		seen := make(map[string]bool, len(vals))
		for _, v := range vals {
			if seen[v] {
				return fmt.Errorf("sudoku solution: %s repeats %q", name, v)
			}
			seen[v] = true
		}
		return nil
	}

	for i := range 4 {
		var row, col, box []string
		for j := range 4 {
			row = append(row, s.Solution[i][j])
			col = append(col, s.Solution[j][i])
			box = append(box, s.Solution[(i/2)*2+j/2][(i%2)*2+j%2])
		}
		if err := unique(fmt.Sprintf("row %d", i), row); err != nil {
			return err
		}
		if err := unique(fmt.Sprintf("column %d", i), col); err != nil {
			return err
		}
		if err := unique(fmt.Sprintf("box %d", i), box); err != nil {
			return err
		}
	}

	removed := make(map[[2]int]bool, len(s.Removed))
	for _, rc := range s.Removed {
		key := [2]int{rc[0], rc[1]}
		if removed[key] {
			return fmt.Errorf("sudoku: cell %v removed twice", rc)
		}
		removed[key] = true
	}

	return nil
}

func (c Catalog) validateCourses() error {
	ids := make(map[string]bool, len(c.Courses))
	for _, crs := range c.Courses {
		if ids[crs.ID] {
			return fmt.Errorf("course %q defined twice", crs.ID)
		}
		ids[crs.ID] = true

		if _, err := c.Reward(crs.ID); err != nil {
			return err
		}

		for _, m := range crs.Modules {
			if m.Quiz != nil && m.Quiz.Correct >= len(m.Quiz.Options) {
				return fmt.Errorf("course %q module %d: correct option out of range", crs.ID, m.ID)
			}
		}
	}

	for id := range c.Rewards {
		if !ids[id] {
			return fmt.Errorf("reward for unknown course %q", id)
		}
	}

	return nil
}
