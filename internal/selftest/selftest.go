// Package selftest runs suites of postfix expressions against expected results, comparing with an
// absolute tolerance.
package selftest

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/karrick/postfix"
)

// DefaultTolerance is the largest absolute difference between actual and expected results that
// still counts as a match.
const DefaultTolerance = 1e-14

// Case pairs an expression with the value it must evaluate to.
type Case struct {
	Expression string  `yaml:"expression"`
	Expected   float64 `yaml:"expected"`
}

// Suite is an ordered list of cases sharing one tolerance.
type Suite struct {
	Tolerance float64 `yaml:"tolerance"`
	Cases     []Case  `yaml:"cases"`
}

// ErrMismatch error is returned when an expression evaluates to a value outside the tolerance of
// the expected result.
type ErrMismatch struct {
	Expression string
	Expected   float64
	Actual     float64
}

// Error returns the error string representation for ErrMismatch errors.
func (e ErrMismatch) Error() string {
	return fmt.Sprintf("expected %v but %v found", e.Expected, e.Actual)
}

// Default returns the built-in suite.
func Default() Suite {
	return Suite{
		Tolerance: DefaultTolerance,
		Cases: []Case{
			{"1 1 +", 2},
			{"2 -3 *", -6},
			{"1 1 + 2 3 * -", -4},
			{"1 3 / 2 *", 0.666666666666667},
			{"10 1 2 + 2 + 5 + +", 20},
		},
	}
}

// Load decodes a YAML suite from r. A missing or zero tolerance becomes DefaultTolerance.
func Load(r io.Reader) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return Suite{}, errors.New("cannot load suite: no cases")
		}
		return Suite{}, errors.Wrap(err, "cannot decode suite")
	}
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}
	if s.Tolerance < 0 || math.IsNaN(s.Tolerance) {
		return Suite{}, errors.Errorf("cannot use tolerance %v", s.Tolerance)
	}
	if len(s.Cases) == 0 {
		return Suite{}, errors.New("cannot load suite: no cases")
	}
	return s, nil
}

// LoadFile decodes the YAML suite stored at path.
func LoadFile(path string) (Suite, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Suite{}, errors.Wrap(err, "cannot open suite")
	}
	defer fh.Close()

	s, err := Load(fh)
	if err != nil {
		return Suite{}, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

// Check evaluates c.Expression and returns an error when evaluation fails or the result differs
// from c.Expected by more than tolerance.
func Check(c Case, tolerance float64) error {
	actual, err := postfix.Evaluate(c.Expression)
	if err != nil {
		return err
	}
	if math.Abs(actual-c.Expected) > tolerance || math.IsNaN(actual) {
		return ErrMismatch{Expression: c.Expression, Expected: c.Expected, Actual: actual}
	}
	return nil
}

// Run checks every case in order and stops at the first failure.
func (s Suite) Run(log *zap.Logger) error {
	for idx, c := range s.Cases {
		if err := Check(c, s.Tolerance); err != nil {
			log.Error("case failed", zap.Int("case", idx), zap.String("expression", c.Expression), zap.Error(err))
			return errors.Wrapf(err, "case %d %q", idx, c.Expression)
		}
		log.Debug("case passed", zap.Int("case", idx), zap.String("expression", c.Expression), zap.Float64("expected", c.Expected))
	}
	log.Info("suite passed", zap.Int("cases", len(s.Cases)))
	return nil
}
