package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/geom3/pkg/geometry"
)

var (
	// ErrUnknownStep is returned for a step keyword the parser does not know
	ErrUnknownStep = errors.New("unknown step")
	// ErrArity is returned when a step has the wrong number of arguments
	ErrArity = errors.New("wrong number of arguments")
)

// ParseFile reads a walk script from a file
func ParseFile(filename string) ([]Step, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// ParseString parses a walk script held in memory
func ParseString(src string) ([]Step, error) {
	return Parse(strings.NewReader(src))
}

// Parse reads a walk script. Steps are separated by newlines or ';',
// and '#' starts a comment running to the end of the line.
func Parse(reader io.Reader) ([]Step, error) {
	scanner := bufio.NewScanner(reader)
	var steps []Step

	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		for _, chunk := range strings.Split(line, ";") {
			fields := strings.Fields(chunk)
			if len(fields) == 0 {
				continue
			}

			step, err := parseStep(fields)
			if err != nil {
				return nil, fmt.Errorf("step %d (%q): %w", len(steps)+1, strings.TrimSpace(chunk), err)
			}
			steps = append(steps, step)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return steps, nil
}

func parseStep(fields []string) (Step, error) {
	name, args := fields[0], fields[1:]

	switch name {
	case "shift-x", "shift-y", "shift-z", "rotate-x", "rotate-y", "rotate-z":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s takes 1 argument, got %d: %w", name, len(args), ErrArity)
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Step{}, fmt.Errorf("invalid value: %w", err)
		}

		kind := KindShift
		if strings.HasPrefix(name, "rotate") {
			kind = KindRotate
		}
		axis, err := geometry.ParseAxis(name[len(name)-1:])
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: kind, Axis: axis, Value: v}, nil

	case "look", "travel":
		if len(args) != 3 {
			return Step{}, fmt.Errorf("%s takes 3 arguments, got %d: %w", name, len(args), ErrArity)
		}
		var target [3]float64
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return Step{}, fmt.Errorf("invalid coordinate: %w", err)
			}
			target[i] = v
		}

		kind := KindLook
		if name == "travel" {
			kind = KindTravel
		}
		return Step{Kind: kind, Target: target}, nil
	}

	return Step{}, fmt.Errorf("%q: %w", name, ErrUnknownStep)
}
