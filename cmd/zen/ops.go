package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/inoxlang/zen/internal/config"
	"github.com/inoxlang/zen/internal/deepupdate"
	"github.com/inoxlang/zen/internal/utils"
	"github.com/inoxlang/zen/internal/zen"
)

const (
	OP_ARG_SEPARATOR       = ":"
	CONCAT_VALUE_SEPARATOR = ","
	JOIN_OP_NAME           = "join"
	MAX_OP_NAME_TYPOS      = 2
)

var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrInvalidOpArguments = errors.New("invalid operation arguments")
	ErrJoinNotLast        = errors.New("join should be the last operation")
)

type pipelineConfig struct {
	format      string
	naturalSort bool
	separator   string
}

// A pipeline is the parsed list of operations of the run subcommand.
type pipeline struct {
	ops  []deepupdate.Op[any]
	join *string //nil if the output is an array
}

func (p pipeline) apply(array *zen.Array[any]) (*zen.Array[any], error) {
	return deepupdate.TryApply(array, deepupdate.Chain(p.ops...))
}

type opParser struct {
	minArgs int
	maxArgs int //-1 if variadic
	parse   func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error)
}

var opParsers = map[string]opParser{
	"push": {minArgs: 1, maxArgs: 1, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		return deepupdate.Push(cfg.parseValue(args[0])), nil
	}},
	"unshift": {minArgs: 1, maxArgs: 1, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		return deepupdate.Unshift(cfg.parseValue(args[0])), nil
	}},
	"pop":     noArgOp(deepupdate.Pop[any]()),
	"shift":   noArgOp(deepupdate.Shift[any]()),
	"clear":   noArgOp(deepupdate.Clear[any]()),
	"tail":    noArgOp(deepupdate.Tail[any]()),
	"reverse": noArgOp(deepupdate.Reverse[any]()),
	"sort": {parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		return deepupdate.Sort(compareValues(cfg.naturalSort)), nil
	}},
	"uniq": noArgOp(deepupdate.Intersection[any]()),
	"slice": {minArgs: 1, maxArgs: 2, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		ints, err := parseInts(args)
		if err != nil {
			return nil, err
		}
		return deepupdate.Slice[any](ints[0], ints[1:]...), nil
	}},
	"splice": {minArgs: 2, maxArgs: -1, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		ints, err := parseInts(args[:2])
		if err != nil {
			return nil, err
		}
		items := utils.MapSliceIndexed(args[2:], func(arg string, _ int) any {
			return cfg.parseValue(arg)
		})
		return deepupdate.Splice(ints[0], ints[1], items...), nil
	}},
	"insert": {minArgs: 2, maxArgs: 2, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		index, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		return deepupdate.InsertAt(index, cfg.parseValue(args[1])), nil
	}},
	"delete": {minArgs: 1, maxArgs: 1, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		index, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		return deepupdate.Delete[any](index), nil
	}},
	"set": {minArgs: 2, maxArgs: 2, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		index, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		return deepupdate.Set(index, cfg.parseValue(args[1])), nil
	}},
	"fill": {minArgs: 1, maxArgs: 3, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		bounds, err := parseInts(args[1:])
		if err != nil {
			return nil, err
		}
		value := cfg.parseValue(args[0])
		if len(bounds) == 0 {
			return deepupdate.Fill(value, 0), nil
		}
		return deepupdate.Fill(value, bounds[0], bounds[1:]...), nil
	}},
	"concat": {minArgs: 1, maxArgs: 1, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		return deepupdate.Concat[any](cfg.parseConcatItems(args[0])...), nil
	}},
	"filter-eq": {minArgs: 1, maxArgs: 1, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		value := cfg.parseValue(args[0])
		return deepupdate.Filter(func(elem any, _ int) bool {
			return zen.SameValue(elem, value)
		}), nil
	}},
	"reject-eq": {minArgs: 1, maxArgs: 1, parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		value := cfg.parseValue(args[0])
		return deepupdate.Filter(func(elem any, _ int) bool {
			return !zen.SameValue(elem, value)
		}), nil
	}},
}

func noArgOp(op deepupdate.Op[any]) opParser {
	return opParser{parse: func(args []string, cfg pipelineConfig) (deepupdate.Op[any], error) {
		return op, nil
	}}
}

// parsePipeline parses operation specs of the form name[:arg]... All invalid specs are reported.
func parsePipeline(specs []string, cfg pipelineConfig) (pipeline, error) {
	var (
		p    pipeline
		errs []error
	)

	for i, spec := range specs {
		name, rest, hasArgs := strings.Cut(spec, OP_ARG_SEPARATOR)

		if name == JOIN_OP_NAME {
			if i != len(specs)-1 {
				errs = append(errs, ErrJoinNotLast)
				continue
			}
			separator := cfg.separator
			if hasArgs {
				separator = rest
			}
			p.join = &separator
			continue
		}

		parser, ok := opParsers[name]
		if !ok {
			errs = append(errs, unknownOperationError(name))
			continue
		}

		//the last argument keeps its colons: push:{"a":1} and set:0:"a:b" are valid.
		var args []string
		switch {
		case !hasArgs:
		case parser.maxArgs > 0:
			args = strings.SplitN(rest, OP_ARG_SEPARATOR, parser.maxArgs)
		default:
			args = strings.Split(rest, OP_ARG_SEPARATOR)
		}

		if len(args) < parser.minArgs || (parser.maxArgs >= 0 && len(args) > parser.maxArgs) {
			errs = append(errs, fmt.Errorf("%w: '%s' got %d argument(s)", ErrInvalidOpArguments, name, len(args)))
			continue
		}

		op, err := parser.parse(args, cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: '%s': %w", ErrInvalidOpArguments, name, err))
			continue
		}
		p.ops = append(p.ops, op)
	}

	if err := utils.CombineErrors(errs...); err != nil {
		return pipeline{}, err
	}
	return p, nil
}

func unknownOperationError(name string) error {
	candidates := append(slices.Collect(maps.Keys(opParsers)), JOIN_OP_NAME)
	slices.Sort(candidates)

	closest, _, ok := utils.FindClosestString(context.Background(), candidates, name, MAX_OP_NAME_TYPOS)
	if ok {
		return fmt.Errorf("%w: '%s', did you mean '%s'?", ErrUnknownOperation, name, closest)
	}
	return fmt.Errorf("%w: '%s'", ErrUnknownOperation, name)
}

// parseValue decodes s in the input format, s is returned as is if it is not a valid scalar or list.
func (cfg pipelineConfig) parseValue(s string) any {
	var (
		v   any
		err error
	)

	switch cfg.format {
	case config.YAML_FORMAT:
		err = yaml.Unmarshal([]byte(s), &v)
	default:
		err = json.Unmarshal([]byte(s), &v)
	}

	if err != nil || (v == nil && s != "null") {
		return s
	}
	return v
}

// parseConcatItems returns the items of a concat operation: a list value is concatenated as a whole,
// any other argument is split at commas.
func (cfg pipelineConfig) parseConcatItems(arg string) []any {
	if list, ok := cfg.parseValue(arg).([]any); ok {
		return []any{list}
	}

	return utils.MapSliceIndexed(strings.Split(arg, CONCAT_VALUE_SEPARATOR), func(s string, _ int) any {
		return cfg.parseValue(s)
	})
}

// compareValues orders numbers before other values, numbers are compared numerically
// and other values by their string representation.
func compareValues(natural bool) func(x, y any) int {
	return func(x, y any) int {
		xNum, xIsNum := toFloat(x)
		yNum, yIsNum := toFloat(y)

		switch {
		case xIsNum && yIsNum:
			return zen.CompareOrdered(xNum, yNum)
		case xIsNum:
			return -1
		case yIsNum:
			return 1
		}

		xStr, yStr := fmt.Sprint(x), fmt.Sprint(y)
		if natural {
			return zen.NaturalOrder(xStr, yStr)
		}
		return zen.CompareOrdered(xStr, yStr)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := parseInt(arg)
		if err != nil {
			return nil, err
		}
		ints = append(ints, i)
	}
	return ints, nil
}
