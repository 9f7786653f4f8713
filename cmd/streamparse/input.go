package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-streamparse/streamparse"
)

func readInput(inputFlag string) ([]rune, error) {
	if inputFlag != "" {
		return []rune(inputFlag), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []rune(strings.TrimRight(string(data), "\n")), nil
}

func runDemo(name, inputFlag string, logger streamparse.Logger) error {
	d := findDemo(name)
	if d == nil {
		names := make([]string, len(demos))
		for i, dd := range demos {
			names[i] = dd.name
		}
		return fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(names, ", "))
	}

	runes, err := readInput(inputFlag)
	if err != nil {
		return err
	}

	var opts []streamparse.ParseOption
	if logger != nil {
		opts = append(opts, streamparse.WithLogger(logger))
	}

	result, leftover, err := streamparse.Parse(context.Background(), d.build(), streamparse.NewSliceSource(runes), opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", d.name, err)
	}

	fmt.Printf("result: %s\n", result)
	fmt.Printf("leftover: %q\n", string(leftover))
	return nil
}
