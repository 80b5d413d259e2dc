package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/pqueue"
)

var cmdSet *subcmd.CommandSet

type sortFlags struct {
	Reverse bool `subcmd:"reverse,false,print in descending priority order"`
}

type topFlags struct {
	TopN int `subcmd:"n,10,number of highest priority records to print"`
}

func init() {
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&sortFlags{}, nil, nil)
	topFlagSet := subcmd.NewFlagSet()
	topFlagSet.MustRegisterFlagStruct(&topFlags{}, nil, nil)

	sortCmd := subcmd.NewCommand("sort", sortFlagSet, sortRecords, subcmd.WithoutArguments())
	sortCmd.Document("print stdin records in ascending priority order")

	topCmd := subcmd.NewCommand("top", topFlagSet, topRecords, subcmd.WithoutArguments())
	topCmd.Document("print the highest priority stdin records")

	cmdSet = subcmd.NewCommandSet(sortCmd, topCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// readRecords parses 'priority [text...]' lines into 1-indexed key and
// value slices with the dummy root at index 0, as expected by
// pqueue.WithData and pqueue.Heapsort.
func readRecords(rd io.Reader) ([]float64, []string, error) {
	keys, vals := []float64{0}, []string{""}
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 {
			continue
		}
		p, text := line, ""
		if idx := strings.IndexAny(line, " \t"); idx > 0 {
			p, text = line[:idx], strings.TrimSpace(line[idx:])
		}
		k, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%q: %w", line, err)
		}
		keys = append(keys, k)
		vals = append(vals, text)
	}
	return keys, vals, sc.Err()
}

func sortRecords(_ context.Context, values interface{}, _ []string) error {
	flagValues := values.(*sortFlags)
	keys, vals, err := readRecords(os.Stdin)
	if err != nil {
		return err
	}
	pqueue.Heapsort(keys, vals)
	if flagValues.Reverse {
		for i := len(keys) - 1; i >= 1; i-- {
			fmt.Printf("%v %v\n", keys[i], vals[i])
		}
		return nil
	}
	for i := 1; i < len(keys); i++ {
		fmt.Printf("%v %v\n", keys[i], vals[i])
	}
	return nil
}

func topRecords(_ context.Context, values interface{}, _ []string) error {
	flagValues := values.(*topFlags)
	keys, vals, err := readRecords(os.Stdin)
	if err != nil {
		return err
	}
	h := pqueue.NewMax(pqueue.WithData(keys, vals))
	for i := 0; i < flagValues.TopN; i++ {
		k, v, ok := h.PopMax()
		if !ok {
			break
		}
		fmt.Printf("%v %v\n", k, v)
	}
	return nil
}
