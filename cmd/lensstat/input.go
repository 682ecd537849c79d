package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-lensing/grid"
)

// readField parses whitespace-separated rows of numbers. Blank lines and
// lines starting with '#' are skipped. Every row must have the same length.
func readField(r io.Reader) (grid.Field, error) {
	var (
		data []float64
		rows int
		cols int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return grid.Field{}, fmt.Errorf("line %d: %w: %d values, want %d", line, grid.ErrInvalidShape, len(fields), cols)
		}
		for _, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return grid.Field{}, fmt.Errorf("line %d: %w", line, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return grid.Field{}, err
	}
	return grid.NewField(rows, cols, data)
}

func readFieldFile(path string) (grid.Field, error) {
	fh, err := os.Open(path)
	if err != nil {
		return grid.Field{}, err
	}
	defer fh.Close()

	f, err := readField(fh)
	if err != nil {
		return grid.Field{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// readMaskFile reads a mask with the same layout as the map. Non-zero
// entries are excluded.
func readMaskFile(path string, like grid.Field) (grid.Mask, error) {
	mf, err := readFieldFile(path)
	if err != nil {
		return grid.Mask{}, err
	}
	if err := like.CheckSameShape("mask", mf); err != nil {
		return grid.Mask{}, fmt.Errorf("%s: %w", path, err)
	}
	excluded := make([]bool, mf.Len())
	for k, v := range mf.Data {
		excluded[k] = v != 0
	}
	return grid.NewMask(mf.Rows, mf.Cols, excluded)
}
