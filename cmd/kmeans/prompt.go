package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks questions on out and reads answers line by line from in.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) readLine(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askK asks for a cluster count in [1, maxK] until it gets one.
func (p *prompter) askK(maxK int) (int, error) {
	for {
		line, err := p.readLine("Enter the number of clusters: ")
		if err != nil {
			return 0, err
		}
		k, err := strconv.Atoi(line)
		if err == nil && k >= 1 && k <= maxK {
			return k, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", maxK)
	}
}

func (p *prompter) askYesNo(question string) (bool, error) {
	for {
		line, err := p.readLine(question + " (y/n)? ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// askCentroids reads k comma separated vectors of dimension dim.
func (p *prompter) askCentroids(k, dim int) ([][]float64, error) {
	centroids := make([][]float64, 0, k)
	for len(centroids) < k {
		line, err := p.readLine(fmt.Sprintf("Input centroid %d (ex. %s): ", len(centroids)+1, exampleVector(dim)))
		if err != nil {
			return nil, err
		}
		v, err := parseVector(line)
		if err == nil && len(v) != dim {
			err = fmt.Errorf("need %d components, got %d", dim, len(v))
		}
		if err != nil {
			fmt.Fprintf(p.out, "Invalid centroid: %v\n", err)
			continue
		}
		centroids = append(centroids, v)
	}
	return centroids, nil
}

func exampleVector(dim int) string {
	parts := make([]string, dim)
	for i := range parts {
		parts[i] = strconv.Itoa(i + 2)
	}
	return strings.Join(parts, ",")
}

// parseVector parses "1,2.5,3".
func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	v := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
		v[i] = x
	}
	return v, nil
}

// parseCentroids parses "1,1;9,9" into one vector per ';' separated group.
func parseCentroids(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	groups := strings.Split(s, ";")
	centroids := make([][]float64, len(groups))
	for i, g := range groups {
		v, err := parseVector(g)
		if err != nil {
			return nil, fmt.Errorf("centroid %d: %w", i+1, err)
		}
		centroids[i] = v
	}
	return centroids, nil
}
