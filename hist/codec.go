package hist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

type codecOptions struct {
	zeroBucket bool
	gzip       bool
	comments   []string
}

// CodecOption configures histogram serialization.
type CodecOption func(*codecOptions)

// WithZeroBucket includes the coverage-0 row in the output. By default
// uncovered weight is elided; it is implicitly the complement of the
// universe total.
func WithZeroBucket() CodecOption {
	return func(o *codecOptions) { o.zeroBucket = true }
}

// WithGzip compresses the output.
func WithGzip() CodecOption {
	return func(o *codecOptions) { o.gzip = true }
}

// WithComments prepends '#' comment lines, e.g. the provenance of the run.
func WithComments(comments []string) CodecOption {
	return func(o *codecOptions) { o.comments = comments }
}

// Write emits histograms as a tab-separated table keyed by coverage count,
// one weight column per histogram. All histograms must share the same
// group count.
func Write(w io.Writer, hists []*Hist, optFns ...CodecOption) error {
	var o codecOptions
	for _, fn := range optFns {
		fn(&o)
	}

	out := w
	var gz *gzip.Writer
	if o.gzip {
		gz = gzip.NewWriter(w)
		out = gz
	}
	bw := bufio.NewWriter(out)

	groups := -1
	for _, h := range hists {
		if groups == -1 {
			groups = h.Groups()
		} else if h.Groups() != groups {
			return fmt.Errorf("histogram %q spans %d groups, expected %d", h.Kind, h.Groups(), groups)
		}
	}

	for _, c := range o.comments {
		if !strings.HasPrefix(c, "#") {
			c = "# " + c
		}
		if _, err := fmt.Fprintln(bw, c); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("coverage"); err != nil {
		return err
	}
	for _, h := range hists {
		if _, err := fmt.Fprintf(bw, "\t%s", h.Kind); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	start := 1
	if o.zeroBucket {
		start = 0
	}
	for c := start; c <= groups; c++ {
		if _, err := fmt.Fprintf(bw, "%d", c); err != nil {
			return err
		}
		for _, h := range hists {
			if _, err := fmt.Fprintf(bw, "\t%d", h.Buckets[c]); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	if gz != nil {
		return gz.Close()
	}
	return nil
}

// Read parses histograms from a tab-separated table, transparently
// decompressing gzip input. Comment lines are preserved and returned
// alongside the histograms so a later Write can re-emit them.
//
// Weights are integers throughout, so a write/read cycle is exact: growth
// computed from the returned histograms matches growth computed from the
// originals.
func Read(r io.Reader) ([]*Hist, []string, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		defer gz.Close()
		br = bufio.NewReader(gz)
	}

	var (
		comments []string
		kinds    []string
		rows     [][]uint64
		coverage []int
	)
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			comments = append(comments, line)
			continue
		}
		fields := strings.Split(line, "\t")
		if kinds == nil {
			if fields[0] != "coverage" || len(fields) < 2 {
				return nil, nil, fmt.Errorf("malformed histogram header %q", line)
			}
			kinds = fields[1:]
			continue
		}
		if len(fields) != len(kinds)+1 {
			return nil, nil, fmt.Errorf("histogram row has %d columns, expected %d", len(fields), len(kinds)+1)
		}
		c, err := strconv.Atoi(fields[0])
		if err != nil || c < 0 {
			return nil, nil, fmt.Errorf("invalid coverage count %q", fields[0])
		}
		row := make([]uint64, len(kinds))
		for i, f := range fields[1:] {
			w, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid weight %q in coverage row %d", f, c)
			}
			row[i] = w
		}
		coverage = append(coverage, c)
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if kinds == nil {
		return nil, nil, fmt.Errorf("histogram input has no header")
	}

	groups := 0
	for _, c := range coverage {
		if c > groups {
			groups = c
		}
	}
	hists := make([]*Hist, len(kinds))
	for i, kind := range kinds {
		hists[i] = New(kind, groups)
	}
	for i, c := range coverage {
		for j := range kinds {
			hists[j].Buckets[c] += rows[i][j]
		}
	}
	return hists, comments, nil
}
