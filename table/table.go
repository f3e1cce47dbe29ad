// Package table emits the full per-group, per-item coverage matrix.
package table

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/codialab/panacus/coverage"
	"github.com/codialab/panacus/gfa"
)

type options struct {
	lz4     bool
	weights bool
}

// Option configures the table writer.
type Option func(*options)

// WithLZ4 block-compresses the output. Full matrices over millions of
// items get large; compressed dumps are the cheap way to keep them around.
func WithLZ4() Option {
	return func(o *options) { o.lz4 = true }
}

// WithWeightColumn adds each item's intrinsic weight as a second column.
func WithWeightColumn() Option {
	return func(o *options) { o.weights = true }
}

// Write emits one row per item with 0/1 presence per group, columns in the
// active group order. Pure iteration over the coverage sets; the counting
// pass has already done the work.
func Write(w io.Writer, store *gfa.Store, groups *gfa.GroupIndex, res *coverage.Result, optFns ...Option) error {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}

	out := w
	var zw *lz4.Writer
	if o.lz4 {
		zw = lz4.NewWriter(w)
		out = zw
	}
	bw := bufio.NewWriter(out)

	order := groups.Order()
	if _, err := bw.WriteString(store.Kind().String()); err != nil {
		return err
	}
	if o.weights {
		if _, err := bw.WriteString("\tweight"); err != nil {
			return err
		}
	}
	for _, id := range order {
		if _, err := fmt.Fprintf(bw, "\t%s", groups.Group(id).Label); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	for i := 0; i < store.Len(); i++ {
		if _, err := fmt.Fprintf(bw, "%d", i); err != nil {
			return err
		}
		if o.weights {
			if _, err := fmt.Fprintf(bw, "\t%d", store.Weight(gfa.ItemID(i))); err != nil {
				return err
			}
		}
		for _, id := range order {
			cell := byte('0')
			if res.Matrix.Test(i, int(id)) {
				cell = '1'
			}
			if err := bw.WriteByte('\t'); err != nil {
				return err
			}
			if err := bw.WriteByte(cell); err != nil {
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
	if zw != nil {
		return zw.Close()
	}
	return nil
}
